// internal/schema/schema.go
package schema

import "github.com/tamzrod/alfen-reader/internal/decode"

// Kind selects the primitive decoder for a field.
type Kind uint8

const (
	str Kind = iota
	u16
	i16
	u32
	f32
	f64
)

// Field describes one semantic field inside a register window.
// Offset is a register index relative to the window base. Span is the
// register count for str fields; other kinds have a fixed width.
type Field struct {
	Name   string
	Kind   Kind
	Offset int
	Span   int
}

// Registers returns the number of registers the field occupies.
func (f Field) Registers() int {
	switch f.Kind {
	case str:
		return f.Span
	case u16, i16:
		return 1
	case u32, f32:
		return 2
	case f64:
		return 4
	}
	return 0
}

// Window is a contiguous holding-register range documented by the vendor
// as one coherent group of fields. Base and Count size the read request;
// Fields drive the decode.
type Window struct {
	Name   string
	Base   uint16
	Count  uint16
	Fields []Field
}

// Decode applies every field spec to the supplied register block.
// Fields are decoded independently: a short block yields Missing for the
// fields it cannot back and normal values for the rest. No side effects.
func (w Window) Decode(regs []uint16) map[string]decode.Value {
	out := make(map[string]decode.Value, len(w.Fields))
	for _, f := range w.Fields {
		switch f.Kind {
		case str:
			out[f.Name] = decode.String(regs, f.Offset, f.Span)
		case u16:
			out[f.Name] = decode.UInt16(regs, f.Offset)
		case i16:
			out[f.Name] = decode.Int16(regs, f.Offset)
		case u32:
			out[f.Name] = decode.UInt32(regs, f.Offset)
		case f32:
			out[f.Name] = decode.Float32(regs, f.Offset)
		case f64:
			out[f.Name] = decode.Float64(regs, f.Offset)
		}
	}
	return out
}
