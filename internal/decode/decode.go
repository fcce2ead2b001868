// internal/decode/decode.go
package decode

import (
	"bytes"
	"math"
	"strings"
	"unicode/utf8"
)

// Kind tags the payload carried by a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindText
	KindUInt16
	KindInt16
	KindUInt32
	KindFloat32
	KindFloat64
)

// Value is the result of decoding one field from a register block.
// Exactly one payload field is meaningful, selected by Kind.
// KindMissing means the backing registers were not present in the
// block (short read). It is a value, not an error.
type Value struct {
	Kind Kind

	Text string
	U16  uint16
	I16  int16
	U32  uint32
	F32  float32
	F64  float64
}

// Missing reports whether the field's registers were absent.
func (v Value) Missing() bool {
	return v.Kind == KindMissing
}

// String decodes span consecutive registers starting at offset as text.
// Each register contributes two bytes, high byte first. Registers beyond
// the end of regs are simply not appended. The byte buffer is cut at the
// first NUL, and invalid UTF-8 sequences are dropped.
func String(regs []uint16, offset, span int) Value {
	buf := make([]byte, 0, span*2)
	for i := 0; i < span; i++ {
		if offset+i >= len(regs) {
			break
		}
		r := regs[offset+i]
		buf = append(buf, byte(r>>8), byte(r))
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return Value{Kind: KindText, Text: dropInvalidUTF8(buf)}
}

// UInt16 decodes the raw register at offset.
func UInt16(regs []uint16, offset int) Value {
	if offset >= len(regs) {
		return Value{}
	}
	return Value{Kind: KindUInt16, U16: regs[offset]}
}

// Int16 reinterprets the register at offset as two's-complement signed.
func Int16(regs []uint16, offset int) Value {
	if offset >= len(regs) {
		return Value{}
	}
	return Value{Kind: KindInt16, I16: int16(regs[offset])}
}

// UInt32 decodes a big-endian register pair: regs[offset] holds the high
// 16 bits, regs[offset+1] the low 16 bits.
func UInt32(regs []uint16, offset int) Value {
	if offset+1 >= len(regs) {
		return Value{}
	}
	return Value{Kind: KindUInt32, U32: uint32(regs[offset])<<16 | uint32(regs[offset+1])}
}

// Float32 reinterprets a big-endian register pair as an IEEE-754 single.
// Bit-pattern reinterpretation, not a numeric conversion.
func Float32(regs []uint16, offset int) Value {
	if offset+1 >= len(regs) {
		return Value{}
	}
	bits := uint32(regs[offset])<<16 | uint32(regs[offset+1])
	return Value{Kind: KindFloat32, F32: math.Float32frombits(bits)}
}

// Float64 reinterprets four consecutive big-endian registers as an
// IEEE-754 double.
func Float64(regs []uint16, offset int) Value {
	if offset+3 >= len(regs) {
		return Value{}
	}
	bits := uint64(regs[offset])<<48 |
		uint64(regs[offset+1])<<32 |
		uint64(regs[offset+2])<<16 |
		uint64(regs[offset+3])
	return Value{Kind: KindFloat64, F64: math.Float64frombits(bits)}
}

// dropInvalidUTF8 removes invalid byte sequences. Station firmware does
// not guarantee clean strings.
func dropInvalidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r != utf8.RuneError || size > 1 {
			sb.WriteRune(r)
		}
		b = b[size:]
	}
	return sb.String()
}
