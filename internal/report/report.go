// internal/report/report.go
package report

import (
	"fmt"
	"strconv"

	"github.com/tamzrod/alfen-reader/internal/decode"
)

// missingMark is printed for fields the device did not return.
const missingMark = "-"

// FormatValue renders one decoded value. prec is the number of decimals
// for float kinds and is ignored for the rest.
func FormatValue(v decode.Value, prec int) string {
	switch v.Kind {
	case decode.KindText:
		return v.Text
	case decode.KindUInt16:
		return strconv.FormatUint(uint64(v.U16), 10)
	case decode.KindInt16:
		return strconv.FormatInt(int64(v.I16), 10)
	case decode.KindUInt32:
		return strconv.FormatUint(uint64(v.U32), 10)
	case decode.KindFloat32:
		return strconv.FormatFloat(float64(v.F32), 'f', prec, 32)
	case decode.KindFloat64:
		return strconv.FormatFloat(v.F64, 'f', prec, 64)
	}
	return missingMark
}

// formatBool renders a register that the station treats as boolean.
// Any nonzero value counts as on; the hardware is only ever observed to
// emit 0 and 1, but wider codes would collapse to on here.
func formatBool(v decode.Value, on, off string) string {
	if v.Missing() {
		return missingMark
	}
	if v.U16 != 0 {
		return on
	}
	return off
}

// formatClock assembles the station clock from its six signed fields.
// Any missing part blanks the whole timestamp.
func formatClock(fields map[string]decode.Value) string {
	parts := make([]int16, 6)
	for i, name := range [...]string{"year", "month", "day", "hour", "minute", "second"} {
		v := fields[name]
		if v.Kind != decode.KindInt16 {
			return missingMark
		}
		parts[i] = v.I16
	}
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		parts[0], parts[1], parts[2], parts[3], parts[4], parts[5])
}
