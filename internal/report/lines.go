// internal/report/lines.go
package report

import (
	"fmt"

	"github.com/tamzrod/alfen-reader/internal/decode"
	"github.com/tamzrod/alfen-reader/internal/reader"
	"github.com/tamzrod/alfen-reader/internal/schema"
)

// row binds a display label to a window field.
type row struct {
	label string
	field string
	unit  string
	prec  int
}

// StationLines renders the decoded station report.
func StationLines(st reader.StationReport) []string {
	id := st.Identification

	lines := []string{
		"Station",
		entry("Name", FormatValue(id["name"], 0), ""),
		entry("Manufacturer", FormatValue(id["manufacturer"], 0), ""),
		entry("Modbus version", FormatValue(id["modbusVersion"], 0), ""),
		entry("Firmware", FormatValue(id["firmware"], 0), ""),
		entry("Platform", FormatValue(id["platform"], 0), ""),
		entry("Serial", FormatValue(id["serial"], 0), ""),
		entry("Station time", formatClock(id), ""),
		"",
		"Station status",
	}

	for _, r := range []row{
		{label: "Max current", field: "maxCurrentAmps", unit: "A", prec: 1},
		{label: "Temperature", field: "temperatureC", unit: "°C", prec: 1},
	} {
		lines = append(lines, entry(r.label, FormatValue(st.Status[r.field], r.prec), r.unit))
	}
	lines = append(lines,
		entry("Backoffice", formatBool(st.Status[schema.FieldBackofficeConnected], "Connected", "Disconnected"), ""),
		entry("Sockets", FormatValue(st.Status[schema.FieldSocketCount], 0), ""),
	)
	return lines
}

// SocketLines renders the decoded report of one socket.
func SocketLines(s reader.SocketReport) []string {
	lines := []string{fmt.Sprintf("Socket %d", s.Socket)}
	lines = append(lines, section("Meter", s.Meter, []row{
		{label: "State", field: "state"},
		{label: "Age", field: "meterAgeMs", unit: "ms"},
		{label: "Type", field: "meterType"},
	})...)
	lines = append(lines, section("Voltages", s.Meter, []row{
		{label: "L1-N", field: "voltageL1N", unit: "V", prec: 2},
		{label: "L2-N", field: "voltageL2N", unit: "V", prec: 2},
		{label: "L3-N", field: "voltageL3N", unit: "V", prec: 2},
		{label: "L1-L2", field: "voltageL1L2", unit: "V", prec: 2},
		{label: "L2-L3", field: "voltageL2L3", unit: "V", prec: 2},
		{label: "L3-L1", field: "voltageL3L1", unit: "V", prec: 2},
	})...)
	lines = append(lines, section("Currents", s.Meter, []row{
		{label: "N", field: "currentN", unit: "A", prec: 2},
		{label: "L1", field: "currentL1", unit: "A", prec: 2},
		{label: "L2", field: "currentL2", unit: "A", prec: 2},
		{label: "L3", field: "currentL3", unit: "A", prec: 2},
		{label: "Sum", field: "currentSum", unit: "A", prec: 2},
	})...)
	lines = append(lines, section("Power factor", s.Meter, []row{
		{label: "L1", field: "powerFactorL1", prec: 3},
		{label: "L2", field: "powerFactorL2", prec: 3},
		{label: "L3", field: "powerFactorL3", prec: 3},
		{label: "Sum", field: "powerFactorSum", prec: 3},
	})...)
	lines = append(lines, section("Frequency", s.Meter, []row{
		{label: "Frequency", field: "frequencyHz", unit: "Hz", prec: 2},
	})...)
	lines = append(lines, section("Real power", s.Meter, phaseRows("realPower", "W"))...)
	lines = append(lines, section("Apparent power", s.Meter, phaseRows("apparentPower", "VA"))...)
	lines = append(lines, section("Reactive power", s.Meter, phaseRows("reactivePower", "VAr"))...)
	lines = append(lines, section("Real energy delivered", s.Meter, phaseRows("energyDelivered", "Wh"))...)
	lines = append(lines, section("Real energy consumed", s.Meter, phaseRows("energyConsumed", "Wh"))...)
	lines = append(lines, section("Apparent energy", s.Meter, phaseRows("apparentEnergy", "VAh"))...)
	lines = append(lines, section("Reactive energy", s.Meter, phaseRows("reactiveEnergy", "VArh"))...)

	lines = append(lines, "", "Socket status",
		entry("Availability", formatBool(s.Status[schema.FieldAvailability], "Operative", "Inoperative"), ""))
	for _, r := range []row{
		{label: "Mode 3 state", field: "mode3State"},
		{label: "Actual max current", field: "actualMaxCurrent", unit: "A", prec: 2},
		{label: "Valid time", field: "validTimeSeconds", unit: "s"},
		{label: "Set max current", field: "setMaxCurrent", unit: "A", prec: 2},
		{label: "Safe current", field: "safeCurrent", unit: "A", prec: 2},
		{label: "Setpoint accounted", field: "setpointAccounted"},
		{label: "Charge phases", field: "chargePhases"},
	} {
		lines = append(lines, entry(r.label, FormatValue(s.Status[r.field], r.prec), r.unit))
	}
	return lines
}

// phaseRows expands a per-phase field prefix to its four rows.
func phaseRows(prefix, unit string) []row {
	return []row{
		{label: "L1", field: prefix + "L1", unit: unit, prec: 2},
		{label: "L2", field: prefix + "L2", unit: unit, prec: 2},
		{label: "L3", field: prefix + "L3", unit: unit, prec: 2},
		{label: "Sum", field: prefix + "Sum", unit: unit, prec: 2},
	}
}

func section(header string, fields map[string]decode.Value, rows []row) []string {
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "", header)
	for _, r := range rows {
		lines = append(lines, entry(r.label, FormatValue(fields[r.field], r.prec), r.unit))
	}
	return lines
}

func entry(label, value, unit string) string {
	if unit != "" && value != missingMark {
		value += " " + unit
	}
	return fmt.Sprintf("  %-20s %s", label, value)
}
