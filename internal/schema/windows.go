// internal/schema/windows.go
package schema

// Field names looked up programmatically outside this package.
const (
	FieldSocketCount         = "socketCount"
	FieldBackofficeConnected = "backofficeConnected"
	FieldAvailability        = "availability"
)

// The four register windows of the Alfen charging station, as documented
// in the vendor's Modbus TCP register map. Offsets and spans are the
// contract with the hardware: a one-register error here silently corrupts
// every later field in the same window.

// StationIdentification is read from the station unit (registers 100-178).
var StationIdentification = Window{
	Name:  "station identification",
	Base:  100,
	Count: 79,
	Fields: []Field{
		{Name: "name", Kind: str, Offset: 0, Span: 17},
		{Name: "manufacturer", Kind: str, Offset: 17, Span: 5},
		{Name: "modbusVersion", Kind: u16, Offset: 22},
		{Name: "firmware", Kind: str, Offset: 23, Span: 17},
		{Name: "platform", Kind: str, Offset: 40, Span: 17},
		{Name: "serial", Kind: str, Offset: 57, Span: 11},
		{Name: "year", Kind: i16, Offset: 68},
		{Name: "month", Kind: i16, Offset: 69},
		{Name: "day", Kind: i16, Offset: 70},
		{Name: "hour", Kind: i16, Offset: 71},
		{Name: "minute", Kind: i16, Offset: 72},
		{Name: "second", Kind: i16, Offset: 73},
	},
}

// StationStatus is read from the station unit (registers 1100-1105).
var StationStatus = Window{
	Name:  "station status",
	Base:  1100,
	Count: 6,
	Fields: []Field{
		{Name: "maxCurrentAmps", Kind: f32, Offset: 0},
		{Name: "temperatureC", Kind: f32, Offset: 2},
		{Name: FieldBackofficeConnected, Kind: u16, Offset: 4},
		{Name: FieldSocketCount, Kind: u16, Offset: 5},
	},
}

// SocketMeter is read from a socket unit (registers 300-424).
var SocketMeter = Window{
	Name:  "socket meter",
	Base:  300,
	Count: 125,
	Fields: []Field{
		{Name: "state", Kind: u16, Offset: 0},
		{Name: "meterAgeMs", Kind: u16, Offset: 1},
		{Name: "meterType", Kind: u16, Offset: 5},

		{Name: "voltageL1N", Kind: f32, Offset: 6},
		{Name: "voltageL2N", Kind: f32, Offset: 8},
		{Name: "voltageL3N", Kind: f32, Offset: 10},
		{Name: "voltageL1L2", Kind: f32, Offset: 12},
		{Name: "voltageL2L3", Kind: f32, Offset: 14},
		{Name: "voltageL3L1", Kind: f32, Offset: 16},

		{Name: "currentN", Kind: f32, Offset: 18},
		{Name: "currentL1", Kind: f32, Offset: 20},
		{Name: "currentL2", Kind: f32, Offset: 22},
		{Name: "currentL3", Kind: f32, Offset: 24},
		{Name: "currentSum", Kind: f32, Offset: 26},

		{Name: "powerFactorL1", Kind: f32, Offset: 28},
		{Name: "powerFactorL2", Kind: f32, Offset: 30},
		{Name: "powerFactorL3", Kind: f32, Offset: 32},
		{Name: "powerFactorSum", Kind: f32, Offset: 34},

		{Name: "frequencyHz", Kind: f32, Offset: 36},

		{Name: "realPowerL1", Kind: f32, Offset: 38},
		{Name: "realPowerL2", Kind: f32, Offset: 40},
		{Name: "realPowerL3", Kind: f32, Offset: 42},
		{Name: "realPowerSum", Kind: f32, Offset: 44},

		{Name: "apparentPowerL1", Kind: f32, Offset: 46},
		{Name: "apparentPowerL2", Kind: f32, Offset: 48},
		{Name: "apparentPowerL3", Kind: f32, Offset: 50},
		{Name: "apparentPowerSum", Kind: f32, Offset: 52},

		{Name: "reactivePowerL1", Kind: f32, Offset: 54},
		{Name: "reactivePowerL2", Kind: f32, Offset: 56},
		{Name: "reactivePowerL3", Kind: f32, Offset: 58},
		{Name: "reactivePowerSum", Kind: f32, Offset: 60},

		{Name: "energyDeliveredL1", Kind: f64, Offset: 62},
		{Name: "energyDeliveredL2", Kind: f64, Offset: 66},
		{Name: "energyDeliveredL3", Kind: f64, Offset: 70},
		{Name: "energyDeliveredSum", Kind: f64, Offset: 74},

		{Name: "energyConsumedL1", Kind: f64, Offset: 78},
		{Name: "energyConsumedL2", Kind: f64, Offset: 82},
		{Name: "energyConsumedL3", Kind: f64, Offset: 86},
		{Name: "energyConsumedSum", Kind: f64, Offset: 90},

		{Name: "apparentEnergyL1", Kind: f64, Offset: 92},
		{Name: "apparentEnergyL2", Kind: f64, Offset: 96},
		{Name: "apparentEnergyL3", Kind: f64, Offset: 100},
		{Name: "apparentEnergySum", Kind: f64, Offset: 104},

		{Name: "reactiveEnergyL1", Kind: f64, Offset: 108},
		{Name: "reactiveEnergyL2", Kind: f64, Offset: 112},
		{Name: "reactiveEnergyL3", Kind: f64, Offset: 116},
		{Name: "reactiveEnergySum", Kind: f64, Offset: 120},
	},
}

// SocketStatus is read from a socket unit (registers 1200-1215).
var SocketStatus = Window{
	Name:  "socket status",
	Base:  1200,
	Count: 16,
	Fields: []Field{
		{Name: FieldAvailability, Kind: u16, Offset: 0},
		{Name: "mode3State", Kind: str, Offset: 1, Span: 5},
		{Name: "actualMaxCurrent", Kind: f32, Offset: 6},
		{Name: "validTimeSeconds", Kind: u32, Offset: 8},
		{Name: "setMaxCurrent", Kind: f32, Offset: 10},
		{Name: "safeCurrent", Kind: f32, Offset: 12},
		{Name: "setpointAccounted", Kind: u16, Offset: 14},
		{Name: "chargePhases", Kind: u16, Offset: 15},
	},
}
