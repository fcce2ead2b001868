// internal/reader/types.go
package reader

import "github.com/tamzrod/alfen-reader/internal/decode"

// StationReport holds the decoded station windows from one read pass.
type StationReport struct {
	Identification map[string]decode.Value
	Status         map[string]decode.Value

	// SocketCount is the socket count the station reports, or 0 when the
	// status window did not carry it.
	SocketCount int
}

// SocketReport holds the decoded windows of one charging socket.
type SocketReport struct {
	Socket int // 1-based
	Meter  map[string]decode.Value
	Status map[string]decode.Value
}
