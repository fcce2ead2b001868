// internal/station/station.go
package station

import (
	"errors"
	"fmt"

	"github.com/tamzrod/alfen-reader/internal/schema"
)

// Role identifies which logical device inside the charger a unit
// addresses: the station itself or one of its charging sockets.
type Role uint8

const (
	RoleStation Role = iota
	RoleSocket
)

// UnitStation is the fixed Modbus unit identifier of the station's
// management interface. Sockets are addressed by their own 1-based index.
const UnitStation uint8 = 200

// ErrSocketOutOfRange signals a socket index beyond the socket count the
// station reports. It is the only addressing failure the model knows.
var ErrSocketOutOfRange = errors.New("station: socket index out of range")

// LogicalUnit maps a role onto the Modbus unit identifier that carries it.
// Constructed once per read, immutable, never persisted.
type LogicalUnit struct {
	Role   Role
	Socket int // 1-based, RoleSocket only
	UnitID uint8
}

// Resolve returns the logical unit for a role. socket and socketCount are
// only consulted for RoleSocket; socketCount is the value previously
// decoded from the station status window.
func Resolve(role Role, socket, socketCount int) (LogicalUnit, error) {
	switch role {
	case RoleStation:
		return LogicalUnit{Role: RoleStation, UnitID: UnitStation}, nil
	case RoleSocket:
		// 247 is the top of the Modbus unit identifier space.
		if socket < 1 || socket > socketCount || socket > 247 {
			return LogicalUnit{}, fmt.Errorf("%w: socket %d, station reports %d", ErrSocketOutOfRange, socket, socketCount)
		}
		return LogicalUnit{Role: RoleSocket, Socket: socket, UnitID: uint8(socket)}, nil
	}
	return LogicalUnit{}, fmt.Errorf("station: unknown role %d", role)
}

// Windows returns the register windows applicable to a role, in read order.
func Windows(role Role) []schema.Window {
	if role == RoleStation {
		return []schema.Window{schema.StationIdentification, schema.StationStatus}
	}
	return []schema.Window{schema.SocketMeter, schema.SocketStatus}
}
