// internal/reader/reader.go
package reader

import (
	"errors"
	"fmt"

	"github.com/tamzrod/alfen-reader/internal/decode"
	"github.com/tamzrod/alfen-reader/internal/schema"
	"github.com/tamzrod/alfen-reader/internal/station"
)

// Client abstracts the Modbus operation the reader needs.
// The reader depends on geometry only; one connection multiplexes the
// station unit and every socket unit.
type Client interface {
	ReadHoldingRegisters(unitID uint8, addr, qty uint16) ([]uint16, error)
}

// Reader performs one-shot reads of the charger's register windows and
// decodes them. It holds no state between calls.
type Reader struct {
	client Client
}

// New creates a reader over a connected client.
func New(client Client) (*Reader, error) {
	if client == nil {
		return nil, errors.New("reader: client required")
	}
	return &Reader{client: client}, nil
}

// ReadStation fetches and decodes the station identification and status
// windows from the management unit.
func (r *Reader) ReadStation() (StationReport, error) {
	unit, err := station.Resolve(station.RoleStation, 0, 0)
	if err != nil {
		return StationReport{}, err
	}

	ident, err := r.readWindow(unit.UnitID, schema.StationIdentification)
	if err != nil {
		return StationReport{}, err
	}
	status, err := r.readWindow(unit.UnitID, schema.StationStatus)
	if err != nil {
		return StationReport{}, err
	}

	rep := StationReport{
		Identification: ident,
		Status:         status,
	}
	if v := status[schema.FieldSocketCount]; v.Kind == decode.KindUInt16 {
		rep.SocketCount = int(v.U16)
	}
	return rep, nil
}

// ReadSocket fetches and decodes the meter and status windows of one
// socket. socketCount is the count previously reported by the station;
// an index beyond it fails with station.ErrSocketOutOfRange before any
// request is issued.
func (r *Reader) ReadSocket(socket, socketCount int) (SocketReport, error) {
	unit, err := station.Resolve(station.RoleSocket, socket, socketCount)
	if err != nil {
		return SocketReport{}, err
	}

	meter, err := r.readWindow(unit.UnitID, schema.SocketMeter)
	if err != nil {
		return SocketReport{}, err
	}
	status, err := r.readWindow(unit.UnitID, schema.SocketStatus)
	if err != nil {
		return SocketReport{}, err
	}

	return SocketReport{Socket: socket, Meter: meter, Status: status}, nil
}

// ReadAll reads the station and then every socket it reports.
func (r *Reader) ReadAll() (StationReport, []SocketReport, error) {
	st, err := r.ReadStation()
	if err != nil {
		return StationReport{}, nil, err
	}

	sockets := make([]SocketReport, 0, st.SocketCount)
	for n := 1; n <= st.SocketCount; n++ {
		sock, err := r.ReadSocket(n, st.SocketCount)
		if err != nil {
			return st, sockets, err
		}
		sockets = append(sockets, sock)
	}
	return st, sockets, nil
}

// readWindow issues one holding-register read for a window and decodes
// it. A block shorter than the window count is decoded as-is: tail
// fields come back Missing, the rest decode normally.
func (r *Reader) readWindow(unitID uint8, w schema.Window) (map[string]decode.Value, error) {
	regs, err := r.client.ReadHoldingRegisters(unitID, w.Base, w.Count)
	if err != nil {
		return nil, fmt.Errorf("reader: %s (unit=%d addr=%d qty=%d): %w", w.Name, unitID, w.Base, w.Count, err)
	}
	return w.Decode(regs), nil
}
