// internal/reader/modbus/client.go
package modbus

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Client is a single TCP connection to one charger.
// It serializes requests because it mutates SlaveId per logical unit.
type Client struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ReadHoldingRegisters reads qty registers at addr from one logical unit.
// The response payload is unpacked to big-endian registers; a device that
// answers with fewer bytes than requested yields a shorter slice.
func (c *Client) ReadHoldingRegisters(unitID uint8, addr, qty uint16) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	payload, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(payload), nil
}

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
