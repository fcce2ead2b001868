// internal/reader/builder.go
package reader

import (
	"time"

	cfg "github.com/tamzrod/alfen-reader/internal/config"
	rmodbus "github.com/tamzrod/alfen-reader/internal/reader/modbus"
)

// Build constructs a Reader with a connected Modbus client and returns a
// closer for the underlying connection. Fail fast at startup: no retries.
func Build(c cfg.ChargerConfig) (*Reader, func() error, error) {
	client, err := rmodbus.New(rmodbus.Config{
		Endpoint: c.Endpoint,
		Timeout:  time.Duration(c.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	r, err := New(client)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return r, client.Close, nil
}
