// internal/station/station_test.go
package station

import (
	"errors"
	"testing"
)

func TestResolve_Station(t *testing.T) {
	u, err := Resolve(RoleStation, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.UnitID != 200 || u.Role != RoleStation {
		t.Fatalf("got %+v", u)
	}
}

func TestResolve_Sockets(t *testing.T) {
	for _, n := range []int{1, 2} {
		u, err := Resolve(RoleSocket, n, 2)
		if err != nil {
			t.Fatalf("socket %d: unexpected error: %v", n, err)
		}
		if u.UnitID != uint8(n) || u.Socket != n {
			t.Fatalf("socket %d: got %+v", n, u)
		}
	}
}

func TestResolve_SocketOutOfRange(t *testing.T) {
	cases := []struct {
		socket, count int
	}{
		{3, 2},
		{0, 2},
		{-1, 2},
		{1, 0},
	}
	for _, c := range cases {
		_, err := Resolve(RoleSocket, c.socket, c.count)
		if !errors.Is(err, ErrSocketOutOfRange) {
			t.Errorf("socket=%d count=%d: expected ErrSocketOutOfRange, got %v", c.socket, c.count, err)
		}
	}
}

func TestWindows(t *testing.T) {
	sw := Windows(RoleStation)
	if len(sw) != 2 || sw[0].Base != 100 || sw[1].Base != 1100 {
		t.Fatalf("station windows: %+v", sw)
	}
	kw := Windows(RoleSocket)
	if len(kw) != 2 || kw[0].Base != 300 || kw[1].Base != 1200 {
		t.Fatalf("socket windows: %+v", kw)
	}
}
