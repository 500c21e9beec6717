package bridge

import (
	"fmt"
	"net"
)

// AllocatePort asks the OS for a currently-free TCP port by binding a
// transient listener to port 0 and reading back the assigned number.
// The probe socket is closed before returning; only the number is kept,
// so the port is free again by the time the caller binds it.
//
// A single attempt is made. On failure the returned error wraps
// ErrPortAllocation and the caller decides whether to retry.
func AllocatePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPortAllocation, err)
	}
	defer listener.Close()

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("%w: listener address %q is not a TCP address", ErrPortAllocation, listener.Addr())
	}

	return addr.Port, nil
}
