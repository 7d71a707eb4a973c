// Package server binds the HTTP listener, walking up from the configured
// port when it is already taken.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	"portfolio-contact-backend/pkg/logger"
)

// Listen binds host:port. When the port is in use it tries port+1, port+2,
// ... for at most attempts binds in total. Any other bind error is returned
// immediately.
func Listen(ctx context.Context, host string, port, attempts int) (net.Listener, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lc net.ListenConfig
	var lastErr error
	for i := 0; i < attempts; i++ {
		p := port + i
		addr := net.JoinHostPort(host, strconv.Itoa(p))

		l, err := lc.Listen(ctx, "tcp", addr)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("listen %s: %w", addr, err)
		}

		logger.Log.Warn("Port is busy, trying next", "port", p, "next", p+1)
		lastErr = err
	}
	return nil, fmt.Errorf("no free port in %d-%d: %w", port, port+attempts-1, lastErr)
}

// Port returns the TCP port a listener ended up on
func Port(l net.Listener) int {
	if addr, ok := l.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
