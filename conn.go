package main

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"sync"
)

// client wraps one accepted connection. The mutex serializes the two
// actors allowed to touch the socket: the handler's request loop and
// the shutdown watcher's forced close.
type client struct {
	rwc    net.Conn
	mu     sync.Mutex
	closed bool
}

func (c *client) write(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return net.ErrClosed
	}

	_, err := c.rwc.Write(p)

	return err
}

// close shuts the socket down at most once; closing an already-closed
// client is a no-op. A read pending on another goroutine is unblocked
// by the close.
func (c *client) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.rwc.Close()
}

// handleConnection owns one accepted connection for its entire
// lifetime: a sequential request loop racing against the shutdown
// broadcast. Whichever ends first closes the socket.
func (s *server) handleConnection(ctx context.Context, conn net.Conn) {
	c := &client{rwc: conn}
	done := make(chan struct{})

	// Force-close the socket when shutdown is broadcast so the request
	// loop's pending read returns immediately. The close is best-effort.
	go func() {
		select {
		case <-ctx.Done():
			_ = c.close()
		case <-done:
		}
	}()

	defer func() {
		close(done)
		_ = c.close()
		s.wg.Done()
	}()

	s.log.Debugw("connection established", "remote", conn.RemoteAddr().String())

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		switch req := parseRequest(scanner.Text()); req.kind {
		case requestGet:
			s.handleGet(c, req.arg)
		case requestShutdown:
			s.log.Infow("shutdown requested", "remote", conn.RemoteAddr().String())
			s.shutdown()

			return
		case requestQuit:
			return
		default:
			s.log.Warnw("invalid request", "line", req.raw)
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		s.log.Warnw("read failed", "remote", conn.RemoteAddr().String(), "error", err)
	}
}

// handleGet answers a single GET request. Every failure degrades to an
// ERR response; a failed write is only logged and the request loop
// keeps reading.
func (s *server) handleGet(c *client, arg string) {
	response := "ERR\n"

	n, err := strconv.Atoi(arg)

	switch {
	case err != nil || n < 0:
		s.log.Warnw("bad line number", "arg", arg)
	default:
		line, err := readLine(s.config.FilePath, n)
		if err != nil {
			s.log.Warnw("lookup failed", "line", n, "error", err)
		} else {
			response = line + "\n"
		}
	}

	if err := c.write([]byte(response)); err != nil {
		s.log.Warnw("write failed", "error", err)
	}
}
