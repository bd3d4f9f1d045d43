package main

import (
	"context"
	"net"

	"go.uber.org/zap"
)

// NewServer builds a Server for the given config. A nil logger is
// replaced with a no-op logger.
func NewServer(config Config, log *zap.SugaredLogger) Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &server{
		config: config,
		log:    log,
		ready:  make(chan struct{}),
	}
}

// Run binds the configured address and serves until the run context is
// cancelled or a client sends SHUTDOWN. It returns only once every
// connection handler has finished. Only a bind failure is reported as
// an error; a triggered shutdown is a normal return.
func (s *server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Any connection handler can raise the shutdown broadcast by
	// observing a SHUTDOWN request. Cancelling is idempotent, so
	// concurrent triggers are harmless.
	s.shutdown = cancel

	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}

	s.listener = listener
	close(s.ready)

	s.log.Infow("listening", "address", listener.Addr().String(), "file", s.config.FilePath)

	// Closing the listener is what unblocks the Accept call below once
	// shutdown is broadcast.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break // shutdown in progress
			}

			s.log.Errorw("accept failed", "error", err)

			continue
		}

		s.wg.Add(1)
		go s.handleConnection(ctx, conn)
	}

	s.log.Infow("waiting for open connections to finish")
	s.wg.Wait()
	s.log.Infow("server stopped")

	return nil
}
