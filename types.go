package main

import (
	"context"
	"net"
	"sync"

	"go.uber.org/zap"
)

type (
	// Server serves single lines of the configured file over a
	// plain-text TCP protocol until a client sends SHUTDOWN or the
	// run context is cancelled.
	Server interface {
		Run(ctx context.Context) error
	}

	Config struct {
		Address  string
		FilePath string
	}

	server struct {
		config   Config
		log      *zap.SugaredLogger
		listener net.Listener
		shutdown context.CancelFunc
		wg       sync.WaitGroup
		ready    chan struct{} // closed once the listener is bound
	}
)
