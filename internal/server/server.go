// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type server struct {
	httpServer *httpServer
}

// NewServer builds the transport server bundle from the initialised
// handlers and server configuration.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	http := newHTTPServer(handlers.RPC.Init(), cfg)

	return &server{
		httpServer: http,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		fmt.Printf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.httpServer.Shutdown()

		close(idleConnectionsClosed)
	}()

	fmt.Println("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	fmt.Println("server Shutdown gracefully")

	return nil
}
