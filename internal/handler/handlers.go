// Package handler provides initialization logic for the inbound transport
// adapters used by the go-pass-vault application. The package exposes a
// unified Handlers struct so the main entrypoint can start transports
// uniformly.
package handler

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler/rpc"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// Handlers groups all initialized inbound transport handlers. The main
// application uses this structure to start the appropriate servers based
// on configuration.
type Handlers struct {
	// RPC contains the initialized JSON-RPC handler serving the /rpc
	// endpoint.
	RPC *rpc.Handler
}

// NewHandlers constructs the Handlers bundle from the provided service
// layer, application configuration, and logger.
func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		RPC: rpc.NewHandler(services, cfg, logger),
	}, nil
}
