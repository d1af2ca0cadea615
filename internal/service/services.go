// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service defines the core business logic interfaces and service
// implementations for the go-pass-vault application.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Services is the top-level container that groups all application service
// implementations. It is constructed once at startup and injected into the
// RPC handler layer.
type Services struct {
	// AuthService handles account creation, login, token lifecycle, and
	// password rotation.
	AuthService AuthService

	// PasswordService manages encrypted vault entries on behalf of
	// authenticated users.
	PasswordService PasswordService
}

// NewServices constructs and wires all application services from the
// provided storage layer and logger.
//
// The cipher registry is built here — AES-256-GCM first, making it the
// default for new writes — and shared by both services.
//
// Returns a fully initialised *Services or an error if the registry fails
// to initialise.
func NewServices(storages *store.Storages, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	encryption, err := crypto.NewManager(crypto.AES256GCM{})
	if err != nil {
		return nil, fmt.Errorf("error creating cipher registry: %w", err)
	}

	clock := utils.SystemClock{}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.TokenRepository, encryption, clock, logger),
		PasswordService: NewPasswordService(storages.PasswordRepository, encryption, clock, logger),
	}, nil
}
