// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Handler-local sentinel errors for conditions that arise in the binding
// itself rather than in the service layer.
var (
	// errInvalidParams is returned when a method's parameter object fails
	// to decode.
	errInvalidParams = errors.New("invalid params")

	// errCreateUserDisabled is returned when user.create is called while
	// the allow_create_user gate is off.
	errCreateUserDisabled = errors.New("create user not available")
)

// errorCodeMap translates well-known errors into their stable wire form.
//
// Everything absent from this table is an internal failure: the client
// sees a generic message while the full error is logged server-side with
// its location. User-visible messages never distinguish an unknown
// username from a wrong password, and throttling has its own message only
// because the client must know to retry later.
var errorCodeMap = map[error]rpcError{
	service.ErrInvalidToken:        {Code: codeInvalidToken, Message: "login expired"},
	service.ErrBadCredentials:      {Code: codeGeneralFailure, Message: "invalid username or password"},
	service.ErrLoginSuspended:      {Code: codeGeneralFailure, Message: "try again later"},
	service.ErrInvalidDataProvided: {Code: codeGeneralFailure, Message: "invalid arguments"},
	store.ErrUserAlreadyExists:     {Code: codeGeneralFailure, Message: "user already exists"},
	errCreateUserDisabled:          {Code: codeGeneralFailure, Message: "create user not available"},
	errInvalidParams:               {Code: codeInvalidParams, Message: "invalid params"},
}

// responseFromError maps err onto its wire representation. The second
// return value reports whether the error is internal and should be logged
// with full detail.
func responseFromError(err error) (rpcError, bool) {
	for target, wireErr := range errorCodeMap {
		if errors.Is(err, target) {
			return wireErr, false
		}
	}
	return rpcError{Code: codeInternalError, Message: "internal error"}, true
}
