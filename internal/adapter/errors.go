package adapter

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the server answers with the
// invalid-token code: the session has expired or was revoked and the user
// must log in again.
var ErrUnauthorized = errors.New("session expired, log in again")

// RPCError is a server-reported application error carrying the wire code
// and human-readable message.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
