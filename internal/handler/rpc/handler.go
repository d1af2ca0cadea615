// Package rpc implements the JSON-RPC transport binding of the
// application. It translates named method calls arriving on POST /rpc
// into service-layer calls and maps service errors onto the stable wire
// codes clients rely on (-2 invalid token, -1 general failure).
//
// The binding is deliberately thin: parameter decoding, token resolution,
// and error mapping live here; every domain decision lives in the service
// layer.
package rpc

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// methodFunc is a dispatch-table entry: it decodes its own parameters and
// returns a JSON-serializable result.
type methodFunc func(ctx context.Context, params json.RawMessage) (any, error)

// Handler is the root JSON-RPC handler. It holds the service container,
// the dispatch table mapping method names to implementations, and the
// user-creation gate from configuration.
//
// Handler is constructed once at application startup via [NewHandler] and
// is safe for concurrent use.
type Handler struct {
	// services provides access to all application business-logic
	// operations.
	services *service.Services

	// allowCreateUser gates the user.create method.
	allowCreateUser bool

	// logger is the structured logger used by the handler and all
	// middleware.
	logger *logger.Logger

	// methods is the dispatch table; immutable after construction.
	methods map[string]methodFunc
}

// NewHandler constructs a [Handler] with the provided service container,
// application configuration, and logger, and registers the full method
// table.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Debug().Msg("rpc handler created")

	h := &Handler{
		services:        services,
		allowCreateUser: cfg.AllowCreateUser,
		logger:          logger,
	}

	h.methods = map[string]methodFunc{
		"user.login":           h.login,
		"user.create":          h.createUser,
		"user.change_password": h.changePassword,
		"user.logout":          h.logout,
		"password.list":        h.listPasswords,
		"password.view":        h.viewPassword,
		"password.create":      h.createPassword,
		"password.update":      h.updatePassword,
		"password.delete":      h.deletePassword,
	}

	return h
}

// rpc is the POST /rpc endpoint. It decodes a single JSON-RPC request,
// dispatches it, and writes the response. A request without an id that
// reaches a registered method is a notification: the method runs and the
// body is left empty. Parse errors, a missing method name, and unknown
// methods are answered with an error body whether or not an id is present.
func (h *Handler) rpc(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("malformed rpc request body")
		h.writeResponse(w, r, rpcResponse{
			JSONRPC: "2.0",
			ID:      json.RawMessage("null"),
			Error:   &rpcError{Code: codeParseError, Message: "parse error"},
		})
		return
	}

	if req.Method == "" {
		h.writeResponse(w, r, rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: codeInvalidRequest, Message: "invalid request"},
		})
		return
	}

	method, ok := h.methods[req.Method]
	if !ok {
		h.writeResponse(w, r, rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: codeMethodNotFound, Message: "method not found"},
		})
		return
	}

	result, err := method(r.Context(), req.Params)

	if req.ID == nil {
		// Notification: the caller asked for no reply.
		w.WriteHeader(http.StatusOK)
		return
	}

	response := rpcResponse{JSONRPC: "2.0", ID: req.ID}
	if err != nil {
		wireErr, internal := responseFromError(err)
		if internal {
			log.Err(err).Str("rpc_method", req.Method).Msg("rpc method failed with internal error")
		}
		response.Error = &wireErr
	} else {
		response.Result = result
	}

	h.writeResponse(w, r, response)
}

func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, response rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write rpc response")
	}
}
