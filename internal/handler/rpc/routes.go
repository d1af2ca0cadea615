package rpc

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init constructs and returns a fully configured [chi.Mux] router that
// serves the JSON-RPC endpoint.
//
// # Global middleware
//
// Every request passes through the following middleware chain in order:
//   - [middleware.Recoverer] — catches panics in handlers, logs the stack
//     trace, and returns HTTP 500 to the client so the server stays alive.
//   - [Handler.withTraceID] — resolves or generates a trace ID and stores
//     an enriched logger in the request context for structured tracing.
//   - withLogging — emits a structured access-log entry (URI, method,
//     status, duration, response size) after each request completes.
//     Request bodies are never logged: every method on this surface
//     carries secrets.
//
// # Routes
//
//	POST /rpc — the single JSON-RPC endpoint dispatching all methods of
//	the protocol (user.login, user.create, user.change_password,
//	user.logout, password.list, password.view, password.create,
//	password.update, password.delete).
//
// Anything else returns HTTP 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging)

	router.Post("/rpc", h.rpc)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return router
}
