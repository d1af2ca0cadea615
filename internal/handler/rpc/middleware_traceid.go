// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader is the name of the HTTP header used to propagate the
// trace identifier between the client and the server.
const traceIDHeader = "X-Trace-ID"

// withTraceID is an HTTP middleware that attaches a trace ID to every
// request for structured logging purposes.
//
// Trace ID resolution: a non-empty "X-Trace-ID" request header is reused
// so an upstream caller can continue an existing trace; otherwise a new
// random UUID is generated.
//
// Once resolved, the middleware derives a child logger carrying the
// "trace_id" field, stores it in the request context (retrievable via
// [logger.FromRequest]), and echoes the trace ID back in the response
// header.
//
// withTraceID must be placed before any middleware that uses
// [logger.FromRequest].
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r)
	})
}
