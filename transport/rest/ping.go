package rest

import (
	"context"
	"net/http"
)

type PingHandler interface {
	PingHandler(w http.ResponseWriter, r *http.Request)
}

type pingHandler struct {
	checks []func(ctx context.Context) error
}

// NewPingHandler answers "pong" while every check passes.
func NewPingHandler(checks ...func(ctx context.Context) error) PingHandler {
	return &pingHandler{checks: checks}
}

func (that *pingHandler) PingHandler(w http.ResponseWriter, r *http.Request) {
	for _, check := range that.checks {
		if err := check(r.Context()); err != nil {
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
