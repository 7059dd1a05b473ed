package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	PingGenerator(ctx context.Context, timeout time.Duration) error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker          Checker
	GeneratorTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the generation service probe. The editor
// itself is stateless, so the generator is the only external dependency.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	ctx := r.Context()
	generatorStatus := "ok"
	if err := h.Checker.PingGenerator(ctx, h.generatorTimeout()); err != nil {
		generatorStatus = err.Error()
	}
	status := map[string]string{
		"generator": generatorStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if generatorStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) generatorTimeout() time.Duration {
	if h.GeneratorTimeout <= 0 {
		return 500 * time.Millisecond
	}
	return h.GeneratorTimeout
}
