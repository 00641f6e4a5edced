package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const pingTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// storePinger is satisfied by both the postgres pool and the badger store.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the /live, /ready and /health probes.
type HealthHandler struct {
	store     storePinger
	component string
	version   string
	clock     clockwork.Clock
	started   time.Time
}

// NewHealthHandler creates a HealthHandler. component names the store in the
// /health report, e.g. "postgres" or "badger". Uptime counts from this call.
func NewHealthHandler(store storePinger, component, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{
		store:     store,
		component: component,
		version:   version,
		clock:     clock,
		started:   clock.Now(),
	}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live never touches the store.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.clock.Now()})
}

// Ready answers 200 while the store responds to a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	store := h.ping(r.Context())
	writeJSON(w, httpStatus(store.Status), HealthResponse{Status: store.Status, Timestamp: h.clock.Now()})
}

// Health is Ready plus the build version, uptime and per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	store := h.ping(r.Context())
	now := h.clock.Now()

	writeJSON(w, httpStatus(store.Status), HealthResponse{
		Status:     store.Status,
		Version:    h.version,
		Uptime:     now.Sub(h.started).Truncate(time.Second).String(),
		Components: map[string]CompStatus{h.component: store},
		Timestamp:  now,
	})
}

func (h *HealthHandler) ping(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := h.clock.Now()
	if err := h.store.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: h.clock.Since(start).String()}
}

func httpStatus(status string) int {
	if status != statusOK {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
