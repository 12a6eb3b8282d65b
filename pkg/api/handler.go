package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ethpandaops/checkpointquorum/pkg/checkpoint"
	"github.com/ethpandaops/checkpointquorum/pkg/config"
	"github.com/ethpandaops/checkpointquorum/pkg/metrics"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// ClientForNetwork resolves a *checkpoint.Client for a given network,
// failing with a checkpoint.AppError (KindEndpointsNotFound) when the
// network has no configured endpoints.
type ClientForNetwork func(network config.Network) (*checkpoint.Client, error)

// HealthSnapshot aggregates per-endpoint reachability across every
// network's background prober. Nil when probing is disabled.
type HealthSnapshot func() map[string]bool

// Handler serves GET /{network}/finalized and GET /healthz.
type Handler struct {
	log logrus.FieldLogger

	clientFor ClientForNetwork
	health    HealthSnapshot
	metrics   *metrics.Metrics
}

// NewHandler builds a Handler. health may be nil when the background probe
// (L0f) is disabled.
func NewHandler(log logrus.FieldLogger, clientFor ClientForNetwork, health HealthSnapshot, m *metrics.Metrics) *Handler {
	return &Handler{
		log:       log.WithField("module", "api"),
		clientFor: clientFor,
		health:    health,
		metrics:   m,
	}
}

// Register wires the sole business route onto router. httprouter forbids a
// wildcard segment and a static segment as siblings at the same tree node,
// so /healthz and /metrics are NOT registered here — they're served from a
// separate, static-only mux in Server.Start, with this router mounted as
// its fallback for everything else.
func (h *Handler) Register(router *httprouter.Router) {
	router.GET("/:network/finalized", h.handleFinalized)
}

// Healthz returns the plain http.HandlerFunc for GET /healthz. Kept off the
// httprouter instance (see Register) since it's a static path and the
// business route is a wildcard at the same level.
func (h *Handler) Healthz() http.HandlerFunc {
	return h.handleHealthz
}

func (h *Handler) handleFinalized(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	start := time.Now()

	networkParam := p.ByName("network")

	network, err := config.ParseNetwork(networkParam)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())

		return
	}

	client, err := h.clientFor(network)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())

		return
	}

	verbose := cast.ToBool(r.URL.Query().Get("verbose"))

	result := client.FetchFinalityCheckpoints(r.Context(), checkpoint.Finalized())

	label := ClassificationLabel(result)
	if h.metrics != nil {
		h.metrics.ObserveClassification(network.String(), label)
		h.metrics.RequestDuration.WithLabelValues(network.String(), "200").Observe(time.Since(start).Seconds())
	}

	h.log.WithFields(logrus.Fields{
		"network": network.String(),
		"verbose": verbose,
		"result":  label,
	}).Debug("Handled finalized checkpoint request")

	writeJSON(w, http.StatusOK, NewFinalizedResponse(result, verbose))
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		writeJSON(w, http.StatusOK, map[string]bool{})

		return
	}

	writeJSON(w, http.StatusOK, h.health())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response headers are already flushed; nothing more to do.
		return
	}
}

func writeError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
