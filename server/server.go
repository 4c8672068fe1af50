// Package server exposes a Planner over HTTP.
//
// Routes:
//
//	POST /api/routes    – body RouteRequest, response RouteResponse
//	GET  /api/criteria  – supported criterion names
//	GET  /healthz       – liveness and flight-set size
//	GET  /metrics       – Prometheus exposition (when a Gatherer is configured)
//
// Every response carries an X-Request-ID header; an incoming value is kept,
// otherwise a random UUID is assigned.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/planner"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RouteRequest is the body of POST /api/routes.
type RouteRequest struct {
	Criterion string `json:"criterion" validate:"required"`
	Start     *int   `json:"start" validate:"required,gte=0"`
	End       *int   `json:"end" validate:"required,gte=0"`
	T1        *int64 `json:"t1" validate:"required"`
	T2        *int64 `json:"t2" validate:"required"`
}

// RouteResponse is the body returned for a successful query. An infeasible
// query returns Found=false and an empty Flights list.
type RouteResponse struct {
	RequestID string          `json:"request_id"`
	Criterion string          `json:"criterion"`
	Found     bool            `json:"found"`
	Hops      int             `json:"hops"`
	Fare      int64           `json:"fare"`
	Departure int64           `json:"departure,omitempty"`
	Arrival   int64           `json:"arrival,omitempty"`
	Flights   []flight.Flight `json:"flights"`
}

// Handler serves planner queries.
type Handler struct {
	planner  *planner.Planner
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	router   *mux.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithGatherer enables GET /metrics backed by g.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.gatherer = g
	}
}

// New builds a Handler with all routes registered.
func New(p *planner.Planner, opts ...Option) *Handler {
	h := &Handler{
		planner: p,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		router:  mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.router.Use(requestID)
	h.RegisterRoutes(h.router)

	return h
}

// RegisterRoutes attaches the API to router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/routes", h.CalculateRoute).Methods(http.MethodPost)
	router.HandleFunc("/api/criteria", h.ListCriteria).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	if h.gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// CalculateRoute answers POST /api/routes.
func (h *Handler) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	id := w.Header().Get(RequestIDHeader)

	var req RouteRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := flight.Validator().Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	crit, err := planner.ParseCriterion(req.Criterion)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := planner.Request{Start: *req.Start, End: *req.End, T1: *req.T1, T2: *req.T2}
	route, err := h.planner.Query(r.Context(), crit, q)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, planner.ErrCityOutOfRange) || errors.Is(err, planner.ErrUnknownCriterion) {
			status = http.StatusBadRequest
		}
		h.logger.Error("route query failed", slog.String("request_id", id), slog.Any("error", err))
		writeError(w, status, err.Error())
		return
	}

	h.logger.Info("route query",
		slog.String("request_id", id),
		slog.String("criterion", crit.String()),
		slog.Int("start", q.Start),
		slog.Int("end", q.End),
		slog.Int("hops", route.Hops()),
	)
	flights := []flight.Flight(route)
	if flights == nil {
		flights = []flight.Flight{}
	}
	writeJSON(w, http.StatusOK, RouteResponse{
		RequestID: id,
		Criterion: crit.String(),
		Found:     route.Hops() > 0,
		Hops:      route.Hops(),
		Fare:      route.Fare(),
		Departure: route.Departure(),
		Arrival:   route.Arrival(),
		Flights:   flights,
	})
}

// ListCriteria answers GET /api/criteria.
func (h *Handler) ListCriteria(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, 3)
	for _, c := range planner.Criteria() {
		names = append(names, c.String())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"criteria": names})
}

// Health answers GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"flights": h.planner.Index().Len(),
		"cities":  h.planner.Index().Cities(),
	})
}

// requestID assigns X-Request-ID before any handler runs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
