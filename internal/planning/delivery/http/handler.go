package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	materialdomain "github.com/atelierlabs/workroom/internal/material/domain"
	orderdomain "github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/planning"
	"github.com/atelierlabs/workroom/internal/planning/usecase/command"
	"github.com/atelierlabs/workroom/internal/planning/usecase/query"
	productdomain "github.com/atelierlabs/workroom/internal/product/domain"
	"github.com/atelierlabs/workroom/internal/report"
	"github.com/atelierlabs/workroom/pkg/logger"
)

// PlanningHandler serves the derived views: restock queue, to-do
// aggregation and the dashboard summary.
type PlanningHandler struct {
	queueHandler     *query.QueueHandler
	todoHandler      *query.TodoHandler
	dashboardHandler *query.DashboardHandler
	dismissHandler   *command.DismissEntryHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	queueSize      prometheus.Gauge
}

// NewPlanningHandler creates a new planning handler. defaultPercent is the
// restock percentage used when a request does not set one.
func NewPlanningHandler(
	materials materialdomain.MaterialRepository,
	products productdomain.ProductRepository,
	orders orderdomain.OrderRepository,
	defaultPercent int,
) *PlanningHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planning_service_requests_total",
			Help: "Total number of requests to planning endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planning_service_request_duration_seconds",
			Help:    "Duration of planning endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	queueSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "planning_service_queue_size",
			Help: "Number of materials currently in the restock queue",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(queueSize)

	dismissed := planning.NewDismissSet()
	queueHandler := query.NewQueueHandler(materials, dismissed, defaultPercent)

	return &PlanningHandler{
		queueHandler:     queueHandler,
		todoHandler:      query.NewTodoHandler(orders),
		dashboardHandler: query.NewDashboardHandler(materials, products, orders, queueHandler),
		dismissHandler:   command.NewDismissEntryHandler(materials, dismissed),

		requestCounter: requestCounter,
		requestLatency: requestLatency,
		queueSize:      queueSize,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all planning routes
func (h *PlanningHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/queue", h.metricsMiddleware("/api/queue", h.GetQueue)).Methods("GET")
	router.HandleFunc("/api/queue/{id}", h.metricsMiddleware("/api/queue/{id}", h.DismissEntry)).Methods("DELETE")
	router.HandleFunc("/api/todo/materials", h.metricsMiddleware("/api/todo/materials", h.MaterialsNeeded)).Methods("GET")
	router.HandleFunc("/api/todo/products", h.metricsMiddleware("/api/todo/products", h.ProductsNeeded)).Methods("GET")
	router.HandleFunc("/api/todo/export", h.metricsMiddleware("/api/todo/export", h.ExportTodo)).Methods("GET")
	router.HandleFunc("/api/dashboard", h.metricsMiddleware("/api/dashboard", h.GetDashboard)).Methods("GET")
}

// GetQueue handles GET /api/queue
func (h *PlanningHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	q := query.QueueQuery{Name: r.URL.Query().Get("name")}
	if raw := r.URL.Query().Get("pct"); raw != "" {
		pct, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid pct parameter"})
			return
		}
		q.Percent = &pct
	}

	entries, err := h.queueHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build restock queue")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build queue"})
		return
	}

	h.queueSize.Set(float64(len(entries)))
	respondJSON(w, http.StatusOK, Response{Success: true, Data: entries})
}

// DismissEntry handles DELETE /api/queue/{id}. Dismissal is immediate and
// permanent for the session; no confirmation step exists on the queue.
func (h *PlanningHandler) DismissEntry(w http.ResponseWriter, r *http.Request) {
	err := h.dismissHandler.Handle(command.DismissEntryCommand{MaterialID: mux.Vars(r)["id"]})
	if err != nil {
		if errors.Is(err, materialdomain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Material not found"})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to dismiss queue entry")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to dismiss entry"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Queue entry dismissed"})
}

// MaterialsNeeded handles GET /api/todo/materials
func (h *PlanningHandler) MaterialsNeeded(w http.ResponseWriter, r *http.Request) {
	demand, err := h.todoHandler.MaterialsNeeded()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to aggregate material demand")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to aggregate demand"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: demand})
}

// ProductsNeeded handles GET /api/todo/products
func (h *PlanningHandler) ProductsNeeded(w http.ResponseWriter, r *http.Request) {
	demand, err := h.todoHandler.ProductsNeeded()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to aggregate product demand")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to aggregate demand"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: demand})
}

// ExportTodo handles GET /api/todo/export
func (h *PlanningHandler) ExportTodo(w http.ResponseWriter, r *http.Request) {
	materials, err := h.todoHandler.MaterialsNeeded()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to aggregate material demand")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to export report"})
		return
	}

	products, err := h.todoHandler.ProductsNeeded()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to aggregate product demand")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to export report"})
		return
	}

	workbook, err := report.TodoWorkbook(materials, products)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build to-do workbook")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to export report"})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="todo_report.xlsx"`)
	if err := workbook.Write(w); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to stream to-do report")
	}
}

// GetDashboard handles GET /api/dashboard
func (h *PlanningHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build dashboard summary")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build summary"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: summary})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PlanningHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
