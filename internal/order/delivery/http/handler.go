package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/order/csvio"
	"github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/order/usecase/command"
	"github.com/atelierlabs/workroom/internal/order/usecase/query"
	"github.com/atelierlabs/workroom/internal/validation"
	"github.com/atelierlabs/workroom/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	deleteHandler *command.DeleteOrderHandler
	importHandler *command.ImportOrdersHandler

	listHandler *query.ListOrdersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	importedOrders prometheus.Counter
}

// NewOrderHandler creates a new order handler with the configured default
// age-tier thresholds.
func NewOrderHandler(repo domain.OrderRepository, defaultUrgent, defaultWarning int) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	importedOrders := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_service_imported_orders_total",
			Help: "Total number of orders appended via CSV import",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(importedOrders)

	return &OrderHandler{
		createHandler: command.NewCreateOrderHandler(repo),
		deleteHandler: command.NewDeleteOrderHandler(repo),
		importHandler: command.NewImportOrdersHandler(repo),

		listHandler: query.NewListOrdersHandler(repo, defaultUrgent, defaultWarning),

		requestCounter: requestCounter,
		requestLatency: requestLatency,
		importedOrders: importedOrders,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders/sample.csv", h.metricsMiddleware("/api/orders/sample.csv", h.SampleCSV)).Methods("GET")
	router.HandleFunc("/api/orders/import", h.metricsMiddleware("/api/orders/import", h.ImportOrders)).Methods("POST")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.DeleteOrder)).Methods("DELETE")
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string          `json:"name"`
		Variant string          `json:"variant"`
		Qty     int             `json:"qty"`
		Price   decimal.Decimal `json:"price"`
		Date    domain.Date     `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	order, err := h.createHandler.Handle(command.CreateOrderCommand{
		Name:    req.Name,
		Variant: req.Variant,
		Qty:     req.Qty,
		Price:   req.Price,
		Date:    req.Date,
	})
	if err != nil {
		respondError(w, err, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	urgent, _ := strconv.Atoi(params.Get("urgent"))
	warning, _ := strconv.Atoi(params.Get("warning"))

	q := query.ListOrdersQuery{
		Search:  params.Get("q"),
		Age:     params.Get("age"),
		Urgent:  urgent,
		Warning: warning,
		SortKey: params.Get("sort"),
		SortDir: params.Get("dir"),
	}
	if from, err := domain.ParseDate(params.Get("from")); err == nil {
		q.From = &from
	}
	if to, err := domain.ParseDate(params.Get("to")); err == nil {
		q.To = &to
	}

	orders, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, err, "Failed to delete order")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Order deleted successfully"})
}

// ImportOrders handles POST /api/orders/import. The request body is the raw
// CSV text.
func (h *OrderHandler) ImportOrders(w http.ResponseWriter, r *http.Request) {
	report, err := h.importHandler.Handle(command.ImportOrdersCommand{Reader: r.Body})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Rejected orders CSV")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.importedOrders.Add(float64(report.Imported))
	logger.Info(r.Context()).
		Int("imported", report.Imported).
		Int("rejected", len(report.Errors)).
		Msg("Orders CSV imported")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Orders imported",
		Data:    report,
	})
}

// SampleCSV handles GET /api/orders/sample.csv
func (h *OrderHandler) SampleCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sample_orders.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csvio.Sample))
}

func respondError(w http.ResponseWriter, err error, message string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   message,
			Data:    verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
	default:
		logger.Logger.Error().Err(err).Msg(message)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: message})
	}
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
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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
