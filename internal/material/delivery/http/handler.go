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

	"github.com/atelierlabs/workroom/internal/material/domain"
	"github.com/atelierlabs/workroom/internal/material/usecase/command"
	"github.com/atelierlabs/workroom/internal/material/usecase/query"
	"github.com/atelierlabs/workroom/internal/validation"
	"github.com/atelierlabs/workroom/pkg/logger"
)

// MaterialHandler handles HTTP requests for materials using CQRS pattern
type MaterialHandler struct {
	createHandler *command.CreateMaterialHandler
	updateHandler *command.UpdateMaterialHandler
	deleteHandler *command.DeleteMaterialHandler
	adjustHandler *command.AdjustQuantityHandler

	getHandler   *query.GetMaterialHandler
	listHandler  *query.ListMaterialsHandler
	statsHandler *query.GetStatsHandler

	repo domain.MaterialRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalMaterials prometheus.Gauge
}

// NewMaterialHandler creates a new material handler. recomputeStatus is the
// configured policy for rederiving material status after quantity changes.
func NewMaterialHandler(repo domain.MaterialRepository, recomputeStatus bool) *MaterialHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "material_service_requests_total",
			Help: "Total number of requests to material endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "material_service_request_duration_seconds",
			Help:    "Duration of material endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalMaterials := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "material_service_total_materials",
			Help: "Total number of materials in the inventory",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalMaterials)

	return &MaterialHandler{
		createHandler: command.NewCreateMaterialHandler(repo),
		updateHandler: command.NewUpdateMaterialHandler(repo, recomputeStatus),
		deleteHandler: command.NewDeleteMaterialHandler(repo),
		adjustHandler: command.NewAdjustQuantityHandler(repo, recomputeStatus),

		getHandler:   query.NewGetMaterialHandler(repo),
		listHandler:  query.NewListMaterialsHandler(repo),
		statsHandler: query.NewGetStatsHandler(repo),

		repo: repo,

		requestCounter: requestCounter,
		requestLatency: requestLatency,
		totalMaterials: totalMaterials,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type materialRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	BuyingPrice decimal.Decimal `json:"buying_price"`
	Threshold   int             `json:"threshold"`
	Supplier    string          `json:"supplier"`
	BuyLink     string          `json:"buy_link"`
	Image       string          `json:"image"`
}

// RegisterRoutes registers all material routes
func (h *MaterialHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/materials", h.metricsMiddleware("/api/materials", h.ListMaterials)).Methods("GET")
	router.HandleFunc("/api/materials", h.metricsMiddleware("/api/materials", h.CreateMaterial)).Methods("POST")
	router.HandleFunc("/api/materials/stats", h.metricsMiddleware("/api/materials/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/materials/categories", h.metricsMiddleware("/api/materials/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/materials/units", h.metricsMiddleware("/api/materials/units", h.ListUnits)).Methods("GET")
	router.HandleFunc("/api/materials/suppliers", h.metricsMiddleware("/api/materials/suppliers", h.ListSuppliers)).Methods("GET")
	router.HandleFunc("/api/materials/{id}", h.metricsMiddleware("/api/materials/{id}", h.GetMaterial)).Methods("GET")
	router.HandleFunc("/api/materials/{id}", h.metricsMiddleware("/api/materials/{id}", h.UpdateMaterial)).Methods("PUT")
	router.HandleFunc("/api/materials/{id}", h.metricsMiddleware("/api/materials/{id}", h.DeleteMaterial)).Methods("DELETE")
	router.HandleFunc("/api/materials/{id}/quantity", h.metricsMiddleware("/api/materials/{id}/quantity", h.AdjustQuantity)).Methods("PATCH")
}

// CreateMaterial handles POST /api/materials
func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	material, err := h.createHandler.Handle(command.CreateMaterialCommand{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		BuyingPrice: req.BuyingPrice,
		Threshold:   req.Threshold,
		Supplier:    req.Supplier,
		BuyLink:     req.BuyLink,
		Image:       req.Image,
	})
	if err != nil {
		h.respondError(w, err, "Failed to create material")
		return
	}

	h.refreshTotal()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Material created successfully",
		Data:    material,
	})
}

// GetMaterial handles GET /api/materials/{id}
func (h *MaterialHandler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	material, err := h.getHandler.Handle(query.GetMaterialQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Material not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: material})
}

// ListMaterials handles GET /api/materials
func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	materials, err := h.listHandler.Handle(query.ListMaterialsQuery{
		Name:     r.URL.Query().Get("name"),
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list materials")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list materials"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: materials})
}

// GetStats handles GET /api/materials/stats
func (h *MaterialHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute inventory stats")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute stats"})
		return
	}

	h.totalMaterials.Set(float64(stats.TotalMaterials))
	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// UpdateMaterial handles PUT /api/materials/{id}
func (h *MaterialHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	material, err := h.updateHandler.Handle(command.UpdateMaterialCommand{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		BuyingPrice: req.BuyingPrice,
		Threshold:   req.Threshold,
		Supplier:    req.Supplier,
		BuyLink:     req.BuyLink,
		Image:       req.Image,
	})
	if err != nil {
		h.respondError(w, err, "Failed to update material")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Material updated successfully",
		Data:    material,
	})
}

// AdjustQuantity handles PATCH /api/materials/{id}/quantity
func (h *MaterialHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta *int `json:"delta"`
		Set   *int `json:"set"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	material, err := h.adjustHandler.Handle(command.AdjustQuantityCommand{
		ID:    mux.Vars(r)["id"],
		Delta: req.Delta,
		Set:   req.Set,
	})
	if err != nil {
		h.respondError(w, err, "Failed to adjust quantity")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated successfully",
		Data:    material,
	})
}

// DeleteMaterial handles DELETE /api/materials/{id}. The confirm query
// parameter is mandatory; without it the delete is refused.
func (h *MaterialHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	err := h.deleteHandler.Handle(command.DeleteMaterialCommand{
		ID:        mux.Vars(r)["id"],
		Confirmed: r.URL.Query().Get("confirm") == "true",
	})
	if err != nil {
		if errors.Is(err, command.ErrConfirmationRequired) {
			respondJSON(w, http.StatusConflict, Response{
				Success: false,
				Error:   "Deletion is permanent; retry with confirm=true",
			})
			return
		}
		h.respondError(w, err, "Failed to delete material")
		return
	}

	h.refreshTotal()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Material deleted successfully"})
}

// ListCategories handles GET /api/materials/categories
func (h *MaterialHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.respondRegistry(w, r, h.repo.Categories)
}

// ListUnits handles GET /api/materials/units
func (h *MaterialHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	h.respondRegistry(w, r, h.repo.Units)
}

// ListSuppliers handles GET /api/materials/suppliers
func (h *MaterialHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	h.respondRegistry(w, r, h.repo.Suppliers)
}

func (h *MaterialHandler) respondRegistry(w http.ResponseWriter, r *http.Request, load func() ([]string, error)) {
	values, err := load()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load registry")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to load values"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: values})
}

func (h *MaterialHandler) respondError(w http.ResponseWriter, err error, message string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   message,
			Data:    verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Material not found"})
	default:
		logger.Logger.Error().Err(err).Msg(message)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: message})
	}
}

func (h *MaterialHandler) refreshTotal() {
	if count, err := h.repo.Count(); err == nil {
		h.totalMaterials.Set(float64(count))
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
func (h *MaterialHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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
