package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"eatery-blue/ingest-svc/internal/feed"
	"eatery-blue/ingest-svc/internal/service"
	"eatery-blue/internal/domain"
	"eatery-blue/internal/respond"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Ingestion service.IngestionServiceInterface
	Logger    *zap.Logger
}

func NewHandler(ingestion service.IngestionServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{Ingestion: ingestion, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/ingestion/status", h.getStatus).Methods("GET")
	r.HandleFunc("/api/ingestion/run", h.runIngestion).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "ingest-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	respond.Success(w, http.StatusOK, h.Ingestion.Status())
}

// runIngestion runs one pass synchronously. The pass is not tied to the
// client connection, so a dropped request does not roll it back.
func (h *Handler) runIngestion(w http.ResponseWriter, r *http.Request) {
	res, err := h.Ingestion.Trigger(context.WithoutCancel(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIngestionInProgress):
			respond.Error(w, http.StatusConflict, "ingestion already in progress")
		case errors.Is(err, feed.ErrUpstream):
			h.Logger.Warn("manual ingestion failed", zap.Error(err))
			respond.Error(w, http.StatusBadGateway, "upstream feed unavailable")
		default:
			h.Logger.Error("manual ingestion failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "ingestion failed")
		}
		return
	}
	respond.Success(w, http.StatusOK, res)
}
