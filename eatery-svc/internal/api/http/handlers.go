package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"eatery-blue/eatery-svc/internal/service"
	"eatery-blue/internal/domain"
	"eatery-blue/internal/respond"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Eateries service.EateryServiceInterface
	Logger   *zap.Logger
}

func NewHandler(eateries service.EateryServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{Eateries: eateries, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/eateries", h.getEateries).Methods("GET")
	r.HandleFunc("/api/eateries/simple", h.getEateriesSimple).Methods("GET")
	r.HandleFunc("/api/eateries/day/{day:-?[0-9]+}", h.getDayView).Methods("GET")
	r.HandleFunc("/api/eateries/{id:-?[0-9]+}", h.getEatery).Methods("GET")
	r.HandleFunc("/api/eateries/{id:-?[0-9]+}", h.updateEatery).Methods("PATCH")
	r.HandleFunc("/api/eateries/{id:-?[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/events/{id:[0-9]+}", h.getEvent).Methods("GET")
	r.HandleFunc("/api/events/{id:[0-9]+}/vote", h.voteEvent).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "eatery-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getEateries(w http.ResponseWriter, r *http.Request) {
	eateries, err := h.Eateries.List(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, eateries)
}

func (h *Handler) getEateriesSimple(w http.ResponseWriter, r *http.Request) {
	eateries, err := h.Eateries.ListSimple(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, eateries)
}

func (h *Handler) getDayView(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid day offset")
		return
	}
	eateries, err := h.Eateries.DayView(r.Context(), day)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, eateries)
}

func (h *Handler) getEatery(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	eatery, err := h.Eateries.Get(r.Context(), domain.EateryID(id))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, eatery)
}

func (h *Handler) updateEatery(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	eatery, err := h.Eateries.Update(r.Context(), domain.EateryID(id), fields)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.Success(w, http.StatusOK, eatery)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Eateries.OrderQRCode(r.Context(), domain.EateryID(id))
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	event, err := h.Eateries.GetEvent(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, event)
}

type voteRequest struct {
	Direction string `json:"direction"`
}

func (h *Handler) voteEvent(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	event, err := h.Eateries.Vote(r.Context(), id, req.Direction)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.Success(w, http.StatusOK, event)
}

// fail maps service errors onto statuses. Internal error text is logged and
// replaced by a generic message.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidField):
		h.Logger.Debug("rejected update", zap.Error(err))
		var fieldErr *service.FieldError
		if errors.As(err, &fieldErr) && fieldErr.Field != "" {
			respond.Error(w, http.StatusBadRequest, "invalid field "+fieldErr.Field)
			return
		}
		respond.Error(w, http.StatusBadRequest, "invalid update")
	case errors.Is(err, service.ErrInvalidVote):
		respond.Error(w, http.StatusBadRequest, "direction must be up or down")
	case errors.Is(err, service.ErrNoOrderURL):
		respond.Error(w, http.StatusNotFound, "eatery has no online order url")
	default:
		h.Logger.Error("request failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
