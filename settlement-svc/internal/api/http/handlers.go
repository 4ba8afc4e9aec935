package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"
	"restaurant-booking/settlement-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Revenue service.RevenueInterface
	Logger  *slog.Logger
}

func NewHandler(svc service.RevenueInterface, logger *slog.Logger) *Handler {
	return &Handler{Revenue: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/settlements", h.getRestaurantRevenue).Methods("GET")
	r.HandleFunc("/api/settlements/top", h.getTopRestaurants).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "settlement-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurantRevenue(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, domain.ErrInvalidInput)
		return
	}
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	revenue, err := h.Revenue.RestaurantRevenue(r.Context(), restaurantID, period)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (h *Handler) getTopRestaurants(w http.ResponseWriter, r *http.Request) {
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit := service.DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > 100 {
			h.writeError(w, r, domain.ErrInvalidInput)
			return
		}
	}

	top, err := h.Revenue.TopRestaurants(r.Context(), period, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidPeriod) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.Logger.Error("request failed", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
