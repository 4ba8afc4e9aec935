package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
	"restaurant-booking/visit-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	Visits   service.VisitServiceInterface
	Payments service.PaymentGateInterface
	Orders   service.OrderServiceInterface
	Tokens   TokenValidator
	Errors   *ErrorMapper
	Logger   *slog.Logger

	validate *validator.Validate
}

func NewHandler(visits service.VisitServiceInterface, payments service.PaymentGateInterface, orders service.OrderServiceInterface, tokens TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{
		Visits:   visits,
		Payments: payments,
		Orders:   orders,
		Tokens:   tokens,
		Errors:   DefaultErrorMapper(),
		Logger:   logger,
		validate: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.authenticate)

	api.HandleFunc("/restaurants/{restaurantId}/tables/available", h.findAvailableTable).Methods("GET")

	api.HandleFunc("/visits/reservations", h.createReservation).Methods("POST")
	api.HandleFunc("/visits/walk-ins", h.createWalkIn).Methods("POST")
	api.HandleFunc("/visits/{visitId}", h.getVisit).Methods("GET")
	api.HandleFunc("/visits/{visitId}/qrcode", h.getVisitQRCode).Methods("GET")
	api.HandleFunc("/visits/{visitId}/participants", h.addParticipant).Methods("POST")
	api.HandleFunc("/visits/{visitId}/decision", h.recordDecision).Methods("POST")
	api.HandleFunc("/visits/{visitId}/deposit", h.payDeposit).Methods("POST")
	api.HandleFunc("/visits/{visitId}/start", h.startVisit).Methods("POST")
	api.HandleFunc("/visits/{visitId}/close", h.closeVisit).Methods("POST")
	api.HandleFunc("/visits/{visitId}/orders", h.createOrder).Methods("POST")

	api.HandleFunc("/orders/{orderId}", h.getOrder).Methods("GET")
	api.HandleFunc("/orders/{orderId}/cancel", h.cancelOrder).Methods("POST")
	api.HandleFunc("/orders/{orderId}/items/{itemId}/cancel", h.cancelItem).Methods("POST")
	api.HandleFunc("/orders/{orderId}/status", h.updateStatus).Methods("PUT")
	api.HandleFunc("/orders/{orderId}/employees", h.assignEmployees).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "visit-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) findAvailableTable(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	from, errFrom := time.Parse(time.RFC3339, query.Get("from"))
	until, errUntil := time.Parse(time.RFC3339, query.Get("until"))
	party, errParty := strconv.Atoi(query.Get("party"))
	if errFrom != nil || errUntil != nil || errParty != nil {
		h.writeError(w, r, fmt.Errorf("%w: from, until (RFC3339) and party are required", domain.ErrInvalidInput))
		return
	}

	table, err := h.Visits.FindAvailableTable(r.Context(), restaurantID, party, from, until)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.CreateReservation(r.Context(), req.toDomain(userID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, details)
}

func (h *Handler) createWalkIn(w http.ResponseWriter, r *http.Request) {
	var req createWalkInRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.CreateWalkIn(r.Context(), domain.WalkInRequest{
		RestaurantID:   req.RestaurantID,
		ClientID:       userID,
		Guests:         req.Guests,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, details)
}

func (h *Handler) getVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.GetVisit(r.Context(), visitID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getVisitQRCode(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	png, err := h.Visits.VisitQRCode(r.Context(), visitID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) addParticipant(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req addParticipantRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.AddParticipant(r.Context(), visitID, userID, req.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) recordDecision(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req decisionRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.RecordDecision(r.Context(), visitID, userID, *req.Accept)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) payDeposit(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	txn, err := h.Payments.PayDeposit(r.Context(), visitID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

func (h *Handler) startVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.StartVisit(r.Context(), visitID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) closeVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req closeVisitRequest
	if r.ContentLength != 0 {
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	userID, _ := UserID(r.Context())
	details, err := h.Visits.CloseVisit(r.Context(), visitID, userID, req.Tip)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req createOrderRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	order, err := h.Orders.CreateOrder(r.Context(), visitID, userID, req.items(), req.Note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	order, err := h.Orders.GetOrder(r.Context(), orderID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	order, err := h.Orders.CancelOrder(r.Context(), orderID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelItem(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	order, err := h.Orders.CancelItem(r.Context(), orderID, itemID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateStatusRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	order, err := h.Orders.UpdateStatus(r.Context(), orderID, req.updates(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) assignEmployees(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req assignEmployeesRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := UserID(r.Context())
	order, err := h.Orders.AssignEmployees(r.Context(), orderID, req.EmployeeIDs, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid payload: %v", domain.ErrInvalidInput, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
