package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"restaurant-booking/visit-svc/internal/domain"
)

type HTTPErrorInfo struct {
	Status int
	Code   string
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// ErrorMapper turns service errors into HTTP statuses and stable error codes.
type ErrorMapper struct {
	mappings []errorMapping
}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

func (m *ErrorMapper) WithMapping(err error, status int, code string) *ErrorMapper {
	m.mappings = append(m.mappings, errorMapping{err: err, status: status, code: code})
	return m
}

func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Code: "Timeout"}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Code: "Cancelled"}
	}
	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.err) {
			return HTTPErrorInfo{Status: mapping.status, Code: mapping.code}
		}
	}
	return HTTPErrorInfo{Status: http.StatusInternalServerError, Code: "Internal"}
}

func DefaultErrorMapper() *ErrorMapper {
	return NewErrorMapper().
		WithMapping(ErrMissingToken, http.StatusUnauthorized, "Unauthorized").
		WithMapping(ErrInvalidToken, http.StatusUnauthorized, "Unauthorized").
		WithMapping(domain.ErrPaymentNotRecorded, http.StatusInternalServerError, "PaymentNotRecorded").
		WithMapping(domain.ErrNotFound, http.StatusNotFound, "NotFound").
		WithMapping(domain.ErrAccessDenied, http.StatusForbidden, "AccessDenied").
		WithMapping(domain.ErrPaymentInProgress, http.StatusConflict, "PaymentInProgress").
		WithMapping(domain.ErrInvalidInput, http.StatusBadRequest, "ValidationFailed").
		WithMapping(domain.ErrInvalidWindow, http.StatusBadRequest, "ReservationTooShort").
		WithMapping(domain.ErrNoTableAvailable, http.StatusBadRequest, "NoTableAvailable").
		WithMapping(domain.ErrTableCapacityExceeded, http.StatusBadRequest, "TableCapacityExceeded").
		WithMapping(domain.ErrBelongsToAnotherRestaurant, http.StatusBadRequest, "BelongsToAnotherRestaurant").
		WithMapping(domain.ErrNotInAMenu, http.StatusBadRequest, "NotInAMenu").
		WithMapping(domain.ErrItemNotInOrder, http.StatusBadRequest, "ItemNotInOrder").
		WithMapping(domain.ErrItemAlreadyFinal, http.StatusBadRequest, "ItemAlreadyFinal").
		WithMapping(domain.ErrSomeOfItemsAreTaken, http.StatusBadRequest, "SomeOfItemsAreTaken").
		WithMapping(domain.ErrNoDepositToBePaid, http.StatusBadRequest, "NoDepositToBePaid").
		WithMapping(domain.ErrInsufficientFunds, http.StatusBadRequest, "InsufficientFunds").
		WithMapping(domain.ErrMustBeRestaurantEmployee, http.StatusBadRequest, "MustBeRestaurantEmployee").
		WithMapping(domain.ErrDecisionAlreadyRecorded, http.StatusBadRequest, "DecisionAlreadyRecorded").
		WithMapping(domain.ErrReservationDeclined, http.StatusBadRequest, "ReservationDeclined").
		WithMapping(domain.ErrVisitAlreadyStarted, http.StatusBadRequest, "VisitAlreadyStarted").
		WithMapping(domain.ErrVisitEnded, http.StatusBadRequest, "VisitEnded")
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	info := h.Errors.Map(err)
	message := err.Error()
	if info.Status >= http.StatusInternalServerError {
		h.Logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		message = "internal server error"
	}
	writeJSON(w, info.Status, errorResponse{Code: info.Code, Message: message})
}
