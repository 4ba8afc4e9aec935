package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-booking/logging"
	httpapi "restaurant-booking/settlement-svc/internal/api/http"
	"restaurant-booking/settlement-svc/internal/domain"
	"restaurant-booking/settlement-svc/internal/mocks"
	"restaurant-booking/settlement-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRevenueRouter(t *testing.T) (*mux.Router, *mocks.RevenueInterface) {
	svc := mocks.NewRevenueInterface(t)
	router := mux.NewRouter()
	httpapi.NewHandler(svc, logging.Discard()).RegisterRoutes(router)
	return router, svc
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_RestaurantRevenue(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMocks func(svc *mocks.RevenueInterface)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "period defaults to all",
			target: "/api/restaurants/3/settlements",
			prepareMocks: func(svc *mocks.RevenueInterface) {
				svc.On("RestaurantRevenue", mock.Anything, 3, domain.PeriodAll).
					Return(&domain.RestaurantRevenue{RestaurantID: 3, Period: domain.PeriodAll, Total: 900, Source: domain.SourceDatabase}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"restaurant_id":3,"period":"all","total":900,"source":"database"}`,
		},
		{
			name:   "today",
			target: "/api/restaurants/3/settlements?period=today",
			prepareMocks: func(svc *mocks.RevenueInterface) {
				svc.On("RestaurantRevenue", mock.Anything, 3, domain.PeriodToday).
					Return(&domain.RestaurantRevenue{RestaurantID: 3, Period: domain.PeriodToday, Total: 55.5, Source: domain.SourceCache}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"restaurant_id":3,"period":"today","total":55.5,"source":"cache"}`,
		},
		{
			name:         "unknown period",
			target:       "/api/restaurants/3/settlements?period=week",
			prepareMocks: func(*mocks.RevenueInterface) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"period must be today or all"}`,
		},
		{
			name:         "non-numeric restaurant",
			target:       "/api/restaurants/abc/settlements",
			prepareMocks: func(*mocks.RevenueInterface) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"invalid input"}`,
		},
		{
			name:   "ledger failure is hidden",
			target: "/api/restaurants/3/settlements",
			prepareMocks: func(svc *mocks.RevenueInterface) {
				svc.On("RestaurantRevenue", mock.Anything, 3, domain.PeriodAll).
					Return(nil, errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, svc := newRevenueRouter(t)
			testCase.prepareMocks(svc)

			rec := serve(router, testCase.target)

			assert.Equal(t, testCase.wantStatus, rec.Code)
			assert.JSONEq(t, testCase.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_TopRestaurants(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		router, svc := newRevenueRouter(t)
		svc.On("TopRestaurants", mock.Anything, domain.PeriodToday, service.DefaultTopLimit).
			Return([]domain.RankedRestaurant{{RestaurantID: 1, Total: 60}, {RestaurantID: 3, Total: 39.5}}, nil).Once()

		rec := serve(router, "/api/settlements/top?period=today")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.RankedRestaurant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0].RestaurantID)
	})

	for _, limit := range []string{"0", "101", "ten"} {
		t.Run("rejects limit "+limit, func(t *testing.T) {
			router, _ := newRevenueRouter(t)

			rec := serve(router, "/api/settlements/top?limit="+limit)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Health(t *testing.T) {
	router, _ := newRevenueRouter(t)

	rec := serve(router, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"settlement-svc"`)
}
