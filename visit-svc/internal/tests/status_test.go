package tests

import (
	"testing"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	paid := at(10, 0)
	accepted := &domain.RestaurantDecision{EmployeeID: 5, IsAccepted: true, DecidedAt: at(11, 0)}
	declined := &domain.RestaurantDecision{EmployeeID: 5, IsAccepted: false, DecidedAt: at(11, 0)}

	tests := []struct {
		name        string
		reservation domain.Reservation
		want        domain.ReservationStatus
	}{
		{
			name:        "deposit unpaid without decision",
			reservation: domain.Reservation{Deposit: ptr(20.0)},
			want:        domain.StatusDepositNotPaid,
		},
		{
			name:        "deposit unpaid takes precedence over acceptance",
			reservation: domain.Reservation{Deposit: ptr(20.0), Decision: accepted},
			want:        domain.StatusDepositNotPaid,
		},
		{
			name:        "deposit unpaid takes precedence over decline",
			reservation: domain.Reservation{Deposit: ptr(20.0), Decision: declined},
			want:        domain.StatusDepositNotPaid,
		},
		{
			name:        "deposit paid awaiting review",
			reservation: domain.Reservation{Deposit: ptr(20.0), DepositPaidAt: &paid},
			want:        domain.StatusToBeReviewedByRestaurant,
		},
		{
			name:        "deposit paid and accepted",
			reservation: domain.Reservation{Deposit: ptr(20.0), DepositPaidAt: &paid, Decision: accepted},
			want:        domain.StatusApprovedByRestaurant,
		},
		{
			name:        "deposit paid and declined",
			reservation: domain.Reservation{Deposit: ptr(20.0), DepositPaidAt: &paid, Decision: declined},
			want:        domain.StatusDeclinedByRestaurant,
		},
		{
			name:        "no deposit awaiting review",
			reservation: domain.Reservation{},
			want:        domain.StatusToBeReviewedByRestaurant,
		},
		{
			name:        "no deposit accepted",
			reservation: domain.Reservation{Decision: accepted},
			want:        domain.StatusApprovedByRestaurant,
		},
		{
			name:        "no deposit declined",
			reservation: domain.Reservation{Decision: declined},
			want:        domain.StatusDeclinedByRestaurant,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			first := domain.ResolveStatus(testCase.reservation)
			second := domain.ResolveStatus(testCase.reservation)

			assert.Equal(t, testCase.want, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestDetails_StatusOnlyForReservations(t *testing.T) {
	visit := domain.Visit{ID: 1, ClientID: 2}

	walkIn := domain.Details(visit, nil)
	assert.Nil(t, walkIn.Status)

	reserved := domain.Details(visit, &domain.Reservation{VisitID: 1})
	if assert.NotNil(t, reserved.Status) {
		assert.Equal(t, domain.StatusToBeReviewedByRestaurant, *reserved.Status)
	}
}
