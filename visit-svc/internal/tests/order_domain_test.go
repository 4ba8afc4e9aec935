package tests

import (
	"testing"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCheckClientCancel(t *testing.T) {
	assert.NoError(t, domain.CheckClientCancel(domain.OrderItem{Status: domain.ItemInProgress}))
	assert.ErrorIs(t, domain.CheckClientCancel(domain.OrderItem{Status: domain.ItemTaken}), domain.ErrItemAlreadyFinal)
	assert.ErrorIs(t, domain.CheckClientCancel(domain.OrderItem{Status: domain.ItemCancelled}), domain.ErrItemAlreadyFinal)
}

func TestCheckStaffTransition(t *testing.T) {
	tests := []struct {
		from    domain.ItemStatus
		to      domain.ItemStatus
		wantErr error
	}{
		{from: domain.ItemInProgress, to: domain.ItemTaken},
		{from: domain.ItemInProgress, to: domain.ItemCancelled},
		{from: domain.ItemInProgress, to: domain.ItemInProgress},
		{from: domain.ItemTaken, to: domain.ItemTaken},
		{from: domain.ItemTaken, to: domain.ItemInProgress, wantErr: domain.ErrItemAlreadyFinal},
		{from: domain.ItemTaken, to: domain.ItemCancelled, wantErr: domain.ErrItemAlreadyFinal},
		{from: domain.ItemCancelled, to: domain.ItemTaken, wantErr: domain.ErrItemAlreadyFinal},
		{from: domain.ItemCancelled, to: domain.ItemCancelled},
		{from: domain.ItemInProgress, to: "Served", wantErr: domain.ErrInvalidInput},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from)+"->"+string(testCase.to), func(t *testing.T) {
			err := domain.CheckStaffTransition(testCase.from, testCase.to)
			if testCase.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestOrder_TotalSkipsCancelledItems(t *testing.T) {
	order := domain.Order{Items: []domain.OrderItem{
		{ID: 1, Quantity: 2, Price: 12.5, Status: domain.ItemInProgress},
		{ID: 2, Quantity: 1, Price: 8, Status: domain.ItemTaken},
		{ID: 3, Quantity: 3, Price: 4, Status: domain.ItemCancelled},
	}}

	assert.InDelta(t, 33.0, order.Total(), 0.001)
	assert.False(t, order.CanBeCancelled())
}

func TestVisit_PartySize(t *testing.T) {
	visit := domain.Visit{ClientID: 1, Guests: 2, ParticipantIDs: []int{7, 8}}

	assert.Equal(t, 5, visit.PartySize())
	assert.True(t, visit.HasParticipant(1))
	assert.True(t, visit.HasParticipant(8))
	assert.False(t, visit.HasParticipant(9))
}
