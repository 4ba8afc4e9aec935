package domain

type ReservationStatus string

const (
	StatusDepositNotPaid           ReservationStatus = "DepositNotPaid"
	StatusToBeReviewedByRestaurant ReservationStatus = "ToBeReviewedByRestaurant"
	StatusApprovedByRestaurant     ReservationStatus = "ApprovedByRestaurant"
	StatusDeclinedByRestaurant     ReservationStatus = "DeclinedByRestaurant"
)

// ResolveStatus derives the reservation status from its recorded facts.
// Deposit payment is checked before the restaurant decision.
func ResolveStatus(r Reservation) ReservationStatus {
	switch {
	case r.Deposit != nil && r.DepositPaidAt == nil:
		return StatusDepositNotPaid
	case r.Decision == nil:
		return StatusToBeReviewedByRestaurant
	case r.Decision.IsAccepted:
		return StatusApprovedByRestaurant
	default:
		return StatusDeclinedByRestaurant
	}
}

// Details builds the read model for a visit and its optional reservation.
func Details(v Visit, r *Reservation) *VisitDetails {
	details := &VisitDetails{Visit: v, Reservation: r}
	if r != nil {
		status := ResolveStatus(*r)
		details.Status = &status
	}
	return details
}
