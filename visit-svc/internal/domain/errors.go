package domain

import "errors"

var (
	ErrNotFound                   = errors.New("not found")
	ErrAccessDenied               = errors.New("access denied")
	ErrInvalidInput               = errors.New("invalid input")
	ErrInvalidWindow              = errors.New("reservation window is shorter than the restaurant minimum")
	ErrNoTableAvailable           = errors.New("no table available")
	ErrTableCapacityExceeded      = errors.New("table capacity exceeded")
	ErrBelongsToAnotherRestaurant = errors.New("menu item belongs to another restaurant")
	ErrNotInAMenu                 = errors.New("menu item is not in an active menu")
	ErrItemNotInOrder             = errors.New("item does not belong to the order")
	ErrItemAlreadyFinal           = errors.New("item is already taken or cancelled")
	ErrSomeOfItemsAreTaken        = errors.New("some of the items are already taken or cancelled")
	ErrNoDepositToBePaid          = errors.New("no deposit to be paid")
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrMustBeRestaurantEmployee   = errors.New("must be a current restaurant employee")
	ErrDecisionAlreadyRecorded    = errors.New("restaurant decision already recorded")
	ErrReservationDeclined        = errors.New("reservation was declined by the restaurant")
	ErrVisitAlreadyStarted        = errors.New("visit already started")
	ErrVisitEnded                 = errors.New("visit has ended")
	ErrPaymentInProgress          = errors.New("payment already in progress")

	// ErrCommitFailed is returned by the store when COMMIT itself fails.
	ErrCommitFailed = errors.New("transaction commit failed")
	// ErrPaymentNotRecorded means a wallet debit may have been applied
	// without the matching state write. It is never retried.
	ErrPaymentNotRecorded = errors.New("payment debited but not recorded")
)
