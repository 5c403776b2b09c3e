package errors

import "errors"

var (
	// ErrPointOfSaleNotFound indicates the requested point of sale does not exist
	ErrPointOfSaleNotFound = errors.New("point of sale not found")

	// ErrPaymentMethodNotFound indicates the requested payment method does not exist
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrPaymentMethodMismatch indicates the payment method belongs to a different point of sale
	ErrPaymentMethodMismatch = errors.New("payment method does not belong to this point of sale")

	// ErrCollaboratorAlreadyAdded indicates the user already collaborates on the point of sale
	ErrCollaboratorAlreadyAdded = errors.New("collaborator already added to point of sale")

	// ErrPosLimitReached indicates the subscriber's plan does not allow more points of sale
	ErrPosLimitReached = errors.New("point of sale limit reached for current plan")
)
