package errors

import "errors"

var (
	// ErrCustomerNotFound indicates the requested customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")
)
