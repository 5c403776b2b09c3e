package errors

import "errors"

var (
	// ErrSaleNotFound indicates the requested sale does not exist
	ErrSaleNotFound = errors.New("sale not found")
)
