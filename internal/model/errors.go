package model

import "errors"

// Domain failures, distinguishable from infrastructure errors with errors.Is.
var (
	// ErrItemNotFound means the referenced item id does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrSaleNotFound means the referenced sale id does not exist.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInsufficientStock rejects a sale whose requested quantity exceeds the
	// item's current stock. State is guaranteed untouched when it is returned.
	ErrInsufficientStock = errors.New("insufficient stock")
)
