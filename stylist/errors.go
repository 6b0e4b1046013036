package stylist

import "errors"

var (
	ErrNoUser          = errors.New("no current user")
	ErrEmptyWardrobe   = errors.New("wardrobe is empty")
	ErrNoMatchingItems = errors.New("no wardrobe items match the requested filters")
	ErrInvalidHex      = errors.New("invalid hex color")
)
