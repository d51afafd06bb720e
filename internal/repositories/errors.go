package repositories

import "errors"

// Sentinel errors returned by repository implementations so callers can
// map storage outcomes to HTTP statuses with errors.Is instead of
// inspecting error strings.
var (
	// ErrProductNotFound is returned when no product exists for the given ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrSellerNotFound is returned when no seller exists for the given
	// username or ID.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrSellerExists is returned when a seller with the same username is
	// already registered.
	ErrSellerExists = errors.New("seller already exists")
)
