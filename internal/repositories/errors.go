package repositories

import "errors"

// Failure taxonomy shared by repositories and services. Matched with
// errors.Is; repositories wrap these with context via fmt.Errorf and %w.
var (
	ErrNotFound            = errors.New("record not found")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductUnavailable  = errors.New("product is not available")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient bonus points")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrDuplicateEmail      = errors.New("email is already registered")
)

// DeleteResult is the outcome of a delete. A blocked delete is reported as
// Conflict, distinct from NotFound, so callers can tell the two apart.
type DeleteResult int

const (
	Deleted DeleteResult = iota
	DeleteNotFound
	DeleteConflict
)

func (r DeleteResult) String() string {
	switch r {
	case Deleted:
		return "deleted"
	case DeleteNotFound:
		return "not found"
	case DeleteConflict:
		return "blocked by referencing records"
	}
	return "unknown"
}
