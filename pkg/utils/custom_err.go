package utils

import "errors"

var (
	// Extraction taxonomy. Neither of the first two ever reaches the client
	// as an error: the plan service converts them into a placeholder
	// itinerary (see PlanService.GenerateTrip).
	ErrNoValidJSON       = errors.New("no valid json in model response")
	ErrModelUnavailable  = errors.New("model invocation failed")
	ErrPatchParseFailure = errors.New("patch block is not valid json")

	ErrInvalidInput       = errors.New("invalid input")
	ErrTripNotFound       = errors.New("trip not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
