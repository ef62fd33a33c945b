package activities

import "errors"

// Business rule failures surfaced by the repository. Handlers translate these
// to client errors; anything else is an unexpected storage failure.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrActivityFull     = errors.New("activity is full")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
)
