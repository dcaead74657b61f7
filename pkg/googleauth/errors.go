package googleauth

import "errors"

var (
	// ErrNotAuthenticated is returned when no stored credential can
	// produce an access token and no interactive flow is in progress.
	ErrNotAuthenticated = errors.New("googleauth: not authenticated")
)
