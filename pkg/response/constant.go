package response

const (
	// DefaultErrorMessage is returned for unexpected internal failures.
	DefaultErrorMessage = "something went wrong, please try again"
)
