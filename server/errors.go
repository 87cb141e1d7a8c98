package server

import "errors"

var (
	// ErrInvalidPort indicates PORT is not an integer between 1 and 65535.
	ErrInvalidPort = errors.New("server: invalid PORT")

	// ErrMissingUptime indicates Deps.Uptime was not provided.
	ErrMissingUptime = errors.New("server: uptime is required")

	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("server: already started")
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var (
	notFoundResponse = ErrorResponse{
		Error:   "Not Found",
		Message: "Endpoint does not exist",
	}
	methodNotAllowedResponse = ErrorResponse{
		Error:   "Method Not Allowed",
		Message: "The method is not allowed for the requested URL",
	}
	internalErrorResponse = ErrorResponse{
		Error:   "Internal Server Error",
		Message: "An unexpected error occurred",
	}
)
