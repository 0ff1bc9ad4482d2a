package errors

import "log/slog"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// LogLevel returns the level a swallowed error with this code is logged at.
// Missing documents and canceled work are routine while hovering.
func (c Code) LogLevel() slog.Level {
	switch c {
	case CodeOK, CodeNotFound, CodeCanceled:
		return slog.LevelDebug
	case CodeInvalidArgument, CodeFailedPrecondition, CodeAlreadyExists:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
