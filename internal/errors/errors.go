package errors

import "fmt"

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ParseError indicates a malformed signature snapshot
	ParseError ErrorCode = "PARSE_ERROR"
	// UnsupportedFormat indicates an unknown signature format header
	UnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// FileNotFound indicates a snapshot file could not be read
	FileNotFound ErrorCode = "FILE_NOT_FOUND"
	// MergeConflict indicates incompatible duplicate class definitions
	MergeConflict ErrorCode = "MERGE_CONFLICT"
	// ConfigInvalid indicates a malformed config or severity profile
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// HistoryUnavailable indicates the run history store could not be opened
	HistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"
	// InternalError indicates a programming invariant violation
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// SigError represents a sigcheck failure with a stable code, a message and
// optional file/line context. Structural errors abort the whole operation;
// they are distinct from compatibility findings, which are ordinary output.
type SigError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	File    string    `json:"file,omitempty"`
	Line    int       `json:"line,omitempty"`
	cause   error
}

// New creates a SigError without file context.
func New(code ErrorCode, message string) *SigError {
	return &SigError{Code: code, Message: message}
}

// Newf creates a SigError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *SigError {
	return &SigError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a SigError around an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *SigError {
	return &SigError{Code: code, Message: message, cause: cause}
}

// At attaches file/line context to the error.
func (e *SigError) At(file string, line int) *SigError {
	e.File = file
	e.Line = line
	return e
}

// Error implements the error interface.
func (e *SigError) Error() string {
	where := ""
	if e.File != "" {
		if e.Line > 0 {
			where = fmt.Sprintf("%s:%d: ", e.File, e.Line)
		} else {
			where = e.File + ": "
		}
	}
	if e.cause != nil {
		return fmt.Sprintf("%s[%s] %s: %v", where, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s[%s] %s", where, e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *SigError) Unwrap() error { return e.cause }
