package paykit

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode is a stable, machine-readable failure identifier.
type ErrorCode string

// Codes derived from the HTTP status when the server does not send one.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeForbidden         ErrorCode = "forbidden"
	CodeNotFound          ErrorCode = "not_found"
	CodeConflict          ErrorCode = "conflict"
	CodeValidationError   ErrorCode = "validation_error"
	CodeRateLimitExceeded ErrorCode = "rate_limit_exceeded"
	CodeInternalError     ErrorCode = "internal_error"
	CodeUnknownError      ErrorCode = "unknown_error"
)

// Codes produced by the client itself.
const (
	// CodeNetworkError means no response was received (DNS, refused connection, TLS).
	CodeNetworkError ErrorCode = "network_error"
	// CodeTimeoutError means the configured deadline elapsed first.
	CodeTimeoutError ErrorCode = "timeout_error"
	// CodeInvalidJSONResponse means a 2xx response carried a body that is not
	// valid JSON, or not JSON of the expected shape.
	CodeInvalidJSONResponse ErrorCode = "invalid_json_response"
	// CodeInvalidRequest means the request was never sent: the body could
	// not be encoded or an interceptor rejected it.
	CodeInvalidRequest ErrorCode = "invalid_request"
)

// ClientError describes a failed call. It is immutable once constructed.
type ClientError struct {
	message    string
	code       ErrorCode
	statusCode int
}

// NewClientError creates a ClientError.
func NewClientError(message string, code ErrorCode, statusCode int) *ClientError {
	return &ClientError{message: message, code: code, statusCode: statusCode}
}

// Message returns the human readable description.
func (e *ClientError) Message() string { return e.message }

// Code returns the machine-readable code.
func (e *ClientError) Code() ErrorCode { return e.code }

// StatusCode returns the HTTP status, or 0 when the server was never reached.
func (e *ClientError) StatusCode() int { return e.statusCode }

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.statusCode == 0 {
		return fmt.Sprintf("%s: %s", e.code, e.message)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.code, e.message, e.statusCode)
}

type clientErrorJSON struct {
	Message    string    `json:"message"    yaml:"message"`
	Code       ErrorCode `json:"code"       yaml:"code"`
	StatusCode int       `json:"statusCode" yaml:"status_code"`
}

// MarshalJSON implements json.Marshaler.
func (e *ClientError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(clientErrorJSON{Message: e.message, Code: e.code, StatusCode: e.statusCode})
	if err != nil {
		return nil, fmt.Errorf("marshaling client error: %w", err)
	}

	return data, nil
}

// MarshalYAML implements yaml.Marshaler.
func (e *ClientError) MarshalYAML() (interface{}, error) {
	return clientErrorJSON{Message: e.message, Code: e.code, StatusCode: e.statusCode}, nil
}

// ErrRateLimitBurst is returned by RateLimitInterceptor when the limiter can
// never grant a token.
var ErrRateLimitBurst = errors.New("rate limiter burst is zero")

// Configuration errors. They are returned by NewConfiguration wrapped in a
// *ConfigurationError and are never delivered through a Result.
var (
	ErrOptionsRequired         = errors.New("options are required")
	ErrCredentialRequired      = errors.New("API key is required")
	ErrCredentialPrefix        = errors.New("API key has an unexpected prefix")
	ErrCredentialScopeMismatch = errors.New("API key belongs to a different credential scope")
	ErrInvalidBaseURL          = errors.New("invalid base URL")
	ErrInvalidTimeout          = errors.New("timeout must not be negative")
	ErrInvalidCasingPolicy     = errors.New("invalid casing policy")
	ErrInvalidScope            = errors.New("invalid credential scope")
)

// ConfigurationError reports a programmer error detected while building a
// client configuration.
type ConfigurationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration (%s): %v", e.Field, e.Err)
}

// Unwrap returns the wrapped sentinel.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func hasCode(err error, code ErrorCode) bool {
	clientErr := &ClientError{}
	if errors.As(err, &clientErr) {
		return clientErr.code == code
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasCode(err, CodeUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasCode(err, CodeForbidden)
}

// IsRateLimited checks if the server rejected the call for rate limiting.
func IsRateLimited(err error) bool {
	return hasCode(err, CodeRateLimitExceeded)
}

// IsTimeout checks if the call ran out of time.
func IsTimeout(err error) bool {
	return hasCode(err, CodeTimeoutError)
}

// IsNetworkError checks if the call never reached the server.
func IsNetworkError(err error) bool {
	return hasCode(err, CodeNetworkError)
}

// IsConfigurationError checks if err came from NewConfiguration.
func IsConfigurationError(err error) bool {
	configErr := &ConfigurationError{}

	return errors.As(err, &configErr)
}
