package paykit

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of one API call. Exactly one of Data and Error is
// meaningful: a nil Error means success. StatusCode is the HTTP status the
// server answered with, or 0 when the call never reached it.
type Result[T any] struct {
	Data       T
	Error      *ClientError
	StatusCode int
}

// Success builds a successful Result.
func Success[T any](data T, statusCode int) Result[T] {
	return Result[T]{Data: data, StatusCode: statusCode}
}

// Failure builds a failed Result carrying err. The Result's status code is
// taken from err.
func Failure[T any](err *ClientError) Result[T] {
	return Result[T]{Error: err, StatusCode: err.StatusCode()}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Error == nil
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Unwrap returns the data and the failure in the usual Go form.
func (r Result[T]) Unwrap() (T, error) {
	if r.Error != nil {
		var zero T

		return zero, r.Error
	}

	return r.Data, nil
}

type resultJSON struct {
	Data       any          `json:"data"       yaml:"data"`
	Error      *ClientError `json:"error"      yaml:"error"`
	StatusCode int          `json:"statusCode" yaml:"status_code"`
}

func (r Result[T]) envelope() resultJSON {
	if r.Error != nil {
		return resultJSON{Data: nil, Error: r.Error, StatusCode: r.StatusCode}
	}

	return resultJSON{Data: r.Data, StatusCode: r.StatusCode}
}

// MarshalJSON encodes the Result as {"data", "error", "statusCode"} with
// data null on failure and error null on success.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.envelope())
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}

	return data, nil
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (r Result[T]) MarshalYAML() (interface{}, error) {
	return r.envelope(), nil
}

// Decode converts a raw Result into a typed one. A failure is carried over
// unchanged. A success whose JSON does not fit T becomes an
// invalid_json_response failure with the server's status code.
func Decode[T any](raw Result[json.RawMessage]) Result[T] {
	if raw.Error != nil {
		return Failure[T](raw.Error)
	}

	var data T

	err := json.Unmarshal(raw.Data, &data)
	if err != nil {
		return Failure[T](NewClientError(
			fmt.Sprintf("Failed to decode response body: %v", err),
			CodeInvalidJSONResponse,
			raw.StatusCode,
		))
	}

	return Success(data, raw.StatusCode)
}
