package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

var emptyObject = json.RawMessage("{}")

// Mapper turns a completed HTTP response into a Result.
type Mapper struct {
	casing paykit.CasingPolicy
}

// NewMapper creates a mapper applying the given casing policy to success bodies.
func NewMapper(casing paykit.CasingPolicy) *Mapper {
	return &Mapper{casing: casing}
}

// FromResponse reads body and classifies the response. 2xx bodies must be
// JSON; error bodies are parsed best effort for "message" and "code".
func (m *Mapper) FromResponse(statusCode int, body io.Reader) paykit.Result[json.RawMessage] {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return m.fromSuccess(statusCode, body)
	}

	return m.fromFailure(statusCode, body)
}

func (m *Mapper) fromSuccess(statusCode int, body io.Reader) paykit.Result[json.RawMessage] {
	if statusCode == http.StatusNoContent {
		return paykit.Success(emptyObject, statusCode)
	}

	raw, err := readBody(body)
	if err != nil {
		return readFailure(err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return paykit.Success(emptyObject, statusCode)
	}

	if !json.Valid(raw) {
		return invalidJSON(statusCode, "response body is not valid JSON")
	}

	if m.casing == paykit.CasingPreserve {
		return paykit.Success(json.RawMessage(raw), statusCode)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var parsed any

	err = decoder.Decode(&parsed)
	if err != nil {
		return invalidJSON(statusCode, "response body is not valid JSON")
	}

	normalized, err := json.Marshal(paykit.ToSnakeCase(parsed))
	if err != nil {
		return invalidJSON(statusCode, fmt.Sprintf("re-encoding response body: %v", err))
	}

	return paykit.Success(json.RawMessage(normalized), statusCode)
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (m *Mapper) fromFailure(statusCode int, body io.Reader) paykit.Result[json.RawMessage] {
	// A broken error body must not hide the status, so read and parse
	// failures both fall back to the status-derived values.
	var parsed errorBody

	raw, err := readBody(body)
	if err == nil {
		parsed = parseErrorBody(raw)
	}

	code := paykit.ErrorCode(parsed.Code)
	if code == "" {
		code = paykit.CodeForStatus(statusCode)
	}

	message := parsed.Message
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", statusCode)
	}

	return paykit.Failure[json.RawMessage](paykit.NewClientError(message, code, statusCode))
}

func parseErrorBody(raw []byte) errorBody {
	var fields map[string]any

	err := json.Unmarshal(raw, &fields)
	if err != nil {
		return errorBody{}
	}

	var parsed errorBody

	if message, ok := fields["message"].(string); ok {
		parsed.Message = message
	}

	if code, ok := fields["code"].(string); ok {
		parsed.Code = code
	}

	return parsed
}

func readBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return raw, nil
}

func readFailure(err error) paykit.Result[json.RawMessage] {
	return paykit.Failure[json.RawMessage](paykit.NewClientError(err.Error(), paykit.CodeNetworkError, 0))
}

func invalidJSON(statusCode int, message string) paykit.Result[json.RawMessage] {
	return paykit.Failure[json.RawMessage](paykit.NewClientError(message, paykit.CodeInvalidJSONResponse, statusCode))
}
