package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrEmptyAPIKey      = errors.New("API key must not be empty")
)

// Command errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidRequestBody  = errors.New("request body must be valid JSON")
	ErrInvalidMethod       = errors.New("unsupported HTTP method")
	ErrInvalidMetadata     = errors.New("metadata must be given as key=value")
	ErrInvalidItem         = errors.New("items must be given as PRICE_ID or PRICE_ID:QUANTITY")
	ErrRequestFailed       = errors.New("request failed")
)
