package paykit

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Metadata holds caller-defined key/value pairs attached to a resource.
type Metadata map[string]string

// ListResponse represents a cursor-paginated list response.
type ListResponse[T any] struct {
	Data       []T    `json:"data"                  yaml:"data"`
	HasMore    bool   `json:"has_more"              yaml:"has_more"`
	NextCursor string `json:"next_cursor,omitempty" yaml:"next_cursor,omitempty"`
}

// DeleteResponse is returned by delete endpoints.
type DeleteResponse struct {
	ID      string `json:"id"      yaml:"id"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

// QueryParams expresses the common list options.
type QueryParams struct {
	Limit   int
	Cursor  string
	Expand  []string
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithCursor continues a listing after a previous page.
func (q *QueryParams) WithCursor(cursor string) *QueryParams {
	q.Cursor = cursor

	return q
}

// WithExpand requests related objects inline.
func (q *QueryParams) WithExpand(fields ...string) *QueryParams {
	q.Expand = append(q.Expand, fields...)

	return q
}

// WithFilter adds a filter; repeated values are joined with commas.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters into URL query values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Cursor != "" {
		values.Set("cursor", q.Cursor)
	}

	if len(q.Expand) > 0 {
		expand := append([]string(nil), q.Expand...)
		sort.Strings(expand)
		values.Set("expand", strings.Join(expand, ","))
	}

	for key, filter := range q.Filters {
		if len(filter) > 0 {
			values.Set(key, strings.Join(filter, ","))
		}
	}

	return values
}
