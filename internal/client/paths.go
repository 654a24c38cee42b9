package client

import (
	"net/url"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const apiVersionPrefix = "/v1"

func collectionPath(resource string) string {
	return apiVersionPrefix + "/" + resource
}

func resourcePath(resource, id string, suffix ...string) string {
	path := collectionPath(resource) + "/" + url.PathEscape(id)
	for _, part := range suffix {
		path += "/" + part
	}

	return path
}

func queryValues(params *paykit.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}

// missingID fails a call locally when no identifier was given, so an empty
// id never turns into a request against the collection path.
func missingID[T any](resource string) paykit.Result[T] {
	return paykit.Failure[T](paykit.NewClientError(resource+" id is required", paykit.CodeInvalidRequest, 0))
}
