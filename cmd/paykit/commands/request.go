package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// NewRequestCommand creates the raw request command.
func NewRequestCommand() *cobra.Command {
	var (
		data         string
		query        []string
		organization bool
	)

	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Send an arbitrary API request",
		Long: `Send a request to any API path and print the decoded response.

The body given with --data is JSON; "@file" reads it from a file and "-" from
stdin. Keys are converted according to the casing policy like any other call.`,
		Example: `  paykit request GET /v1/products --query limit=5
  paykit request POST /v1/customers --data '{"email":"a@example.com"}'
  paykit request GET /v1/projects --org`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			if !allowedMethods[method] {
				return fmt.Errorf("%w: %s", constants.ErrInvalidMethod, args[0])
			}

			body, err := readRequestBody(cmd.InOrStdin(), data)
			if err != nil {
				return err
			}

			values, err := parseKeyValues(query)
			if err != nil {
				return err
			}

			queryValues := url.Values{}
			for key, value := range values {
				queryValues.Set(key, value)
			}

			raw, err := executeRaw(cmd, organization, method, args[1], queryValues, body)
			if err != nil {
				return err
			}

			result := paykit.Decode[any](raw)
			if result.Error != nil {
				return fmt.Errorf("%w: %w", constants.ErrRequestFailed, result.Error)
			}

			return renderOutput(cmd, result.Data, func(table *tablewriter.Table) {
				fillValueTable(table, result.StatusCode, result.Data)
			})
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body, @file or - for stdin")
	cmd.Flags().StringSliceVarP(&query, "query", "q", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().BoolVar(&organization, "org", false, "use the organization API key")

	return cmd
}

func executeRaw(cmd *cobra.Command, organization bool, method, path string, query url.Values, body interface{}) (paykit.Result[json.RawMessage], error) {
	ctx := context.Background()

	if organization {
		orgClient, sess, err := newOrganizationClient(cmd)
		if err != nil {
			return paykit.Result[json.RawMessage]{}, err
		}
		defer sess.Close()

		return orgClient.Raw(ctx, method, path, query, body), nil
	}

	projectClient, sess, err := newProjectClient(cmd)
	if err != nil {
		return paykit.Result[json.RawMessage]{}, err
	}
	defer sess.Close()

	return projectClient.Raw(ctx, method, path, query, body), nil
}

// readRequestBody returns the decoded --data value, or nil when none was given.
func readRequestBody(stdin io.Reader, data string) (interface{}, error) {
	if data == "" {
		return nil, nil
	}

	var raw []byte

	switch {
	case data == "-":
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body from stdin: %w", err)
		}

		raw = content
	case strings.HasPrefix(data, "@"):
		// the file is named by the user running the command
		// #nosec G304
		content, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}

		raw = content
	default:
		raw = []byte(data)
	}

	var body interface{}

	err := json.Unmarshal(raw, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidRequestBody, err)
	}

	return body, nil
}

// fillValueTable shows the top level fields of an arbitrary response.
func fillValueTable(table *tablewriter.Table, statusCode int, data interface{}) {
	table.Header("Field", "Value")
	_ = table.Append("status", fmt.Sprint(statusCode))

	fields, ok := data.(map[string]interface{})
	if !ok {
		_ = table.Append("body", truncate(compactJSON(data)))

		return
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		_ = table.Append(key, truncate(compactJSON(fields[key])))
	}
}

func compactJSON(value interface{}) string {
	if text, ok := value.(string); ok {
		return text
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(encoded)
}
