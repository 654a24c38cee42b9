package commands

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// listFlags are shared by every list subcommand.
type listFlags struct {
	limit   int
	cursor  string
	expand  []string
	filters []string
	all     bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", constants.DefaultPageSize, "number of items per page")
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "continue after this cursor")
	cmd.Flags().StringSliceVar(&f.expand, "expand", nil, "related objects to expand inline")
	cmd.Flags().StringSliceVar(&f.filters, "filter", nil, "filter as key=value (repeatable)")
	cmd.Flags().BoolVar(&f.all, "all", false, "follow cursors and fetch every page")
}

func (f *listFlags) params() (*paykit.QueryParams, error) {
	params := paykit.NewQueryParams().WithLimit(f.limit).WithCursor(f.cursor).WithExpand(f.expand...)

	filters, err := parseKeyValues(f.filters)
	if err != nil {
		return nil, err
	}

	for key, value := range filters {
		params.WithFilter(key, value)
	}

	return params, nil
}

// fetchList returns one page, or every page when all is set.
func fetchList[T any](
	ctx context.Context,
	flags *listFlags,
	list func(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[T]],
) ([]T, error) {
	params, err := flags.params()
	if err != nil {
		return nil, err
	}

	var items []T

	for {
		page, err := list(ctx, params).Unwrap()
		if err != nil {
			return nil, err
		}

		items = append(items, page.Data...)

		if !flags.all || !page.HasMore || page.NextCursor == "" {
			return items, nil
		}

		params.WithCursor(page.NextCursor)
	}
}

// parseKeyValues turns key=value strings into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidMetadata, pair)
		}

		values[strings.TrimSpace(key)] = value
	}

	return values, nil
}

func parseMetadata(pairs []string) (paykit.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	values, err := parseKeyValues(pairs)
	if err != nil {
		return nil, err
	}

	return paykit.Metadata(values), nil
}

// parseItems parses PRICE_ID or PRICE_ID:QUANTITY values.
func parseItems(values []string) ([]paykit.SubscriptionItem, error) {
	items := make([]paykit.SubscriptionItem, 0, len(values))

	for _, value := range values {
		priceID, quantityText, hasQuantity := strings.Cut(value, ":")
		if priceID == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidItem, value)
		}

		quantity := 1

		if hasQuantity {
			parsed, err := strconv.Atoi(quantityText)
			if err != nil || parsed < 1 {
				return nil, fmt.Errorf("%w: %q", constants.ErrInvalidItem, value)
			}

			quantity = parsed
		}

		items = append(items, paykit.SubscriptionItem{PriceID: priceID, Quantity: quantity})
	}

	return items, nil
}

func sortedStrings(values []string) []string {
	sort.Strings(values)

	return values
}

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)

	var response string

	_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)

	return response == "y" || response == "Y"
}
