package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewPricesCommand creates the prices command group.
func NewPricesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prices",
		Aliases: []string{"price"},
		Short:   "Manage prices",
		Long:    "List, create, and update product prices. Amounts are immutable once created.",
	}

	cmd.AddCommand(newPricesListCommand())
	cmd.AddCommand(newPricesGetCommand())
	cmd.AddCommand(newPricesCreateCommand())
	cmd.AddCommand(newPricesUpdateCommand())

	return cmd
}

func newPricesListCommand() *cobra.Command {
	flags := &listFlags{}

	var product string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prices",
		Long:  "List prices, optionally for one product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if product != "" {
				flags.filters = append(flags.filters, "product_id="+product)
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			prices, err := fetchList(context.Background(), flags, client.Prices().List)
			if err != nil {
				return fmt.Errorf("failed to list prices: %w", err)
			}

			return renderOutput(cmd, prices, func(table *tablewriter.Table) {
				table.Header("ID", "Product", "Amount", "Type", "Interval", "Active")

				for _, price := range prices {
					_ = table.Append(price.ID, price.ProductID, formatAmount(price.UnitAmount, price.Currency), price.Type, formatInterval(price.Recurring), formatBool(price.Active))
				}
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&product, "product", "", "only prices of this product")

	return cmd
}

func newPricesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRICE_ID",
		Short: "Get price details",
		Long:  "Display detailed information about a specific price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get price", client.Prices().Get(context.Background(), args[0]), priceTable)
		},
	}
}

func newPricesCreateCommand() *cobra.Command {
	var (
		product       string
		currency      string
		amount        int64
		interval      string
		intervalCount int
		nickname      string
		metadata      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a price",
		Long:  "Create a one-time price, or a recurring one when --interval is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.PriceCreateRequest{
				ProductID:  product,
				Currency:   currency,
				UnitAmount: amount,
				Nickname:   nickname,
				Metadata:   meta,
			}

			if interval != "" {
				request.Recurring = &paykit.PriceRecurring{Interval: interval, IntervalCount: intervalCount}
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "create price", client.Prices().Create(context.Background(), request), priceTable)
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "product ID")
	cmd.Flags().StringVar(&currency, "currency", "usd", "ISO currency code")
	cmd.Flags().Int64Var(&amount, "amount", 0, "unit amount in the smallest currency unit")
	cmd.Flags().StringVar(&interval, "interval", "", "billing interval for recurring prices (day, week, month, year)")
	cmd.Flags().IntVar(&intervalCount, "interval-count", 1, "number of intervals between billings")
	cmd.Flags().StringVar(&nickname, "nickname", "", "internal price name")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPricesUpdateCommand() *cobra.Command {
	var (
		active   bool
		nickname string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "update PRICE_ID",
		Short: "Update a price",
		Long:  "Change the active flag, nickname or metadata of a price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.PriceUpdateRequest{Metadata: meta}

			if cmd.Flags().Changed("active") {
				request.Active = &active
			}

			if cmd.Flags().Changed("nickname") {
				request.Nickname = &nickname
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "update price", client.Prices().Update(context.Background(), args[0], request), priceTable)
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "whether the price can be used")
	cmd.Flags().StringVar(&nickname, "nickname", "", "internal price name")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func priceTable(table *tablewriter.Table, price paykit.Price) {
	propertyTable(table,
		"ID", price.ID,
		"Product", price.ProductID,
		"Amount", formatAmount(price.UnitAmount, price.Currency),
		"Type", price.Type,
		"Interval", formatInterval(price.Recurring),
		"Nickname", price.Nickname,
		"Active", formatBool(price.Active),
		"Metadata", formatMetadata(price.Metadata),
		"Created", formatTime(price.CreatedAt),
	)
}

func formatInterval(recurring *paykit.PriceRecurring) string {
	if recurring == nil {
		return "-"
	}

	if recurring.IntervalCount > 1 {
		return fmt.Sprintf("every %d %ss", recurring.IntervalCount, recurring.Interval)
	}

	return recurring.Interval
}
