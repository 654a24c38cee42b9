package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "sub"},
		Short:   "Manage subscriptions",
		Long:    "List, create, update, and cancel recurring subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsUpdateCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	flags := &listFlags{}

	var (
		customer string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions, optionally filtered by customer or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customer != "" {
				flags.filters = append(flags.filters, "customer_id="+customer)
			}

			if status != "" {
				flags.filters = append(flags.filters, "status="+status)
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			subscriptions, err := fetchList(context.Background(), flags, client.Subscriptions().List)
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return renderOutput(cmd, subscriptions, func(table *tablewriter.Table) {
				table.Header("ID", "Customer", "Status", "Items", "Period End")

				for _, subscription := range subscriptions {
					_ = table.Append(subscription.ID, subscription.CustomerID, subscription.Status, formatItems(subscription.Items), formatTime(subscription.CurrentPeriodEnd))
				}
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&customer, "customer", "", "only subscriptions of this customer")
	cmd.Flags().StringVar(&status, "status", "", "only subscriptions with this status")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get subscription", client.Subscriptions().Get(context.Background(), args[0]), subscriptionTable)
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		customer  string
		items     []string
		trialDays int
		metadata  []string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a subscription",
		Long:    "Subscribe a customer to one or more recurring prices",
		Example: "  paykit subscriptions create --customer cus_123 --item price_basic --item price_seat:5",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedItems, err := parseItems(items)
			if err != nil {
				return err
			}

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.SubscriptionCreateRequest{
				CustomerID: customer,
				Items:      parsedItems,
				Metadata:   meta,
			}

			if cmd.Flags().Changed("trial-days") {
				request.TrialDays = &trialDays
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "create subscription", client.Subscriptions().Create(context.Background(), request), subscriptionTable)
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer ID")
	cmd.Flags().StringArrayVar(&items, "item", nil, "PRICE_ID or PRICE_ID:QUANTITY (repeatable)")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "free trial length in days")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newSubscriptionsUpdateCommand() *cobra.Command {
	var (
		items             []string
		cancelAtPeriodEnd bool
		metadata          []string
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Update a subscription",
		Long:  "Replace the items of a subscription or schedule its cancellation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedItems, err := parseItems(items)
			if err != nil {
				return err
			}

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.SubscriptionUpdateRequest{Metadata: meta}

			if len(parsedItems) > 0 {
				request.Items = parsedItems
			}

			if cmd.Flags().Changed("cancel-at-period-end") {
				request.CancelAtPeriodEnd = &cancelAtPeriodEnd
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "update subscription", client.Subscriptions().Update(context.Background(), args[0], request), subscriptionTable)
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "PRICE_ID or PRICE_ID:QUANTITY (repeatable)")
	cmd.Flags().BoolVar(&cancelAtPeriodEnd, "cancel-at-period-end", false, "cancel when the current period ends")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newSubscriptionsCancelCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really cancel subscription '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "cancel subscription", client.Subscriptions().Cancel(context.Background(), args[0]), subscriptionTable)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "cancel without confirmation")

	return cmd
}

func subscriptionTable(table *tablewriter.Table, subscription paykit.Subscription) {
	canceledAt := "-"
	if subscription.CanceledAt != nil {
		canceledAt = formatTime(*subscription.CanceledAt)
	}

	propertyTable(table,
		"ID", subscription.ID,
		"Customer", subscription.CustomerID,
		"Status", subscription.Status,
		"Items", formatItems(subscription.Items),
		"Period Start", formatTime(subscription.CurrentPeriodStart),
		"Period End", formatTime(subscription.CurrentPeriodEnd),
		"Cancel At Period End", formatBool(subscription.CancelAtPeriodEnd),
		"Canceled At", canceledAt,
		"Metadata", formatMetadata(subscription.Metadata),
		"Created", formatTime(subscription.CreatedAt),
	)
}

func formatItems(items []paykit.SubscriptionItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.PriceID, item.Quantity))
	}

	return truncate(strings.Join(parts, ", "))
}
