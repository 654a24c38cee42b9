package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewCheckoutCommand creates the checkout command group.
func NewCheckoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Manage checkout sessions",
		Long:  "Create, inspect, and expire hosted checkout sessions",
	}

	cmd.AddCommand(newCheckoutCreateCommand())
	cmd.AddCommand(newCheckoutGetCommand())
	cmd.AddCommand(newCheckoutExpireCommand())

	return cmd
}

func newCheckoutCreateCommand() *cobra.Command {
	var (
		mode       string
		items      []string
		successURL string
		cancelURL  string
		customer   string
		metadata   []string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a checkout session",
		Long:    "Create a hosted checkout session and print its URL",
		Example: "  paykit checkout create --item price_123:2 --success-url https://shop.example.com/thanks",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedItems, err := parseItems(items)
			if err != nil {
				return err
			}

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			lineItems := make([]paykit.CheckoutLineItem, 0, len(parsedItems))
			for _, item := range parsedItems {
				lineItems = append(lineItems, paykit.CheckoutLineItem{PriceID: item.PriceID, Quantity: item.Quantity})
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			result := client.Checkout().CreateSession(context.Background(), &paykit.CheckoutSessionCreateRequest{
				Mode:       mode,
				LineItems:  lineItems,
				SuccessURL: successURL,
				CancelURL:  cancelURL,
				CustomerID: customer,
				Metadata:   meta,
			})

			return printResult(cmd, "create checkout session", result, checkoutSessionTable)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", paykit.CheckoutModePayment, "session mode (payment, subscription)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "PRICE_ID or PRICE_ID:QUANTITY (repeatable)")
	cmd.Flags().StringVar(&successURL, "success-url", "", "redirect target after payment")
	cmd.Flags().StringVar(&cancelURL, "cancel-url", "", "redirect target when the buyer abandons checkout")
	cmd.Flags().StringVar(&customer, "customer", "", "existing customer ID")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("success-url")

	return cmd
}

func newCheckoutGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Get checkout session details",
		Long:  "Display detailed information about a specific checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get checkout session", client.Checkout().GetSession(context.Background(), args[0]), checkoutSessionTable)
		},
	}
}

func newCheckoutExpireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expire SESSION_ID",
		Short: "Expire a checkout session",
		Long:  "Expire an open checkout session so it can no longer be paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "expire checkout session", client.Checkout().ExpireSession(context.Background(), args[0]), checkoutSessionTable)
		},
	}
}

func checkoutSessionTable(table *tablewriter.Table, session paykit.CheckoutSession) {
	items := make([]string, 0, len(session.LineItems))
	for _, item := range session.LineItems {
		items = append(items, fmt.Sprintf("%s x%d", item.PriceID, item.Quantity))
	}

	propertyTable(table,
		"ID", session.ID,
		"Status", session.Status,
		"Mode", session.Mode,
		"URL", session.URL,
		"Customer", session.CustomerID,
		"Line Items", truncate(strings.Join(items, ", ")),
		"Total", formatAmount(session.AmountTotal, session.Currency),
		"Expires", formatTime(session.ExpiresAt),
		"Created", formatTime(session.CreatedAt),
	)
}
