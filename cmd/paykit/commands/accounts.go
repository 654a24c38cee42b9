package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewAccountsCommand creates the connected accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acct"},
		Short:   "Manage connected accounts",
		Long:    "Onboard and manage the sellers connected to a platform project",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newAccountsUpdateCommand())
	cmd.AddCommand(newAccountsDeleteCommand())
	cmd.AddCommand(newAccountsOnboardingLinkCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connected accounts",
		Long:  "List the connected accounts of the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			accounts, err := fetchList(context.Background(), flags, client.ConnectedAccounts().List)
			if err != nil {
				return fmt.Errorf("failed to list connected accounts: %w", err)
			}

			return renderOutput(cmd, accounts, func(table *tablewriter.Table) {
				table.Header("ID", "Type", "Country", "Business", "Charges", "Payouts")

				for _, account := range accounts {
					_ = table.Append(account.ID, account.Type, account.Country, truncate(account.BusinessName), formatBool(account.ChargesEnabled), formatBool(account.PayoutsEnabled))
				}
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get connected account details",
		Long:  "Display detailed information about a specific connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get connected account", client.ConnectedAccounts().Get(context.Background(), args[0]), accountTable)
		},
	}
}

func newAccountsCreateCommand() *cobra.Command {
	var (
		accountType  string
		country      string
		email        string
		businessName string
		metadata     []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a connected account",
		Long:  "Create a connected account; follow up with onboarding-link to let the seller finish onboarding",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			result := client.ConnectedAccounts().Create(context.Background(), &paykit.ConnectedAccountCreateRequest{
				Type:         accountType,
				Country:      country,
				Email:        email,
				BusinessName: businessName,
				Metadata:     meta,
			})

			return printResult(cmd, "create connected account", result, accountTable)
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "express", "account type (standard, express, custom)")
	cmd.Flags().StringVar(&country, "country", "", "two-letter country code")
	cmd.Flags().StringVar(&email, "email", "", "account holder email")
	cmd.Flags().StringVar(&businessName, "business-name", "", "public business name")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newAccountsUpdateCommand() *cobra.Command {
	var (
		email        string
		businessName string
		metadata     []string
	)

	cmd := &cobra.Command{
		Use:   "update ACCOUNT_ID",
		Short: "Update a connected account",
		Long:  "Update an existing connected account; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.ConnectedAccountUpdateRequest{Metadata: meta}

			if cmd.Flags().Changed("email") {
				request.Email = &email
			}

			if cmd.Flags().Changed("business-name") {
				request.BusinessName = &businessName
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "update connected account", client.ConnectedAccounts().Update(context.Background(), args[0], request), accountTable)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account holder email")
	cmd.Flags().StringVar(&businessName, "business-name", "", "public business name")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newAccountsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ACCOUNT_ID",
		Short: "Delete a connected account",
		Long:  "Disconnect and delete a connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete connected account '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "delete connected account", client.ConnectedAccounts().Delete(context.Background(), args[0]), deleteTable)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newAccountsOnboardingLinkCommand() *cobra.Command {
	var (
		refreshURL string
		returnURL  string
	)

	cmd := &cobra.Command{
		Use:   "onboarding-link ACCOUNT_ID",
		Short: "Create an onboarding link",
		Long:  "Create a single-use URL where the account holder completes onboarding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			result := client.ConnectedAccounts().CreateOnboardingLink(context.Background(), args[0], &paykit.OnboardingLinkRequest{
				RefreshURL: refreshURL,
				ReturnURL:  returnURL,
			})

			return printResult(cmd, "create onboarding link", result, func(table *tablewriter.Table, link paykit.OnboardingLink) {
				propertyTable(table,
					"URL", link.URL,
					"Expires", formatTime(link.ExpiresAt),
				)
			})
		},
	}

	cmd.Flags().StringVar(&refreshURL, "refresh-url", "", "where to send the holder when the link has expired")
	cmd.Flags().StringVar(&returnURL, "return-url", "", "where to send the holder after onboarding")
	_ = cmd.MarkFlagRequired("refresh-url")
	_ = cmd.MarkFlagRequired("return-url")

	return cmd
}

func accountTable(table *tablewriter.Table, account paykit.ConnectedAccount) {
	propertyTable(table,
		"ID", account.ID,
		"Type", account.Type,
		"Country", account.Country,
		"Email", account.Email,
		"Business", account.BusinessName,
		"Charges Enabled", formatBool(account.ChargesEnabled),
		"Payouts Enabled", formatBool(account.PayoutsEnabled),
		"Details Submitted", formatBool(account.DetailsSubmitted),
		"Metadata", formatMetadata(account.Metadata),
		"Created", formatTime(account.CreatedAt),
	)
}
