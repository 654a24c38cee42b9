package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cus"},
		Short:   "Manage customers",
		Long:    "List, create, update, and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	flags := &listFlags{}

	var email string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, optionally filtered by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email != "" {
				flags.filters = append(flags.filters, "email="+email)
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			customers, err := fetchList(context.Background(), flags, client.Customers().List)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return renderOutput(cmd, customers, func(table *tablewriter.Table) {
				table.Header("ID", "Email", "Name", "Created")

				for _, customer := range customers {
					_ = table.Append(customer.ID, customer.Email, truncate(customer.Name), formatTime(customer.CreatedAt))
				}
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&email, "email", "", "only customers with this email")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get customer", client.Customers().Get(context.Background(), args[0]), customerTable)
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		email    string
		name     string
		phone    string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a new customer",
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

			result := client.Customers().Create(context.Background(), &paykit.CustomerCreateRequest{
				Email:    email,
				Name:     name,
				Phone:    phone,
				Metadata: meta,
			})

			return printResult(cmd, "create customer", result, customerTable)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "customer phone number")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var (
		email    string
		name     string
		phone    string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID",
		Short: "Update a customer",
		Long:  "Update an existing customer; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.CustomerUpdateRequest{Metadata: meta}

			if cmd.Flags().Changed("email") {
				request.Email = &email
			}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("phone") {
				request.Phone = &phone
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "update customer", client.Customers().Update(context.Background(), args[0], request), customerTable)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "customer phone number")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Delete a customer and cancel its active subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete customer '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "delete customer", client.Customers().Delete(context.Background(), args[0]), deleteTable)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func customerTable(table *tablewriter.Table, customer paykit.Customer) {
	propertyTable(table,
		"ID", customer.ID,
		"Email", customer.Email,
		"Name", customer.Name,
		"Phone", customer.Phone,
		"Metadata", formatMetadata(customer.Metadata),
		"Created", formatTime(customer.CreatedAt),
	)
}
