package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "prod"},
		Short:   "Manage products",
		Long:    "List, create, update, and delete the products a project sells",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsCreateCommand())
	cmd.AddCommand(newProductsUpdateCommand())
	cmd.AddCommand(newProductsDeleteCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List products, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			products, err := fetchList(context.Background(), flags, client.Products().List)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			return renderOutput(cmd, products, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Active", "Default Price", "Created")

				for _, product := range products {
					_ = table.Append(product.ID, truncate(product.Name), formatBool(product.Active), product.DefaultPriceID, formatTime(product.CreatedAt))
				}
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display detailed information about a specific product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get product", client.Products().Get(context.Background(), args[0]), productTable)
		},
	}
}

func newProductsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		active      bool
		group       string
		metadata    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Long:  "Create a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.ProductCreateRequest{
				Name:           name,
				Description:    description,
				ProductGroupID: group,
				Metadata:       meta,
			}

			if cmd.Flags().Changed("active") {
				request.Active = &active
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "create product", client.Products().Create(context.Background(), request), productTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().BoolVar(&active, "active", true, "whether the product can be sold")
	cmd.Flags().StringVar(&group, "group", "", "product group ID")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProductsUpdateCommand() *cobra.Command {
	var (
		name         string
		description  string
		active       bool
		defaultPrice string
		metadata     []string
	)

	cmd := &cobra.Command{
		Use:   "update PRODUCT_ID",
		Short: "Update a product",
		Long:  "Update an existing product; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.ProductUpdateRequest{Metadata: meta}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("active") {
				request.Active = &active
			}

			if cmd.Flags().Changed("default-price") {
				request.DefaultPriceID = &defaultPrice
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "update product", client.Products().Update(context.Background(), args[0], request), productTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().BoolVar(&active, "active", true, "whether the product can be sold")
	cmd.Flags().StringVar(&defaultPrice, "default-price", "", "default price ID")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newProductsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PRODUCT_ID",
		Short: "Delete a product",
		Long:  "Delete a product that has no prices in use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete product '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, sess, err := newProjectClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "delete product", client.Products().Delete(context.Background(), args[0]), deleteTable)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func productTable(table *tablewriter.Table, product paykit.Product) {
	propertyTable(table,
		"ID", product.ID,
		"Name", product.Name,
		"Description", product.Description,
		"Active", formatBool(product.Active),
		"Group", product.ProductGroupID,
		"Default Price", product.DefaultPriceID,
		"Metadata", formatMetadata(product.Metadata),
		"Created", formatTime(product.CreatedAt),
		"Updated", formatTime(product.UpdatedAt),
	)
}

func deleteTable(table *tablewriter.Table, deleted paykit.DeleteResponse) {
	propertyTable(table,
		"ID", deleted.ID,
		"Deleted", formatBool(deleted.Deleted),
	)
}
