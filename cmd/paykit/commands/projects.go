package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewProjectsCommand creates the projects command group. It uses the
// organization API key.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "List, create, update, and delete the projects of an organization (requires an org_ key)",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List the projects of the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newOrganizationClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			projects, err := fetchList(context.Background(), flags, client.Projects().List)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return renderOutput(cmd, projects, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Mode", "Created")

				for _, project := range projects {
					_ = table.Append(project.ID, truncate(project.Name), project.Mode, formatTime(project.CreatedAt))
				}
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := newOrganizationClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "get project", client.Projects().Get(context.Background(), args[0]), projectTable)
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name     string
		mode     string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Long:  "Create a new project in the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			client, sess, err := newOrganizationClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			result := client.Projects().Create(context.Background(), &paykit.ProjectCreateRequest{
				Name:     name,
				Mode:     mode,
				Metadata: meta,
			})

			return printResult(cmd, "create project", result, projectTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&mode, "mode", "", "project mode (test, live)")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var (
		name     string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update a project",
		Long:  "Rename a project or change its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &paykit.ProjectUpdateRequest{Metadata: meta}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			client, sess, err := newOrganizationClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "update project", client.Projects().Update(context.Background(), args[0], request), projectTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a project and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete project '%s' and all of its data?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, sess, err := newOrganizationClient(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			return printResult(cmd, "delete project", client.Projects().Delete(context.Background(), args[0]), deleteTable)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func projectTable(table *tablewriter.Table, project paykit.Project) {
	propertyTable(table,
		"ID", project.ID,
		"Name", project.Name,
		"Mode", project.Mode,
		"Metadata", formatMetadata(project.Metadata),
		"Created", formatTime(project.CreatedAt),
		"Updated", formatTime(project.UpdatedAt),
	)
}
