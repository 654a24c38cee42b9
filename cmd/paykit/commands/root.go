package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/paykit/internal/constants"
)

// NewRootCommand creates the paykit command tree with its global flags bound
// into viper.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "paykit",
		Short: "PayKit API CLI",
		Long: `A command-line interface for the PayKit payment platform API.

Manage products, prices, customers, subscriptions, checkout sessions and
connected accounts for a project, or projects for an organization.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutputFormat(viper.GetString("output"))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.paykit/config.yml)")
	flags.String("api-key", "", "project API key (sk_...)")
	flags.String("org-api-key", "", "organization API key (org_...)")
	flags.String("base-url", "", "API origin (default https://api.paykit.io)")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "per-request timeout")
	flags.String("casing", "", "key casing policy (normalize, preserve)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log requests and responses to stderr")
	flags.Float64("rate-limit", 0, "maximum requests per second (0 for unlimited)")
	flags.String("audit-nats-url", "", "publish an audit event per request to this NATS server")
	flags.String("audit-subject", constants.DefaultAuditSubject, "NATS subject for audit events")

	for setting, flag := range map[string]string{
		"config":         "config",
		"api_key":        "api-key",
		"org_api_key":    "org-api-key",
		"base_url":       "base-url",
		"timeout":        "timeout",
		"casing":         "casing",
		"output":         "output",
		"verbose":        "verbose",
		"rate_limit":     "rate-limit",
		"audit_nats_url": "audit-nats-url",
		"audit_subject":  "audit-subject",
	} {
		_ = viper.BindPFlag(setting, flags.Lookup(flag))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewRequestCommand())
	rootCmd.AddCommand(NewProjectsCommand())
	rootCmd.AddCommand(NewProductsCommand())
	rootCmd.AddCommand(NewPricesCommand())
	rootCmd.AddCommand(NewCheckoutCommand())
	rootCmd.AddCommand(NewCustomersCommand())
	rootCmd.AddCommand(NewSubscriptionsCommand())
	rootCmd.AddCommand(NewAccountsCommand())

	return rootCmd
}
