package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// validateOutputFormat rejects unknown --output values before any request is made.
func validateOutputFormat(format string) error {
	switch format {
	case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// renderOutput writes value as JSON or YAML, or calls fillTable for table output.
func renderOutput(cmd *cobra.Command, value interface{}, fillTable func(table *tablewriter.Table)) error {
	out := cmd.OutOrStdout()

	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode output as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode output as YAML: %w", err)
		}

		return encoder.Close()
	default:
		table := tablewriter.NewWriter(out)
		fillTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// printResult unwraps result and renders its data. A failed call becomes the
// command's error.
func printResult[T any](cmd *cobra.Command, action string, result paykit.Result[T], fillTable func(table *tablewriter.Table, data T)) error {
	data, err := result.Unwrap()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	return renderOutput(cmd, data, func(table *tablewriter.Table) {
		fillTable(table, data)
	})
}

// propertyTable renders alternating name/value pairs as a two column table.
func propertyTable(table *tablewriter.Table, pairs ...string) {
	table.Header("Property", "Value")

	for i := 0; i+1 < len(pairs); i += 2 {
		_ = table.Append(pairs[i], pairs[i+1])
	}
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return constants.NotAvailable
	}

	return value.Local().Format(constants.DisplayTimeFormat)
}

func formatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%d %s", amount, strings.ToUpper(currency))
}

func formatMetadata(metadata paykit.Metadata) string {
	if len(metadata) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(metadata))
	for key, value := range metadata {
		pairs = append(pairs, key+"="+value)
	}

	return truncate(strings.Join(sortedStrings(pairs), ", "))
}

func truncate(value string) string {
	if len(value) <= constants.StringTruncationLength {
		return value
	}

	return value[:constants.StringTruncationLength-3] + "..."
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}
