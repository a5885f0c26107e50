package fields

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucial707/cronscope/cmd/cli/config"
	"github.com/crucial707/cronscope/cmd/cli/output"
	"github.com/crucial707/cronscope/internal/cron"
	"github.com/crucial707/cronscope/internal/models"
)

// InitFields registers the field and set-field commands on the root command.
func InitFields(rootCmd *cobra.Command) {
	rootCmd.AddCommand(fieldCmd(), setFieldCmd())
}

// fieldCmd parses one field spec on its own.
func fieldCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "field <minute|hour|day-of-month|month|day-of-week> <spec>",
		Short: "Show the values a single field spec selects",
		Example: `  cronscope field minute '*/15'
  cronscope field dow 1-5 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := cron.ParseFieldName(args[0])
			if err != nil {
				return err
			}
			spec, err := cron.Classify(f, args[1])
			if err != nil {
				return err
			}

			v := models.NewFieldView(f, spec)
			if asJSON {
				return output.JSON(cmd.OutOrStdout(), v)
			}
			output.RenderTable(cmd.OutOrStdout(),
				[]string{"Field", "Spec", "Kind", "Count", "Values"},
				[][]interface{}{{v.Name, v.Spec, v.Kind, len(v.Values), output.Ints(v.Values)}})
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

// setFieldCmd replaces one field of an expression and describes the result.
func setFieldCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:     "set-field <expression> <field> <value>",
		Short:   "Replace one field of an expression",
		Example: `  cronscope set-field "0 9 * * *" day-of-week 1-5`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := cron.Parse(args[0])
			if err != nil {
				return err
			}
			f, err := cron.ParseFieldName(args[1])
			if err != nil {
				return err
			}
			edited, err := expr.WithField(f, args[2])
			if err != nil {
				return err
			}

			if locale == "" {
				locale = config.Locale()
			}
			fmt.Fprintln(cmd.OutOrStdout(), edited)
			fmt.Fprintln(cmd.OutOrStdout(), cron.DescribeIn(edited, cron.LocaleFor(locale)))
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "Description language: en or zh")
	return cmd
}
