package explain

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/cronscope/cmd/cli/config"
	"github.com/crucial707/cronscope/cmd/cli/output"
	"github.com/crucial707/cronscope/internal/cron"
	"github.com/crucial707/cronscope/internal/crosscheck"
	"github.com/crucial707/cronscope/internal/models"
)

// maxCount bounds --count; a sparse expression is a year-long minute walk per run.
const maxCount = 500

// InitExplain registers the explain command on the root command.
func InitExplain(rootCmd *cobra.Command) {
	rootCmd.AddCommand(explainCmd())
}

func explainCmd() *cobra.Command {
	var (
		count  int
		from   string
		locale string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "explain <expression>",
		Short: "Describe an expression and list its next run times",
		Long: `Describe a five-field cron expression and list its next run times in local time.
The expression may be one quoted argument or five separate arguments.`,
		Example: `  cronscope explain "0 9 * * 1-5"
  cronscope explain '*/15' '*' '*' '*' '*' --count 3 --locale zh`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 || count > maxCount {
				return fmt.Errorf("--count must be between 0 and %d", maxCount)
			}
			start := time.Now()
			if from != "" {
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				start = t
			}
			if locale == "" {
				locale = config.Locale()
			}
			loc := cron.LocaleFor(locale)

			x := cron.Explain(strings.Join(args, " "), count, start, loc)
			if !x.Valid() {
				return x.Err
			}
			standard := crosscheck.Divergent(x.Expression, count, start)

			w := cmd.OutOrStdout()
			if asJSON {
				return output.JSON(w, models.NewExplanation(x, loc, standard))
			}

			fmt.Fprintf(w, "Expression:  %s\n", x.Expression)
			fmt.Fprintf(w, "Description: %s\n\n", x.Description)

			rows := make([][]interface{}, 0, 5)
			for _, f := range cron.Fields() {
				v := models.NewFieldView(f, x.Expression.Spec(f))
				rows = append(rows, []interface{}{v.Name, v.Spec, v.Kind, output.Ints(v.Values)})
			}
			output.RenderTable(w, []string{"Field", "Spec", "Kind", "Values"}, rows)

			if count == 0 {
				return nil
			}
			fmt.Fprintln(w)
			if len(x.Occurrences) == 0 {
				fmt.Fprintln(w, loc.NoOccurrences)
				return nil
			}
			renderOccurrences(cmd, x.Occurrences, loc)

			if x.Expression.DaysDivergent() {
				fmt.Fprintln(w, "\nDay-of-month and day-of-week must both match. Standard cron (either matches) would run at:")
				renderOccurrences(cmd, standard, loc)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of run times to list")
	cmd.Flags().StringVar(&from, "from", "", "Reference time (RFC 3339); defaults to now")
	cmd.Flags().StringVar(&locale, "locale", "", "Description language: en or zh (defaults to CRONSCOPE_LOCALE, then LANG)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of tables")
	return cmd
}

func renderOccurrences(cmd *cobra.Command, times []time.Time, loc cron.Locale) {
	rows := make([][]interface{}, 0, len(times))
	for i, t := range times {
		rows = append(rows, []interface{}{i + 1, models.FormatOccurrence(t, loc)})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"#", "Run"}, rows)
}
