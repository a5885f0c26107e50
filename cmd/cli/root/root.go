package root

import (
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "cronscope",
	Short: "Explain five-field cron expressions",
	Long: `Explain five-field cron expressions: a description in plain language,
the values each field selects, and the next run times in local time.

Day-of-month and day-of-week must both match for a run. When both are
restricted, the explain command also lists standard cron's run times.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GetRoot returns the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
