package presets

import (
	"github.com/spf13/cobra"

	"github.com/crucial707/cronscope/cmd/cli/config"
	"github.com/crucial707/cronscope/cmd/cli/output"
	"github.com/crucial707/cronscope/internal/cron"
	"github.com/crucial707/cronscope/internal/models"
	cronpresets "github.com/crucial707/cronscope/internal/presets"
)

// InitPresets registers the presets command on the root command.
func InitPresets(rootCmd *cobra.Command) {
	rootCmd.AddCommand(presetsCmd())
}

func presetsCmd() *cobra.Command {
	var (
		file   string
		locale string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List common expressions",
		Long:  "List the built-in presets, or the presets in a YAML file (--file or CRONSCOPE_PRESETS_FILE).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = config.PresetsFile()
			}
			list, err := cronpresets.Load(file)
			if err != nil {
				return err
			}
			if locale == "" {
				locale = config.Locale()
			}
			views := models.NewPresets(list, cron.LocaleFor(locale))

			if asJSON {
				return output.JSON(cmd.OutOrStdout(), views)
			}
			rows := make([][]interface{}, 0, len(views))
			for i, p := range views {
				rows = append(rows, []interface{}{i + 1, p.Label, p.Expression, p.Description})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"#", "Label", "Expression", "Description"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML presets file")
	cmd.Flags().StringVar(&locale, "locale", "", "Label language: en or zh")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
