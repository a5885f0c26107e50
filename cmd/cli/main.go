package main

import (
	"fmt"
	"os"

	"github.com/crucial707/cronscope/cmd/cli/explain"
	"github.com/crucial707/cronscope/cmd/cli/fields"
	"github.com/crucial707/cronscope/cmd/cli/presets"
	"github.com/crucial707/cronscope/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()
	explain.InitExplain(rootCmd)
	fields.InitFields(rootCmd)
	presets.InitPresets(rootCmd)

	// Execute the root Cobra command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
