package cmd

import (
	"github.com/joshyorko/sbomlic/common"
	"github.com/joshyorko/sbomlic/pretty"
	"github.com/joshyorko/sbomlic/xviper"
	"github.com/spf13/cobra"
)

// Keys with a meaning today. Unknown keys are stored but ignored.
var knownSettings = []string{
	"report.delimiter",
	"colors.disabled",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show persisted sbomlic settings.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("Settings file: %s\n", xviper.ConfigFileUsed())
		for _, key := range knownSettings {
			common.Stdout("  %s = %v\n", key, xviper.Get(key))
		}
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one sbomlic setting.",
	Long: `Persist one sbomlic setting under the product home directory.

Examples:
  sbomlic settings set report.delimiter ";"
  sbomlic settings set colors.disabled true`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		xviper.Set(args[0], args[1])
		pretty.Note("Set %s to %q in %s.", args[0], args[1], xviper.ConfigFileUsed())
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
