package cmd

import (
	"github.com/joshyorko/sbomlic/anywork"
	"github.com/joshyorko/sbomlic/common"
	"github.com/joshyorko/sbomlic/pretty"
	"github.com/joshyorko/sbomlic/xviper"
	"github.com/spf13/cobra"
)

var (
	debugFlag    bool
	traceFlag    bool
	silentFlag   bool
	noColorsFlag bool
	workersFlag  int
)

var rootCmd = &cobra.Command{
	Use:   "sbomlic",
	Short: "sbomlic is a license reporter for Syft SBOM output.",
	Long: `sbomlic digs per-package license metadata out of Syft SBOM JSON,
parses the SPDX license expressions into structured entries, and
renders the result as a terminal grid or delimited text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		common.NoColors = noColorsFlag || xviper.GetBool("colors.disabled")
		pretty.Setup()
		if workersFlag > 1 {
			anywork.WorkerCount = workersFlag
			anywork.AutoScale()
		}
		common.Trace("Worker pool size is %d.", anywork.Scale())
	},
}

// Execute runs the command tree. Failures surface through the
// process boundary as pretty exits so that logs still flush.
func Execute() {
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "To get debug output where available.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "To get trace output where available.")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "To reduce output.")
	rootCmd.PersistentFlags().BoolVar(&noColorsFlag, "no-color", false, "Do not use colors in output.")
	rootCmd.PersistentFlags().IntVar(&workersFlag, "workers", 0, "Worker count for parallel analysis (0 means automatic).")
}
