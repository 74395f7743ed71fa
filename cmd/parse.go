package cmd

import (
	"github.com/joshyorko/sbomlic/common"
	"github.com/joshyorko/sbomlic/pretty"
	"github.com/joshyorko/sbomlic/spdx"
	"github.com/spf13/cobra"
)

var parseTree bool

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse one SPDX license expression and show its entries.",
	Long: `Parse one SPDX license expression and show its effective license
entries. Useful for checking how a declared license decomposes.

Examples:
  sbomlic parse "(MIT OR Apache-2.0) AND ISC"
  sbomlic parse --tree "GPL-2.0-or-later WITH Classpath-exception-2.0"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := args[0]
		root, err := spdx.Parse(source)
		pretty.Guard(err == nil, 1, "Cannot parse %q: %v", source, err)

		if parseTree {
			common.Stdout("Canonical: %s\n", root.String())
		}
		common.Stdout("%s%-40s %-30s %-12s %s%s\n", pretty.Bold, "License", "Exception", "Context", "Group", pretty.Reset)
		for _, entry := range spdx.Flatten(root) {
			common.Stdout("%-40s %-30s %-12s %s\n", entry.License, entry.Exception, entry.Context, entry.Group)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "Also show the canonical rendering of the parsed expression.")
}
