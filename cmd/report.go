package cmd

import (
	"github.com/joshyorko/sbomlic/common"
	"github.com/joshyorko/sbomlic/operations"
	"github.com/joshyorko/sbomlic/pretty"
	"github.com/joshyorko/sbomlic/xviper"
	"github.com/spf13/cobra"
)

var (
	reportFile      string
	reportCsv       string
	reportDelimiter string
	reportPerEntry  bool
	reportStrict    bool
)

func resolveDelimiter(flagged string) rune {
	selected := flagged
	if len(selected) == 0 {
		selected = xviper.GetString("report.delimiter")
	}
	switch selected {
	case "", ",":
		return ','
	case "\t", "\\t", "tab":
		return '\t'
	case ";":
		return ';'
	}
	runes := []rune(selected)
	pretty.Guard(len(runes) == 1, 2, "Delimiter must be a single character, not %q.", selected)
	return runes[0]
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report package licenses from Syft SBOM output.",
	Long: `Report package licenses from Syft SBOM output.

Each license field is parsed as an SPDX license expression, so
combined declarations like "(MIT OR Apache-2.0) AND ISC" become
structured entries instead of opaque strings. Fields that do not
parse are kept as-is and flagged, one bad package never stops the
report.

Examples:
  # Render a terminal grid
  sbomlic report -f scan.json

  # Export delimited text, one row per package
  sbomlic report -f scan.json --csv licenses.csv

  # One row per effective license entry, tab separated, from stdin
  syft -o json . | sbomlic report -f - --csv report.tsv --delimiter tab --per-entry`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("License report command lasted").Report()
		}
		config := operations.ReportConfig{
			CsvFile:   reportCsv,
			Delimiter: resolveDelimiter(reportDelimiter),
			PerEntry:  reportPerEntry,
			Strict:    reportStrict,
		}
		err := operations.LicenseReport(reportFile, config)
		pretty.Guard(err == nil, 1, "License report failed: %v", err)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Input Syft JSON file, or \"-\" for stdin.")
	reportCmd.Flags().StringVar(&reportCsv, "csv", "", "Export to delimited text file instead of printing a grid.")
	reportCmd.Flags().StringVar(&reportDelimiter, "delimiter", "", "Field delimiter for delimited output (default from settings, then comma).")
	reportCmd.Flags().BoolVar(&reportPerEntry, "per-entry", false, "One output row per effective license entry instead of per package.")
	reportCmd.Flags().BoolVar(&reportStrict, "strict", false, "Fail the run when any license expression does not parse.")
	reportCmd.MarkFlagRequired("file")
}
