package operations

import (
	"fmt"
	"os"

	"github.com/joshyorko/sbomlic/anywork"
	"github.com/joshyorko/sbomlic/common"
	"github.com/joshyorko/sbomlic/pretty"
	"github.com/joshyorko/sbomlic/report"
	"github.com/joshyorko/sbomlic/spdx"
	"github.com/joshyorko/sbomlic/syft"
)

// AnalyzeDocument parses every license field of every artifact into
// structured entries. Artifacts are independent, so the work fans
// out over the worker pool, each worker writing only its own index.
// That keeps output order equal to document order with no locking.
func AnalyzeDocument(document *syft.Document) ([]report.Record, error) {
	watch := common.Stopwatch("License analysis of %d artifacts lasted", len(document.Artifacts))
	records := make([]report.Record, len(document.Artifacts))
	for at, artifact := range document.Artifacts {
		anywork.Backlog(func() {
			analyses := make([]*spdx.Analysis, 0, len(artifact.Licenses))
			for _, raw := range artifact.RawLicenses() {
				analyses = append(analyses, spdx.Analyze(raw))
			}
			records[at] = report.Record{
				Name:     artifact.DisplayName(),
				Version:  artifact.DisplayVersion(),
				Type:     artifact.DisplayType(),
				Analyses: analyses,
			}
		})
	}
	err := anywork.Sync()
	watch.Debug()
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FailureCount tells how many license fields failed to parse over
// the whole record set.
func FailureCount(records []report.Record) int {
	count := 0
	for _, record := range records {
		count += len(record.Failures())
	}
	return count
}

func warnFailures(records []report.Record) {
	for _, record := range records {
		for _, failure := range record.Failures() {
			pretty.Warning("Package %s@%s: %v", record.Name, record.Version, failure)
		}
	}
}

// ReportConfig selects output form for one license report run.
type ReportConfig struct {
	CsvFile   string
	Delimiter rune
	PerEntry  bool
	Strict    bool
}

// LicenseReport runs the full pipeline for one Syft document file:
// load, analyze and render. With CsvFile the output is delimited
// text, otherwise a terminal grid. Strict mode turns any parse
// failure into a failed run after the report is still produced.
func LicenseReport(filename string, config ReportConfig) error {
	document, err := syft.LoadFile(filename)
	if err != nil {
		return err
	}
	records, err := AnalyzeDocument(document)
	if err != nil {
		return err
	}
	warnFailures(records)

	if len(config.CsvFile) == 0 {
		report.PrintGrid(records)
	} else {
		err = writeDelimited(config, records)
		if err != nil {
			return err
		}
		common.Log("Successfully exported %d artifacts to %s", len(records), config.CsvFile)
	}

	failures := FailureCount(records)
	if failures > 0 {
		common.Debug("Total of %d license fields failed to parse.", failures)
		if config.Strict {
			return fmt.Errorf("%d license expressions failed to parse", failures)
		}
	}
	return nil
}

func writeDelimited(config ReportConfig, records []report.Record) error {
	sink, err := os.Create(config.CsvFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", config.CsvFile, err)
	}
	defer sink.Close()
	if config.PerEntry {
		return report.WriteEntryCSV(sink, config.Delimiter, records)
	}
	return report.WriteCSV(sink, config.Delimiter, records)
}
