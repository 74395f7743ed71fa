package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// WriteCSV emits one delimited row per package, licenses joined with
// "; " like the grid's cell content, minus markers.
func WriteCSV(sink io.Writer, delimiter rune, records []Record) error {
	writer := csv.NewWriter(sink)
	writer.Comma = delimiter
	err := writer.Write([]string{"Name", "Version", "Type", "Licenses"})
	if err != nil {
		return err
	}
	for _, record := range records {
		lines := record.Licenses()
		licenses := "None"
		if len(lines) > 0 {
			licenses = strings.Join(lines, "; ")
		}
		err = writer.Write([]string{record.Name, record.Version, record.Type, licenses})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteEntryCSV emits one delimited row per effective license entry,
// keeping the structured fields (exception, combinator context, OR
// group path, parse outcome) as their own columns.
func WriteEntryCSV(sink io.Writer, delimiter rune, records []Record) error {
	writer := csv.NewWriter(sink)
	writer.Comma = delimiter
	err := writer.Write([]string{"Name", "Version", "Type", "License", "Exception", "Context", "Group", "ParseOK"})
	if err != nil {
		return err
	}
	for _, record := range records {
		for _, analysis := range record.Analyses {
			for _, entry := range analysis.Entries {
				err = writer.Write([]string{
					record.Name,
					record.Version,
					record.Type,
					entry.License,
					entry.Exception,
					string(entry.Context),
					entry.Group.String(),
					strconv.FormatBool(analysis.Parsed),
				})
				if err != nil {
					return err
				}
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
