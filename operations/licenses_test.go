package operations_test

import (
	"fmt"
	"testing"

	"github.com/joshyorko/sbomlic/hamlet"
	"github.com/joshyorko/sbomlic/operations"
	"github.com/joshyorko/sbomlic/syft"
)

func TestAnalyzeDocumentKeepsDocumentOrder(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	artifacts := make([]syft.Artifact, 300)
	for at := range artifacts {
		artifacts[at] = syft.Artifact{
			Name:     fmt.Sprintf("pkg-%03d", at),
			Version:  "1.0.0",
			Type:     "npm",
			Licenses: []syft.License{{Value: "MIT OR Apache-2.0"}},
		}
	}
	document := &syft.Document{Artifacts: artifacts}

	records, err := operations.AnalyzeDocument(document)
	must_be.Nil(err)
	must_be.Equal(300, len(records))
	for at, record := range records {
		must_be.Equal(fmt.Sprintf("pkg-%03d", at), record.Name)
		must_be.Equal(2, len(record.Analyses[0].Entries))
	}
}

func TestFailureCounting(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	document := &syft.Document{
		Artifacts: []syft.Artifact{
			{Name: "good", Licenses: []syft.License{{Value: "MIT"}}},
			{Name: "bad", Licenses: []syft.License{{Value: "MIT AND"}, {Value: "(ISC"}}},
			{Name: "quiet"},
		},
	}

	records, err := operations.AnalyzeDocument(document)
	must_be.Nil(err)
	must_be.Equal(3, len(records))
	must_be.Equal(2, operations.FailureCount(records))
	must_be.True(records[0].ParseOK())
	must_be.True(!records[1].ParseOK())
	must_be.True(records[2].ParseOK())
}
