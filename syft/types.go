package syft

import (
	"encoding/json"
	"strings"
)

// Document is the subset of Syft JSON output that license reporting
// needs. Unknown fields are ignored, the schema grows release to
// release.
type Document struct {
	Artifacts  []Artifact `json:"artifacts"`
	Descriptor Descriptor `json:"descriptor"`
}

// Descriptor identifies the scanner that produced the document.
type Descriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Artifact is one scanned package. All fields are optional in the
// wild, display code fills the blanks.
type Artifact struct {
	Name     string    `json:"name"`
	Version  string    `json:"version"`
	Type     string    `json:"type"`
	Purl     string    `json:"purl"`
	Language string    `json:"language"`
	Licenses []License `json:"licenses"`
}

// License is one entry of an artifact's license list. Older Syft
// schemas emit bare strings, newer ones objects with a "value" and
// an optional "spdxExpression".
type License struct {
	Value          string `json:"value"`
	SPDXExpression string `json:"spdxExpression"`
	Type           string `json:"type"`
}

func (it *License) UnmarshalJSON(data []byte) error {
	var simple string
	if json.Unmarshal(data, &simple) == nil {
		it.Value = simple
		return nil
	}
	type detailed License
	var full detailed
	err := json.Unmarshal(data, &full)
	if err != nil {
		return err
	}
	*it = License(full)
	return nil
}

// Raw gives the license expression to parse from this entry. The
// SPDX expression wins over the free form value when both exist.
func (it License) Raw() string {
	expression := strings.TrimSpace(it.SPDXExpression)
	if len(expression) > 0 {
		return expression
	}
	return strings.TrimSpace(it.Value)
}

// RawLicenses collects the non-blank license expressions of the
// artifact in document order. Each one is an independent expression,
// aggregation stays with the caller.
func (it Artifact) RawLicenses() []string {
	collected := make([]string, 0, len(it.Licenses))
	for _, license := range it.Licenses {
		raw := license.Raw()
		if len(raw) > 0 {
			collected = append(collected, raw)
		}
	}
	return collected
}

func orUnknown(value string) string {
	if len(strings.TrimSpace(value)) == 0 {
		return "Unknown"
	}
	return value
}

// DisplayName, DisplayVersion and DisplayType never give blanks.
func (it Artifact) DisplayName() string {
	return orUnknown(it.Name)
}

func (it Artifact) DisplayVersion() string {
	return orUnknown(it.Version)
}

func (it Artifact) DisplayType() string {
	return orUnknown(it.Type)
}
