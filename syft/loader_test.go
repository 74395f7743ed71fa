package syft_test

import (
	"strings"
	"testing"

	"github.com/joshyorko/sbomlic/hamlet"
	"github.com/joshyorko/sbomlic/syft"
)

const minimalDocument = `{
	"artifacts": [
		{
			"name": "left-pad",
			"version": "1.3.0",
			"type": "npm",
			"licenses": ["WTFPL"]
		},
		{
			"name": "spring-core",
			"version": "5.3.0",
			"type": "java-archive",
			"licenses": [
				{"value": "Apache License 2.0", "spdxExpression": "Apache-2.0", "type": "declared"},
				{"value": "  ", "spdxExpression": ""},
				{"value": "EPL-1.0"}
			],
			"unknownField": {"ignored": true}
		},
		{
			"name": "mystery"
		}
	],
	"descriptor": {"name": "syft", "version": "1.0.0"}
}`

func TestLoadReadsArtifacts(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := syft.Load(strings.NewReader(minimalDocument))
	must_be.Nil(err)
	wont_be.Nil(sut)
	must_be.Equal(3, len(sut.Artifacts))
	must_be.Equal("syft", sut.Descriptor.Name)
}

func TestStringAndObjectLicensesBothWork(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := syft.Load(strings.NewReader(minimalDocument))
	must_be.Nil(err)

	must_be.Equal([]string{"WTFPL"}, sut.Artifacts[0].RawLicenses())
	must_be.Equal([]string{"Apache-2.0", "EPL-1.0"}, sut.Artifacts[1].RawLicenses())
	must_be.Equal([]string{}, sut.Artifacts[2].RawLicenses())
}

func TestSpdxExpressionWinsOverValue(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	license := syft.License{Value: "Apache License 2.0", SPDXExpression: "Apache-2.0"}
	must_be.Equal("Apache-2.0", license.Raw())

	license = syft.License{Value: "Apache License 2.0"}
	must_be.Equal("Apache License 2.0", license.Raw())

	license = syft.License{SPDXExpression: "   "}
	must_be.Equal("", license.Raw())
}

func TestDisplayFieldsFillBlanks(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := syft.Artifact{}
	must_be.Equal("Unknown", sut.DisplayName())
	must_be.Equal("Unknown", sut.DisplayVersion())
	must_be.Equal("Unknown", sut.DisplayType())

	sut = syft.Artifact{Name: "left-pad", Version: "1.3.0", Type: "npm"}
	must_be.Equal("left-pad", sut.DisplayName())
	must_be.Equal("1.3.0", sut.DisplayVersion())
	must_be.Equal("npm", sut.DisplayType())
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken json", `{"artifacts": [`},
		{"missing artifacts", `{"descriptor": {"name": "syft"}}`},
		{"wrong shape", `["not", "a", "document"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := syft.Load(strings.NewReader(tt.content))
			if err == nil {
				t.Errorf("Loading %q did not fail", tt.content)
			}
		})
	}
}
