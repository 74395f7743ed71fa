package spdx_test

import (
	"testing"

	"github.com/joshyorko/sbomlic/hamlet"
	"github.com/joshyorko/sbomlic/spdx"
)

func TestAnalyzeAcceptsValidExpressions(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := spdx.Analyze("(MIT OR Apache-2.0) AND ISC")
	wont_be.Nil(sut)
	must_be.True(sut.Parsed)
	must_be.Nil(sut.Failure)
	must_be.Equal(3, len(sut.Entries))
	must_be.Text("MIT", sut.Entries[0])
	must_be.Text("Apache-2.0", sut.Entries[1])
	must_be.Text("ISC", sut.Entries[2])
	must_be.Equal("MIT; Apache-2.0; ISC", sut.Canonical())
}

func TestAnalyzeDegradesBrokenExpressions(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := spdx.Analyze("MIT AND")
	must_be.True(!sut.Parsed)
	wont_be.Nil(sut.Failure)
	must_be.Equal(1, len(sut.Entries))
	must_be.Equal("MIT AND", sut.Entries[0].License)
	must_be.Equal(spdx.Required, sut.Entries[0].Context)
	must_be.Equal("MIT AND", sut.Canonical())
}

func TestAnalyzeDegradesEmptyExpressions(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	for _, raw := range []string{"", "   ", "\t"} {
		sut := spdx.Analyze(raw)
		must_be.True(!sut.Parsed)
		wont_be.Nil(sut.Failure)
		must_be.Equal(1, len(sut.Entries))
		must_be.Equal(spdx.NoAssertion, sut.Entries[0].License)
	}
}

func TestAnalyzeKeepsExceptionInEntry(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := spdx.Analyze("GPL-2.0-or-later WITH Classpath-exception-2.0")
	must_be.True(sut.Parsed)
	must_be.Equal(1, len(sut.Entries))
	must_be.Equal("GPL-2.0-or-later", sut.Entries[0].License)
	must_be.Equal("Classpath-exception-2.0", sut.Entries[0].Exception)
	must_be.Text("GPL-2.0-or-later WITH Classpath-exception-2.0", sut.Entries[0])
}
