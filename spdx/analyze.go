package spdx

import (
	"errors"
	"strings"
)

// NoAssertion stands in for license fields that carry no information.
const NoAssertion = "NOASSERTION"

// Analysis is the outcome of processing one raw license field. A
// failed parse still yields entries: the degraded fallback keeps the
// raw text as a single unclassified license so reporting can go on,
// and Failure tells the caller what went wrong and where.
type Analysis struct {
	Raw     string
	Parsed  bool
	Entries []Entry
	Failure error
}

// Canonical gives the normalized rendering for a parsed expression,
// and the degraded fallback license for a failed one.
func (it *Analysis) Canonical() string {
	if len(it.Entries) == 0 {
		return NoAssertion
	}
	if !it.Parsed {
		return it.Entries[0].License
	}
	parts := make([]string, 0, len(it.Entries))
	for _, entry := range it.Entries {
		parts = append(parts, entry.String())
	}
	return strings.Join(parts, "; ")
}

func (it Entry) String() string {
	if len(it.Exception) > 0 {
		return it.License + " WITH " + it.Exception
	}
	return it.License
}

// Analyze runs the tokenizer, parser and flattener over one raw
// license field. It never fails: errors degrade per field policy,
// empty input to NOASSERTION and unparseable input to the literal
// raw text. One bad field never stops the batch.
func Analyze(raw string) *Analysis {
	result := &Analysis{Raw: raw}
	root, err := Parse(raw)
	if err == nil {
		result.Parsed = true
		result.Entries = Flatten(root)
		return result
	}
	result.Failure = err
	fallback := strings.TrimSpace(raw)
	if errors.Is(err, ErrEmptyExpression) || len(fallback) == 0 {
		fallback = NoAssertion
	}
	result.Entries = []Entry{{License: fallback, Context: Required}}
	return result
}
