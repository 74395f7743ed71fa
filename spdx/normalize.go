package spdx

import (
	"strconv"
	"strings"
)

// Context tells whether a flattened license entry is unconditionally
// required or one of several alternatives.
type Context string

const (
	Required    Context = "required"
	Alternative Context = "alternative"
)

// GroupPath locates an entry inside nested OR alternative groups,
// root first. Entries sharing a prefix came from the same OR node.
type GroupPath []int

func (it GroupPath) String() string {
	if len(it) == 0 {
		return ""
	}
	parts := make([]string, 0, len(it))
	for _, step := range it {
		parts = append(parts, strconv.Itoa(step))
	}
	return strings.Join(parts, ".")
}

// Contains tells if other is inside this group (or is this group).
func (it GroupPath) Contains(other GroupPath) bool {
	if len(other) < len(it) {
		return false
	}
	for at, step := range it {
		if other[at] != step {
			return false
		}
	}
	return true
}

// Entry is one effective license from a flattened expression.
type Entry struct {
	License   string
	Exception string
	Context   Context
	Group     GroupPath
}

type flattener struct {
	sequence int
	result   []Entry
}

// Flatten walks a well-formed expression tree depth first and gives
// its ordered effective license entries. Every OR node gets a fresh
// group number, composed onto the enclosing group's path, and every
// entry below it is an alternative within that group. Duplicate
// entries keep their first position. Deterministic over equal trees,
// and never fails.
func Flatten(root Expr) []Entry {
	it := &flattener{result: make([]Entry, 0, 4)}
	it.walk(root, nil, "")
	return it.deduplicate()
}

func (it *flattener) walk(node Expr, group GroupPath, exception string) {
	switch focus := node.(type) {
	case *License:
		context := Required
		if len(group) > 0 {
			context = Alternative
		}
		it.result = append(it.result, Entry{
			License:   focus.ID,
			Exception: exception,
			Context:   context,
			Group:     group,
		})
	case *WithException:
		it.walk(focus.License, group, focus.Exception)
	case *And:
		it.walk(focus.Left, group, exception)
		it.walk(focus.Right, group, exception)
	case *Or:
		it.sequence += 1
		inner := make(GroupPath, len(group), len(group)+1)
		copy(inner, group)
		inner = append(inner, it.sequence)
		it.walk(focus.Left, inner, exception)
		it.walk(focus.Right, inner, exception)
	}
}

func (it *flattener) deduplicate() []Entry {
	seen := make(map[string]bool, len(it.result))
	kept := make([]Entry, 0, len(it.result))
	for _, entry := range it.result {
		key := entry.License + "\x00" + entry.Exception + "\x00" + entry.Group.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, entry)
	}
	return kept
}
