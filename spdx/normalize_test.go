package spdx

import (
	"testing"
)

func TestFlatteningSpreadsCombinators(t *testing.T) {
	tests := []struct {
		source   string
		expected []Entry
	}{
		{
			"MIT",
			[]Entry{{License: "MIT", Context: Required}},
		},
		{
			"MIT AND ISC",
			[]Entry{
				{License: "MIT", Context: Required},
				{License: "ISC", Context: Required},
			},
		},
		{
			"(MIT OR Apache-2.0) AND ISC",
			[]Entry{
				{License: "MIT", Context: Alternative, Group: GroupPath{1}},
				{License: "Apache-2.0", Context: Alternative, Group: GroupPath{1}},
				{License: "ISC", Context: Required},
			},
		},
		{
			"(MIT OR ISC) AND (Apache-2.0 OR BSD-2-Clause)",
			[]Entry{
				{License: "MIT", Context: Alternative, Group: GroupPath{1}},
				{License: "ISC", Context: Alternative, Group: GroupPath{1}},
				{License: "Apache-2.0", Context: Alternative, Group: GroupPath{2}},
				{License: "BSD-2-Clause", Context: Alternative, Group: GroupPath{2}},
			},
		},
		{
			"MIT OR (ISC AND (Apache-2.0 OR BSD-2-Clause))",
			[]Entry{
				{License: "MIT", Context: Alternative, Group: GroupPath{1}},
				{License: "ISC", Context: Alternative, Group: GroupPath{1}},
				{License: "Apache-2.0", Context: Alternative, Group: GroupPath{1, 2}},
				{License: "BSD-2-Clause", Context: Alternative, Group: GroupPath{1, 2}},
			},
		},
		{
			"GPL-2.0-or-later WITH Classpath-exception-2.0",
			[]Entry{
				{License: "GPL-2.0-or-later", Exception: "Classpath-exception-2.0", Context: Required},
			},
		},
		{
			"MIT OR GPL-2.0-only WITH Classpath-exception-2.0",
			[]Entry{
				{License: "MIT", Context: Alternative, Group: GroupPath{1}},
				{License: "GPL-2.0-only", Exception: "Classpath-exception-2.0", Context: Alternative, Group: GroupPath{1}},
			},
		},
		{
			"MIT OR MIT",
			[]Entry{
				{License: "MIT", Context: Alternative, Group: GroupPath{1}},
			},
		},
		{
			"MIT AND MIT AND ISC",
			[]Entry{
				{License: "MIT", Context: Required},
				{License: "ISC", Context: Required},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			entries := Flatten(parsed(t, tt.source))
			if len(entries) != len(tt.expected) {
				t.Fatalf("Flattening %q gave %d entries %v, want %d", tt.source, len(entries), entries, len(tt.expected))
			}
			for at, entry := range entries {
				expected := tt.expected[at]
				same := entry.License == expected.License &&
					entry.Exception == expected.Exception &&
					entry.Context == expected.Context &&
					entry.Group.String() == expected.Group.String()
				if !same {
					t.Errorf("Entry #%d of %q is %+v, want %+v", at, tt.source, entry, expected)
				}
			}
		})
	}
}

func TestFlatteningIsDeterministic(t *testing.T) {
	source := "(MIT OR ISC) AND (Apache-2.0 OR BSD-2-Clause OR Zlib)"
	first := Flatten(parsed(t, source))
	second := Flatten(parsed(t, source))
	if len(first) != len(second) {
		t.Fatalf("Entry counts differ: %d vs. %d", len(first), len(second))
	}
	for at := range first {
		if first[at].String() != second[at].String() || first[at].Group.String() != second[at].Group.String() {
			t.Errorf("Entry #%d differs: %+v vs. %+v", at, first[at], second[at])
		}
	}
}

func TestGroupPaths(t *testing.T) {
	tests := []struct {
		group    GroupPath
		rendered string
	}{
		{nil, ""},
		{GroupPath{1}, "1"},
		{GroupPath{1, 2}, "1.2"},
		{GroupPath{3, 1, 4}, "3.1.4"},
	}

	for _, tt := range tests {
		if tt.group.String() != tt.rendered {
			t.Errorf("Group %v renders as %q, want %q", tt.group, tt.group.String(), tt.rendered)
		}
	}

	outer := GroupPath{1}
	inner := GroupPath{1, 2}
	if !outer.Contains(inner) {
		t.Error("Group 1 should contain group 1.2")
	}
	if inner.Contains(outer) {
		t.Error("Group 1.2 should not contain group 1")
	}
	if !outer.Contains(outer) {
		t.Error("Group 1 should contain itself")
	}
	if outer.Contains(GroupPath{2}) {
		t.Error("Group 1 should not contain group 2")
	}
}
