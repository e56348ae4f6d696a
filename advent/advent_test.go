package main

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestNameLess(t *testing.T) {
	names := []string{"10a", "3b", "25", "3a", "1b", "10", "1a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1a", "1b", "3a", "3b", "10", "10a", "25"}
	if diff := pretty.Diff(names, want); len(diff) > 0 {
		t.Errorf("sorted names differ:\n%s", strings.Join(diff, "\n"))
	}
}

func TestSplitName(t *testing.T) {
	for _, tt := range []struct {
		name string
		day  int
		part string
	}{
		{"3a", 3, "a"},
		{"3b", 3, "b"},
		{"25", 25, ""},
	} {
		day, part := splitName(tt.name)
		if day != tt.day || part != tt.part {
			t.Errorf("splitName(%q): got (%d, %q); want (%d, %q)", tt.name, day, part, tt.day, tt.part)
		}
	}
}

func TestRegister(t *testing.T) {
	if got := solutionNames(); !sort.SliceIsSorted(got, func(i, j int) bool { return nameLess(got[i], got[j]) }) {
		t.Errorf("solutionNames not sorted: %q", got)
	}
	sol, ok := solutions["3b"]
	if !ok {
		t.Fatal("3b not registered")
	}
	if sol.day != 3 {
		t.Errorf("3b registered for day %d", sol.day)
	}

	for _, name := range []string{"3a", "nonumber"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("register(%q) did not panic", name)
				}
			}()
			register(name, day3a)
		}()
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()
	for _, s := range []string{"3a\n3b\n", "-config", "-fgprof"} {
		if !strings.Contains(out, s) {
			t.Errorf("usage is missing %q:\n%s", s, out)
		}
	}
}
