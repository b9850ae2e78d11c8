package tools

import (
	"strings"
	"testing"
)

func TestCrossReference_DefinedAndReferenced(t *testing.T) {
	result := assembleOrFail(t, `
start:
	b start
`)

	entries := CrossReference(result)

	var found *XRefEntry
	for _, e := range entries {
		if e.Name == "start" {
			found = e
		}
	}
	if found == nil {
		t.Fatal("expected an entry for 'start'")
	}
	if !found.Defined {
		t.Error("expected 'start' to be marked defined")
	}
	if len(found.References) != 1 {
		t.Errorf("expected 1 reference to 'start', got %d", len(found.References))
	}
}

func TestCrossReference_SortedByName(t *testing.T) {
	result := assembleOrFail(t, `
zebra:
	nop
apple:
	nop
`)

	entries := CrossReference(result)
	for i := 1; i < len(entries); i++ {
		if entries[i].Name < entries[i-1].Name {
			t.Error("entries not sorted by name")
		}
	}
}

func TestXRefReport_ContainsSummary(t *testing.T) {
	result := assembleOrFail(t, `
start:
	nop
`)

	report := XRefReport(CrossReference(result))
	if !strings.Contains(report, "Total symbols:") {
		t.Error("expected summary line in report")
	}
	if !strings.Contains(report, "start") {
		t.Error("expected 'start' symbol in report")
	}
}
