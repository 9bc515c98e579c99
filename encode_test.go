package sitebook

import (
	"strings"
	"testing"
)

func TestDecodeMaterials(t *testing.T) {
	payload := `[
	  {"name":"Cement","specs":{"grade":53},"qnt":10,"unit":"bag","cost":350,"createdAt":"2025-03-03T09:00:00Z","miniSectionId":"ms-1"},
	  {"name":"cement","specs":{"grade":"53"},"qnt":5,"unit":"bag","totalCost":1750,"createdAt":"2025-03-04T09:00:00Z","miniSectionId":"ms-1"}
	]`

	records, err := DecodeMaterials(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeMaterials() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// A numeric and a string spec value canonicalize to the same identity key.
	entries := NormalizeMaterials(records, "INR")
	if entries[0].IdentityKey != entries[1].IdentityKey {
		t.Errorf("identity keys differ: %q vs %q", entries[0].IdentityKey, entries[1].IdentityKey)
	}

	// And the pair consolidates into one economically correct row.
	consolidated := Consolidate(entries)
	if len(consolidated) != 1 {
		t.Fatalf("got %d consolidated rows, want 1", len(consolidated))
	}
	if !consolidated[0].TotalCost.Equal(INR(5250)) {
		t.Errorf("TotalCost = %v, want %v", consolidated[0].TotalCost, INR(5250))
	}
}

func TestDecodeLabor(t *testing.T) {
	payload := `[
	  {"category":"Mason","type":"Skilled","count":5,"perLaborCost":800,"workDate":"2025-03-03T00:00:00Z","createdAt":"2025-03-03T18:00:00Z"}
	]`
	records, err := DecodeLabor(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeLabor() failed: %v", err)
	}
	entries := NormalizeLabor(records, "INR")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !entries[0].TotalCost.Equal(INR(4000)) {
		t.Errorf("TotalCost = %v, want %v", entries[0].TotalCost, INR(4000))
	}
	if got := entries[0].Day(); got != NewDate(2025, 3, 3) {
		t.Errorf("Day() = %v, want the work date, not the creation date", got)
	}
}

func TestDecodeAssignments(t *testing.T) {
	payload := `[
	  {"clientId":"c1","clientName":"Acme Estates","projectData":{"_id":"p1","name":"Tower A","location":"Pune"}},
	  {"clientId":"c2"}
	]`
	records, err := DecodeAssignments(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeAssignments() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].ProjectData != nil {
		t.Error("missing projectData should decode as nil")
	}

	projects := ReconcileAssignments(records)
	if len(projects) != 1 || projects[0].Location != "Pune" {
		t.Errorf("reconciled = %+v, want one Pune project", projects)
	}
}

func TestDecodeMaterials_Malformed(t *testing.T) {
	if _, err := DecodeMaterials(strings.NewReader(`{"not":"an array"}`)); err == nil {
		t.Error("DecodeMaterials() expected an error for a non-array payload")
	}
}
