package sitebook

import (
	"strings"
	"testing"
	"time"
)

func sampleSectionReport() *SectionReport {
	materials := []RawMaterial{
		{Name: "cement", Specs: SpecMap{"grade": "53"}, Qnt: 10, Unit: "bag", Cost: f(350), CreatedAt: at(2025, time.March, 3, 9), MiniSectionID: "ms-1"},
		{Name: "Cement", Specs: SpecMap{"grade": "53"}, Qnt: 5, Unit: "bag", TotalCost: f(1750), CreatedAt: at(2025, time.March, 4, 9), MiniSectionID: "ms-1"},
		{Name: "sand", Qnt: 2, Unit: "ton", TotalCost: f(1600), CreatedAt: at(2025, time.March, 4, 10), MiniSectionID: "ms-1"},
	}
	labor := []RawLabor{
		{Category: "mason", Type: "skilled", Count: 5, PerLaborCost: f(800), CreatedAt: at(2025, time.March, 3, 9), MiniSectionID: "ms-1"},
		{Category: "mason", Type: "skilled", Count: 3, PerLaborCost: f(1000), CreatedAt: at(2025, time.March, 4, 9), MiniSectionID: "ms-1"},
		{Category: "helper", Type: "general", Count: 2, PerLaborCost: f(500), CreatedAt: at(2025, time.March, 4, 9), MiniSectionID: "ms-1"},
	}
	return NewSectionReport("ms-1", "INR", materials, labor)
}

func TestNewSectionReport(t *testing.T) {
	report := sampleSectionReport()

	if report.Reference == "" {
		t.Error("report must carry an export reference")
	}
	if len(report.Materials) != 2 {
		t.Fatalf("got %d material rows, want 2 (cement consolidated)", len(report.Materials))
	}
	if len(report.Labor) != 2 {
		t.Fatalf("got %d labor rows, want 2", len(report.Labor))
	}

	// 3500+1750+1600 materials, 7000+1000 labor.
	if !report.Totals.MaterialTotal.Equal(INR(6850)) {
		t.Errorf("MaterialTotal = %v, want %v", report.Totals.MaterialTotal, INR(6850))
	}
	if !report.Totals.LaborTotal.Equal(INR(8000)) {
		t.Errorf("LaborTotal = %v, want %v", report.Totals.LaborTotal, INR(8000))
	}
	if !report.Totals.GrandTotal.Equal(INR(14850)) {
		t.Errorf("GrandTotal = %v, want %v", report.Totals.GrandTotal, INR(14850))
	}

	if len(report.ByCategory) != 2 || report.ByCategory[0].Category != "mason" {
		t.Errorf("ByCategory = %+v, want mason first", report.ByCategory)
	}
	if !report.ByCategory[0].Total.Equal(INR(7000)) {
		t.Errorf("mason category total = %v, want %v", report.ByCategory[0].Total, INR(7000))
	}
}

func TestNewSectionReport_Empty(t *testing.T) {
	report := NewSectionReport("ms-1", "INR", nil, nil)
	if !report.Totals.GrandTotal.IsZero() {
		t.Errorf("GrandTotal = %v, want zero on an empty snapshot", report.Totals.GrandTotal)
	}
	if len(report.Materials) != 0 || len(report.Labor) != 0 {
		t.Errorf("empty snapshot produced rows: %+v", report)
	}
}

func TestNewTimelineReport(t *testing.T) {
	today := NewDate(2025, time.March, 10)
	entries := NormalizeMaterials([]RawMaterial{
		{Name: "cement", Qnt: 10, TotalCost: f(3500), CreatedAt: at(2025, time.March, 10, 8)},
		{Name: "sand", Qnt: 2, TotalCost: f(800), CreatedAt: at(2025, time.March, 9, 16)},
		{Name: "steel", Qnt: 1, TotalCost: f(4000), CreatedAt: at(2025, time.March, 2, 11)},
	}, "INR")

	report := NewTimelineReport("ms-1", entries, today)
	if len(report.Buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(report.Buckets))
	}
	wantLabels := []string{"Today", "Yesterday", "02 Mar 2025"}
	for i, want := range wantLabels {
		if got := report.Buckets[i].Label(report.Today); got != want {
			t.Errorf("bucket %d label = %q, want %q", i, got, want)
		}
	}
}

func TestSectionReport_MarshalJSON(t *testing.T) {
	report := sampleSectionReport()
	b, err := report.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	for _, want := range []string{`"reference"`, `"materials"`, `"totals"`, `"effectiveUnitCost"`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("report JSON missing %s: %s", want, b)
		}
	}
}
