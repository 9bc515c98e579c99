package renderer

import (
	"github.com/sitebook/sitebook"
)

// SectionView is the renderable form of a section report. Amounts are
// pre-formatted so the templates stay free of arithmetic.
type SectionView struct {
	Reference     string        `json:"reference"`
	ScopeID       string        `json:"scopeId,omitempty"`
	Date          sitebook.Date `json:"date"`
	Materials     []EntryRow    `json:"materials"`
	Labor         []EntryRow    `json:"labor"`
	Categories    []CategoryRow `json:"categories"`
	MaterialTotal string        `json:"materialTotal"`
	LaborTotal    string        `json:"laborTotal"`
	GrandTotal    string        `json:"grandTotal"`
}

// EntryRow is one consolidated material or labor row.
type EntryRow struct {
	Label    string `json:"label"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	UnitCost string `json:"unitCost"`
	Total    string `json:"total"`
	Since    string `json:"since"` // earliest recorded day
	Notes    string `json:"notes,omitempty"`
	Merged   int    `json:"merged"`
}

// CategoryRow is one group of the per-category labor breakdown.
type CategoryRow struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Rows     int    `json:"rows"`
}

// NewSectionView creates the renderable view of a section report.
func NewSectionView(r *sitebook.SectionReport) *SectionView {
	v := &SectionView{
		Reference:     r.Reference,
		ScopeID:       r.ScopeID,
		Date:          sitebook.DateOf(r.GeneratedAt),
		Materials:     entryRows(r.Materials),
		Labor:         entryRows(r.Labor),
		Categories:    make([]CategoryRow, 0, len(r.ByCategory)),
		MaterialTotal: r.Totals.MaterialTotal.String(),
		LaborTotal:    r.Totals.LaborTotal.String(),
		GrandTotal:    r.Totals.GrandTotal.String(),
	}
	for _, c := range r.ByCategory {
		v.Categories = append(v.Categories, CategoryRow{
			Category: c.Category,
			Total:    c.Total.String(),
			Rows:     len(c.Entries),
		})
	}
	return v
}

func entryRows(entries []sitebook.ConsolidatedEntry) []EntryRow {
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryRow{
			Label:    e.Label,
			Quantity: e.TotalQuantity.String(),
			Unit:     e.Unit,
			UnitCost: e.EffectiveUnitCost().String(),
			Total:    e.TotalCost.String(),
			Since:    sitebook.DateOf(e.EarliestRecordedAt).String(),
			Notes:    e.MergedNotes,
			Merged:   e.Merged,
		})
	}
	return rows
}
