package sitebook

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SectionReport is the consolidated view model of one scope (a section or
// mini-section): deduplicated material and labor rows, the per-category
// labor breakdown, and the roll-up totals. It is a pure, recomputed
// derivation of one raw snapshot; screens and the report exporter consume it
// and discard it on the next fetch.
type SectionReport struct {
	Reference   string // export reference, unique per generated report
	ScopeID     string
	Currency    string
	GeneratedAt time.Time
	Materials   []ConsolidatedEntry
	Labor       []ConsolidatedEntry
	ByCategory  []CategoryBreakdown
	Totals      Rollup
}

// NewSectionReport runs the full pipeline over one scope's raw snapshot:
// normalize, consolidate, break labor down by category, and totalize.
// Malformed records are skipped with a diagnostic; an empty snapshot yields
// a report with zero totals.
func NewSectionReport(scopeID, currency string, materials []RawMaterial, labor []RawLabor) *SectionReport {
	consolidatedMaterials := Consolidate(NormalizeMaterials(materials, currency))
	consolidatedLabor := Consolidate(NormalizeLabor(labor, currency))

	return &SectionReport{
		Reference:   uuid.NewString(),
		ScopeID:     scopeID,
		Currency:    currency,
		GeneratedAt: time.Now(),
		Materials:   consolidatedMaterials,
		Labor:       consolidatedLabor,
		ByCategory:  BreakdownBy(consolidatedLabor, LaborCategory),
		Totals:      Totalize(consolidatedMaterials, consolidatedLabor),
	}
}

// LaborCategory extracts the labor category from a consolidated labor row,
// for use with [BreakdownBy]. Material rows fall into a single "material"
// group.
func LaborCategory(c ConsolidatedEntry) string {
	if c.Kind != Labor {
		return Material.String()
	}
	category, _, _ := strings.Cut(c.Label, " / ")
	return category
}

// MarshalJSON renders the report document in a stable field order, as
// consumed by the report exporter.
func (r *SectionReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("reference", r.Reference)
	w.Optional("scopeId", r.ScopeID)
	w.Append("currency", r.Currency)
	w.Append("generatedAt", r.GeneratedAt.Format(time.RFC3339))
	w.Append("materials", r.Materials)
	w.Append("labor", r.Labor)
	w.Append("byCategory", r.ByCategory)
	w.Append("totals", r.Totals)
	return w.MarshalJSON()
}

// TimelineReport is the grouped timeline view model of one scope: ledger
// entries bucketed by calendar day, most recent first, with labels resolved
// against an injected current date.
type TimelineReport struct {
	ScopeID string
	Today   Date
	Buckets []DateBucket[LedgerEntry]
}

// NewTimelineReport buckets the given entries by calendar day. The entries
// may be raw normalizations or consolidated rows re-fed through
// [ConsolidatedEntry.Entry]; within a day they keep the supplied order.
func NewTimelineReport(scopeID string, entries []LedgerEntry, today Date) *TimelineReport {
	return &TimelineReport{
		ScopeID: scopeID,
		Today:   today,
		Buckets: BucketByDate(entries, LedgerEntry.Day),
	}
}
