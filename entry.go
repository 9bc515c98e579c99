package sitebook

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Kind discriminates material entries from labor entries.
type Kind int

const (
	Material Kind = iota
	Labor
)

func (k Kind) String() string {
	switch k {
	case Material:
		return "material"
	case Labor:
		return "labor"
	default:
		return "unknown"
	}
}

// RawMaterial is one material record as returned by the project fetch API.
//
// Cost and TotalCost are pointers because the backend historically recorded
// either one: the normalizer resolves them once, at the boundary, instead of
// scattering fallbacks through every consumer.
type RawMaterial struct {
	Name          string     `json:"name"`
	Specs         SpecMap    `json:"specs,omitempty"`
	Qnt           float64    `json:"qnt"`
	Unit          string     `json:"unit,omitempty"`
	Cost          *float64   `json:"cost,omitempty"` // per-unit cost
	TotalCost     *float64   `json:"totalCost,omitempty"`
	Note          string     `json:"note,omitempty"`
	AddedAt       *time.Time `json:"addedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	MiniSectionID string     `json:"miniSectionId,omitempty"`
}

// RawLabor is one labor deployment record as returned by the labor fetch API.
type RawLabor struct {
	Category      string     `json:"category"`
	Type          string     `json:"type"`
	Count         float64    `json:"count"`
	PerLaborCost  *float64   `json:"perLaborCost,omitempty"`
	TotalCost     *float64   `json:"totalCost,omitempty"`
	Note          string     `json:"note,omitempty"`
	WorkDate      *time.Time `json:"workDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	MiniSectionID string     `json:"miniSectionId,omitempty"`
}

// LedgerEntry is the uniform shape all raw records are normalized into
// before consolidation or bucketing.
//
// TotalCost is always defined: it falls back to quantity times unit cost
// when the record carried no total, and to zero when it carried neither.
// The per-entry unit cost exposed downstream is always derived from the
// total (see [LedgerEntry.UnitCost]), never trusted from the record, so
// totals cannot drift.
type LedgerEntry struct {
	Kind        Kind
	IdentityKey string
	Label       string // display name: material name, or "category / type" for labor
	Quantity    Quantity
	Unit        string // empty for labor, whose unit is a headcount
	TotalCost   Money
	RecordedAt  time.Time
	Note        string
	ScopeID     string // mini-section or section this entry belongs to
}

// UnitCost returns the entry's cost per unit (or per laborer), derived from
// the total. A zero quantity yields a zero cost, not a division error.
func (e LedgerEntry) UnitCost() Money {
	if e.Quantity.IsZero() {
		return e.TotalCost.Mul(Q(0))
	}
	return e.TotalCost.Div(e.Quantity)
}

// Day returns the local calendar day the entry was recorded on.
func (e LedgerEntry) Day() Date { return DateOf(e.RecordedAt) }

// MaterialIdentityKey builds the identity key for a material: the lowercased
// name joined with a canonical (key-sorted) JSON rendering of the spec map.
// Two entries are the same material only if both the name and every spec
// field match exactly.
func MaterialIdentityKey(name string, specs map[string]string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(name)))
	b.WriteByte('|')
	if len(specs) == 0 {
		b.WriteString("{}")
		return b.String()
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(specs[k])
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.String()
}

// LaborIdentityKey builds the identity key for a labor entry: the lowercased
// category and type pair.
func LaborIdentityKey(category, laborType string) string {
	return strings.ToLower(strings.TrimSpace(category)) + "|" + strings.ToLower(strings.TrimSpace(laborType))
}

// NormalizeMaterials converts raw material records into ledger entries,
// preserving input order. Records missing a name are skipped with a
// diagnostic; nothing is deduplicated here, that is [Consolidate]'s job.
// Costs are denominated in the given project currency.
func NormalizeMaterials(raws []RawMaterial, currency string) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(raws))
	for i, raw := range raws {
		if strings.TrimSpace(raw.Name) == "" {
			logger.Warn().Int("index", i).Str("scope", raw.MiniSectionID).Msg("skipping material record without a name")
			continue
		}
		qnt := Q(raw.Qnt)
		entries = append(entries, LedgerEntry{
			Kind:        Material,
			IdentityKey: MaterialIdentityKey(raw.Name, raw.Specs),
			Label:       strings.TrimSpace(raw.Name),
			Quantity:    qnt,
			Unit:        raw.Unit,
			TotalCost:   resolveTotalCost(raw.TotalCost, raw.Cost, qnt, currency),
			RecordedAt:  firstKnown(raw.AddedAt, raw.CreatedAt),
			Note:        strings.TrimSpace(raw.Note),
			ScopeID:     raw.MiniSectionID,
		})
	}
	return entries
}

// NormalizeLabor converts raw labor records into ledger entries, preserving
// input order. Records missing the category or type are skipped with a
// diagnostic.
func NormalizeLabor(raws []RawLabor, currency string) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(raws))
	for i, raw := range raws {
		if strings.TrimSpace(raw.Category) == "" || strings.TrimSpace(raw.Type) == "" {
			logger.Warn().Int("index", i).Str("scope", raw.MiniSectionID).Msg("skipping labor record without category/type")
			continue
		}
		count := Q(raw.Count)
		entries = append(entries, LedgerEntry{
			Kind:        Labor,
			IdentityKey: LaborIdentityKey(raw.Category, raw.Type),
			Label:       strings.TrimSpace(raw.Category) + " / " + strings.TrimSpace(raw.Type),
			Quantity:    count,
			TotalCost:   resolveTotalCost(raw.TotalCost, raw.PerLaborCost, count, currency),
			RecordedAt:  firstKnown(raw.WorkDate, raw.CreatedAt),
			Note:        strings.TrimSpace(raw.Note),
			ScopeID:     raw.MiniSectionID,
		})
	}
	return entries
}

// resolveTotalCost applies the boundary fallback chain: the recorded total
// when present, otherwise quantity times the recorded unit cost, otherwise
// zero. It never fails.
func resolveTotalCost(total, unit *float64, quantity Quantity, currency string) Money {
	if total != nil {
		return M(*total, currency)
	}
	if unit != nil {
		return M(*unit, currency).Mul(quantity)
	}
	return M(0, currency)
}

// firstKnown picks the record's first-known timestamp: the explicit one when
// set, the creation time otherwise.
func firstKnown(explicit *time.Time, created time.Time) time.Time {
	if explicit != nil && !explicit.IsZero() {
		return *explicit
	}
	return created
}
