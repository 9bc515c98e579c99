package sitebook

import (
	"strings"
	"time"
)

// NoteSeparator joins the distinct notes of merged entries.
const NoteSeparator = "; "

// ConsolidatedEntry is one summary row per distinct identity key within a
// scope. TotalQuantity and TotalCost are always the arithmetic sums over the
// contributing raw entries; the effective unit cost is derived from them
// (see [ConsolidatedEntry.EffectiveUnitCost]), never stored and merged.
type ConsolidatedEntry struct {
	Kind               Kind
	IdentityKey        string
	Label              string
	Unit               string
	TotalQuantity      Quantity
	TotalCost          Money
	EarliestRecordedAt time.Time
	MergedNotes        string
	ScopeID            string
	Merged             int // number of raw entries folded into this row
}

// EffectiveUnitCost returns the weighted-average unit cost,
// TotalCost / TotalQuantity. A group whose quantities sum to zero yields a
// zero cost, not a division error.
func (c ConsolidatedEntry) EffectiveUnitCost() Money {
	if c.TotalQuantity.IsZero() {
		return c.TotalCost.Mul(Q(0))
	}
	return c.TotalCost.Div(c.TotalQuantity)
}

// Entry converts the consolidated row back into a single ledger entry, e.g.
// to feed a consolidated scope into the timeline bucketing.
func (c ConsolidatedEntry) Entry() LedgerEntry {
	return LedgerEntry{
		Kind:        c.Kind,
		IdentityKey: c.IdentityKey,
		Label:       c.Label,
		Quantity:    c.TotalQuantity,
		Unit:        c.Unit,
		TotalCost:   c.TotalCost,
		RecordedAt:  c.EarliestRecordedAt,
		Note:        c.MergedNotes,
		ScopeID:     c.ScopeID,
	}
}

// MarshalJSON renders the consolidated row with its derived unit cost, in a
// stable field order.
func (c ConsolidatedEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", c.Kind.String())
	w.Append("identityKey", c.IdentityKey)
	w.Append("label", c.Label)
	w.Optional("unit", c.Unit)
	w.Append("totalQuantity", c.TotalQuantity)
	w.Append("totalCost", c.TotalCost)
	w.Append("effectiveUnitCost", c.EffectiveUnitCost())
	w.Append("earliestRecordedAt", c.EarliestRecordedAt.Format(time.RFC3339))
	w.Optional("notes", c.MergedNotes)
	w.Optional("scopeId", c.ScopeID)
	w.Append("merged", c.Merged)
	return w.MarshalJSON()
}

// Consolidate folds entries sharing an identity key into one summary row
// each. Output rows appear in first-occurrence order of their key. The
// caller is expected to pass the entries of a single section or mini-section:
// consolidation never merges across scopes, and feeding it a mixed batch
// would do exactly that.
//
// Quantities and costs are summed exactly; the per-row unit cost is the
// weighted average, so two deliveries of the same material at different
// rates consolidate to the economically correct rate. Notes are merged
// keeping distinct, non-empty values only.
func Consolidate(entries []LedgerEntry) []ConsolidatedEntry {
	consolidated := make([]ConsolidatedEntry, 0, len(entries))
	index := make(map[string]int, len(entries)) // identity key -> position in consolidated
	notes := make(map[string]map[string]bool)   // identity key -> notes already merged

	for _, e := range entries {
		at, ok := index[e.IdentityKey]
		if !ok {
			index[e.IdentityKey] = len(consolidated)
			notes[e.IdentityKey] = map[string]bool{}
			consolidated = append(consolidated, ConsolidatedEntry{
				Kind:               e.Kind,
				IdentityKey:        e.IdentityKey,
				Label:              e.Label,
				Unit:               e.Unit,
				TotalCost:          e.TotalCost.Mul(Q(0)), // zero, in the entry's currency
				EarliestRecordedAt: e.RecordedAt,
			})
			at = index[e.IdentityKey]
		}

		c := &consolidated[at]
		c.TotalQuantity = c.TotalQuantity.Add(e.Quantity)
		c.TotalCost = c.TotalCost.Add(e.TotalCost)
		c.Merged++
		if e.RecordedAt.Before(c.EarliestRecordedAt) {
			c.EarliestRecordedAt = e.RecordedAt
		}
		if c.ScopeID == "" {
			c.ScopeID = e.ScopeID
		}
		if note := strings.TrimSpace(e.Note); note != "" && !notes[e.IdentityKey][note] {
			notes[e.IdentityKey][note] = true
			if c.MergedNotes == "" {
				c.MergedNotes = note
			} else {
				c.MergedNotes += NoteSeparator + note
			}
		}
	}
	return consolidated
}
