package sitebook

// Rollup holds the consolidated cost totals of a project, section, or
// mini-section scope.
type Rollup struct {
	MaterialTotal Money
	LaborTotal    Money
	GrandTotal    Money
}

// MarshalJSON renders the totals in a stable field order.
func (r Rollup) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("materialTotal", r.MaterialTotal)
	w.Append("laborTotal", r.LaborTotal)
	w.Append("grandTotal", r.GrandTotal)
	return w.MarshalJSON()
}

// Totalize sums consolidated material and labor costs into the scope's grand
// total. It must be fed consolidated entries, never raw ones, so duplicate
// raw rows cannot inflate a total twice. Empty inputs yield exact zeros.
func Totalize(materials, labor []ConsolidatedEntry) Rollup {
	materialTotal := sumCosts(materials)
	laborTotal := sumCosts(labor)
	return Rollup{
		MaterialTotal: materialTotal,
		LaborTotal:    laborTotal,
		GrandTotal:    materialTotal.Add(laborTotal),
	}
}

func sumCosts(entries []ConsolidatedEntry) Money {
	var total Money // zero value carries the weak "" currency
	for _, e := range entries {
		total = total.Add(e.TotalCost)
	}
	return total
}

// CategoryBreakdown is one group of a per-category cost breakdown, as needed
// by the report exporter.
type CategoryBreakdown struct {
	Category string
	Total    Money
	Entries  []ConsolidatedEntry
}

// MarshalJSON renders the group in a stable field order.
func (b CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", b.Category)
	w.Append("total", b.Total)
	w.Append("entries", b.Entries)
	return w.MarshalJSON()
}

// BreakdownBy regroups consolidated entries by a caller-supplied category
// function, in first-occurrence order, summing each group's cost.
func BreakdownBy(entries []ConsolidatedEntry, category func(ConsolidatedEntry) string) []CategoryBreakdown {
	breakdown := make([]CategoryBreakdown, 0)
	index := make(map[string]int)

	for _, e := range entries {
		c := category(e)
		at, ok := index[c]
		if !ok {
			index[c] = len(breakdown)
			breakdown = append(breakdown, CategoryBreakdown{Category: c})
			at = index[c]
		}
		breakdown[at].Total = breakdown[at].Total.Add(e.TotalCost)
		breakdown[at].Entries = append(breakdown[at].Entries, e)
	}
	return breakdown
}
