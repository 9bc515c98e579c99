package renderer

import "github.com/sitebook/sitebook"

// TimelineView is the renderable form of a timeline report: day groups with
// resolved labels, most recent first.
type TimelineView struct {
	ScopeID string     `json:"scopeId,omitempty"`
	Days    []DayGroup `json:"days"`
}

// DayGroup is one day of the timeline.
type DayGroup struct {
	Label   string        `json:"label"`
	Date    sitebook.Date `json:"date"`
	Entries []TimelineRow `json:"entries"`
}

// TimelineRow is one ledger entry of a day group.
type TimelineRow struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	Total    string `json:"total"`
	Note     string `json:"note,omitempty"`
}

// NewTimelineView creates the renderable view of a timeline report, resolving
// the day labels against the report's injected current date.
func NewTimelineView(r *sitebook.TimelineReport) *TimelineView {
	v := &TimelineView{ScopeID: r.ScopeID, Days: make([]DayGroup, 0, len(r.Buckets))}
	for _, b := range r.Buckets {
		group := DayGroup{
			Label:   b.Label(r.Today),
			Date:    b.Day,
			Entries: make([]TimelineRow, 0, len(b.Entries)),
		}
		for _, e := range b.Entries {
			group.Entries = append(group.Entries, TimelineRow{
				Kind:     e.Kind.String(),
				Label:    e.Label,
				Quantity: e.Quantity.String(),
				Unit:     e.Unit,
				Total:    e.TotalCost.String(),
				Note:     e.Note,
			})
		}
		v.Days = append(v.Days, group)
	}
	return v
}
