package sitebook

// UnknownClient is the display name attached to a reconciled project whose
// assignment carried no client name.
const UnknownClient = "Unknown Client"

// Project is the subset of project fields the tracker screens consume.
type Project struct {
	ID       string `json:"_id"`
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Assignment is one (staff, client, project) relationship as returned by the
// staff fetch API. A staff member assigned across several client
// organizations receives one Assignment per relationship; ProjectData is a
// pointer because the backend may return assignments whose project could not
// be resolved.
type Assignment struct {
	ClientID    string   `json:"clientId"`
	ClientName  string   `json:"clientName,omitempty"`
	ProjectData *Project `json:"projectData,omitempty"`
}

// ReconciledProject is one element of the deduplicated project list, a copy
// of the project data carrying the client it was derived from.
type ReconciledProject struct {
	Project
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
}

// MarshalJSON renders the project with its fields first and the client it
// was derived from last.
func (p ReconciledProject) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.Project)
	w.Append("clientId", p.ClientID)
	w.Append("clientName", p.ClientName)
	return w.MarshalJSON()
}

// ReconcileAssignments merges a staff member's assignment records, possibly
// spanning multiple clients, into one deduplicated project list.
//
// Assignments without resolvable project data are dropped with a diagnostic,
// never an error. Projects are deduplicated by id: when the same project
// appears under more than one assignment the last occurrence wins, at the
// position of the first occurrence. This last-write-wins rule is the
// documented policy for ambiguous assignments, not an accident of iteration
// order.
func ReconcileAssignments(assignments []Assignment) []ReconciledProject {
	projects := make([]ReconciledProject, 0, len(assignments))
	index := make(map[string]int, len(assignments)) // project id -> position

	for i, a := range assignments {
		if a.ProjectData == nil || a.ProjectData.ID == "" {
			logger.Warn().Int("index", i).Str("client", a.ClientID).Msg("skipping assignment without resolvable project data")
			continue
		}

		name := a.ClientName
		if name == "" {
			name = UnknownClient
		}
		reconciled := ReconciledProject{
			Project:    *a.ProjectData, // shallow copy, inputs stay untouched
			ClientID:   a.ClientID,
			ClientName: name,
		}

		if at, ok := index[a.ProjectData.ID]; ok {
			logger.Warn().Str("project", a.ProjectData.ID).Str("client", a.ClientID).Msg("duplicate project across assignments, keeping the later record")
			projects[at] = reconciled
			continue
		}
		index[a.ProjectData.ID] = len(projects)
		projects = append(projects, reconciled)
	}
	return projects
}
