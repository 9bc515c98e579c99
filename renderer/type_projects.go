package renderer

import "github.com/sitebook/sitebook"

// ProjectsView is the renderable form of a staff member's reconciled project
// list.
type ProjectsView struct {
	Projects []ProjectRow `json:"projects"`
}

// ProjectRow is one deduplicated project with the client it was derived from.
type ProjectRow struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
	Client   string `json:"client"`
}

// NewProjectsView creates the renderable view of a reconciled project list.
func NewProjectsView(projects []sitebook.ReconciledProject) *ProjectsView {
	v := &ProjectsView{Projects: make([]ProjectRow, 0, len(projects))}
	for _, p := range projects {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		v.Projects = append(v.Projects, ProjectRow{
			Name:     name,
			Location: p.Location,
			Status:   p.Status,
			Client:   p.ClientName,
		})
	}
	return v
}
