// Package renderer turns the engine's view models into markdown documents
// for the tracker screens and the report exporter.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// SectionMarkdown renders a section report to a markdown string.
func SectionMarkdown(v *SectionView) string {
	partials := map[string]string{
		"section_materials": "section_materials.md",
		"section_labor":     "section_labor.md",
		"section_totals":    "section_totals.md",
	}
	return renderTemplate("section", "section.md", partials, v)
}

// TimelineMarkdown renders a timeline report to a markdown string.
func TimelineMarkdown(v *TimelineView) string {
	return renderTemplate("timeline", "timeline.md", nil, v)
}

// ProjectsMarkdown renders a reconciled project list to a markdown string.
func ProjectsMarkdown(v *ProjectsView) string {
	return renderTemplate("projects", "projects.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
