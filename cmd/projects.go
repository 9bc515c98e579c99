package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook/sitebook"
	"github.com/sitebook/sitebook/renderer"
)

// projectsCmd holds the flags for the 'projects' subcommand.
type projectsCmd struct {
	assignmentsFile string
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "display a staff member's reconciled project list" }
func (*projectsCmd) Usage() string {
	return `sbk projects -a <assignments.json>

  Merges a staff member's assignment records, possibly spanning several
  client organizations, into one deduplicated project list.
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assignmentsFile, "a", "", "Assignments snapshot (JSON array).")
}

func (c *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.assignmentsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <assignments.json> is required")
		return subcommands.ExitUsageError
	}

	file, err := open(c.assignmentsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	assignments, err := sitebook.DecodeAssignments(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	projects := sitebook.ReconcileAssignments(assignments)
	printMarkdown(renderer.ProjectsMarkdown(renderer.NewProjectsView(projects)))
	return subcommands.ExitSuccess
}
