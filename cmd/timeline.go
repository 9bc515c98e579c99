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

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	report reportCmd
	date   string
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display entries grouped by calendar day" }
func (*timelineCmd) Usage() string {
	return `sbk timeline [-m <materials.json>] [-l <labor.json>] [-s <scope>] [-d <date>]

  Groups the raw records of one snapshot by calendar day, most recent day
  first, labeling the current and previous day "Today" and "Yesterday".
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report.materialsFile, "m", "", "Materials snapshot (JSON array). Empty for none.")
	f.StringVar(&c.report.laborFile, "l", "", "Labor snapshot (JSON array). Empty for none.")
	f.StringVar(&c.report.scopeID, "s", "", "Scope (section or mini-section) id for the timeline title.")
	f.StringVar(&c.date, "d", "", "Current date for the Today/Yesterday labels (defaults to today).")
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := sitebook.Today()
	if c.date != "" {
		var err error
		if today, err = sitebook.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	materials, labor, err := c.report.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	currency := defaultCurrency()
	entries := sitebook.NormalizeMaterials(materials, currency)
	entries = append(entries, sitebook.NormalizeLabor(labor, currency)...)

	report := sitebook.NewTimelineReport(c.report.scopeID, entries, today)
	printMarkdown(renderer.TimelineMarkdown(renderer.NewTimelineView(report)))
	return subcommands.ExitSuccess
}
