package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook/sitebook"
	"github.com/sitebook/sitebook/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	materialsFile string
	laborFile     string
	scopeID       string
	currency      string
	asJSON        bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a consolidated section report" }
func (*reportCmd) Usage() string {
	return `sbk report [-m <materials.json>] [-l <labor.json>] [-s <scope>] [-json]

  Consolidates the raw material and labor records of one section or
  mini-section snapshot and displays the deduplicated rows with their
  weighted-average unit costs and the roll-up totals.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.materialsFile, "m", "", "Materials snapshot (JSON array). Empty for none.")
	f.StringVar(&c.laborFile, "l", "", "Labor snapshot (JSON array). Empty for none.")
	f.StringVar(&c.scopeID, "s", "", "Scope (section or mini-section) id for the report title.")
	f.StringVar(&c.currency, "c", defaultCurrency(), "Project currency.")
	f.BoolVar(&c.asJSON, "json", false, "Emit the report document as JSON instead of markdown.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	materials, labor, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := sitebook.NewSectionReport(c.scopeID, c.currency, materials, labor)

	if c.asJSON {
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not marshal report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SectionMarkdown(renderer.NewSectionView(report)))
	return subcommands.ExitSuccess
}

func (c *reportCmd) load() ([]sitebook.RawMaterial, []sitebook.RawLabor, error) {
	var materials []sitebook.RawMaterial
	var labor []sitebook.RawLabor

	if c.materialsFile != "" {
		f, err := open(c.materialsFile)
		if err != nil {
			return nil, nil, err
		}
		materials, err = sitebook.DecodeMaterials(f)
		f.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	if c.laborFile != "" {
		f, err := open(c.laborFile)
		if err != nil {
			return nil, nil, err
		}
		labor, err = sitebook.DecodeLabor(f)
		f.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	return materials, labor, nil
}
