// Package cmd implements the CLI application to inspect construction ledger
// snapshots: it reads already-fetched raw records from local JSON files and
// prints consolidated reports, timelines, and project lists.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(&projectsCmd{}, "staff")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// LoadEnv loads optional defaults from a .env file. A missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}
}

// defaultCurrency returns the project currency for reports, from the
// SITEBOOK_CURRENCY environment variable.
func defaultCurrency() string {
	if cur := os.Getenv("SITEBOOK_CURRENCY"); cur != "" {
		return cur
	}
	return "INR"
}

// open opens a snapshot file with a friendlier error.
func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, nil
}
