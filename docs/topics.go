// Package docs holds the embedded help pages served by the topic subcommand.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the content of one help topic. The special name "*" expands
// to every topic in alphabetical order.
func Topic(name string) (string, error) {
	if name == "*" {
		all, err := List()
		if err != nil {
			return "", err
		}
		return Topics(all...)
	}
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no help topic %q: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the requested topics into one document.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// List returns the available topic names, sorted. The readme is the landing
// page, not a topic, and is excluded.
func List() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
