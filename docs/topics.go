// Package docs embeds the bcs user manual. readme.md is the index: every
// "* <name>: <summary>" entry names a topic stored in <name>.md.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the topic listing all the others.
const Readme = "readme"

// All stands for every topic of the index.
const All = "*"

// Topic is an entry of the manual index.
type Topic struct {
	Name    string
	Summary string
}

var entry = regexp.MustCompile(`^\*\s+([a-z0-9-]+):\s*(.*)$`)

// Index returns the topics listed in the readme, in reading order.
func Index() ([]Topic, error) {
	readme, err := files.ReadFile(Readme + ".md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(strings.NewReader(string(readme)))
	for scanner.Scan() {
		if m := entry.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: m[1], Summary: strings.TrimSpace(m[2])})
		}
	}
	return topics, scanner.Err()
}

// Names returns the names of the indexed topics.
func Names() ([]string, error) {
	topics, err := Index()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names, nil
}

// Read returns the content of a topic.
func Read(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		names, _ := Names()
		return "", fmt.Errorf("unknown topic %q, available topics are: %s", name, strings.Join(names, ", "))
	}
	return string(content), nil
}

// Manual returns the given topics one after the other. All expands to every
// indexed topic, and no name at all gives the readme.
func Manual(names ...string) (string, error) {
	if len(names) == 0 {
		names = []string{Readme}
	}
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == All {
			var err error
			if expanded, err = Names(); err != nil {
				return "", err
			}
		}
		for _, n := range expanded {
			content, err := Read(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
