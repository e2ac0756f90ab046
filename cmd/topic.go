package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonds/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the user manual" }
func (*topicCmd) Usage() string {
	return `bcs topic [-l] [<topic>...]

  Shows topics of the user manual, one after the other. Without a topic
  it shows the readme, that introduces the others. "*" shows them all.

  With -l, lists the topics with their summary.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.Index()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading the manual index: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, t := range topics {
			fmt.Printf("%-10s %s\n", t.Name, t.Summary)
		}
		return subcommands.ExitSuccess
	}

	doc, err := docs.Manual(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
