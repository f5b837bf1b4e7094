package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/eringen/tokenpage/linkres"
	"github.com/eringen/tokenpage/views"
)

func runLinks(args []string, out io.Writer) error {
	c, err := loadCharacter("links", args)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, spec := range views.Links(c) {
		link := linkres.Resolve(spec.Raw)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", spec.Label, link.State(), link.Target)
	}
	return tw.Flush()
}
