package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// newTable returns a markdown table writing to w.
func newTable(w io.Writer, header ...string) *tablewriter.Table {
	alignment := make([]tw.Align, len(header))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(header)
	return table
}

// payloadString renders the typed value of a term.
func payloadString(t *rdf.Term) string {
	switch p := t.Payload().(type) {
	case rdf.Number:
		return strconv.FormatFloat(float64(p), 'g', -1, 64)
	case rdf.Temporal:
		ts := time.Unix(p.Seconds, 0).UTC().Format("2006-01-02T15:04:05")
		if p.HasTimezone {
			return ts + " (tz)"
		}
		return ts
	}
	return "-"
}

func relation(c int) string {
	switch {
	case c < 0:
		return color.CyanString("<")
	case c > 0:
		return color.MagentaString(">")
	}
	return color.GreenString("=")
}

func yesNo(b bool) string {
	if b {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

func hashString(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
