package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/onboarding"
)

var (
	primaryColor = color.New(color.FgGreen, color.Bold)
	barColor     = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)

	confidenceColors = map[icp.Confidence]*color.Color{
		icp.ConfidenceHigh:   color.New(color.FgGreen, color.Bold),
		icp.ConfidenceMedium: color.New(color.FgYellow, color.Bold),
		icp.ConfidenceLow:    color.New(color.FgRed, color.Bold),
	}
)

// printJSON marshals v to indented JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter creates a tabwriter with standard settings for table output.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderResult prints the primary profile followed by one bar per category
// in canonical order. The primary category's bar is highlighted.
func renderResult(w io.Writer, evaluationID string, res icp.Result) {
	conf := string(res.Confidence)
	if cc, ok := confidenceColors[res.Confidence]; ok {
		conf = cc.Sprint(res.Confidence)
	}
	fmt.Fprintf(w, "%s %s (%s)  confidence: %s\n",
		"Primary:", primaryColor.Sprint(res.Primary.DisplayName()), res.Primary, conf)
	if evaluationID != "" {
		fmt.Fprintf(w, "Evaluation: %s\n", evaluationID)
	}
	fmt.Fprintln(w)

	tw := newTabWriter(w)
	for _, c := range icp.Categories() {
		score := res.Scores[c]
		bar := strings.Repeat("█", score)
		marker := ""
		if c == res.Primary {
			bar = primaryColor.Sprint(bar)
			marker = " ◀"
		} else {
			bar = barColor.Sprint(bar)
		}
		fmt.Fprintf(tw, "  %s\t%2d\t%s%s\n", c, score, bar, marker)
	}
	tw.Flush()
}

// renderDrift warns about answer labels that fell back to defaults.
func renderDrift(w io.Writer, drift []onboarding.Drift) {
	for _, d := range drift {
		warnColor.Fprintf(w, "warning: unrecognized %s label %q, using default\n", d.Dimension, d.Label)
	}
}
