// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/research-gaps/internal/extract"
	"github.com/pdiddy/research-gaps/pkg/types"
)

// WriteDetail renders an extraction report with every match and the phase
// that found it. Text output is meant for checking why a paper produced the
// result it did.
func WriteDetail(w io.Writer, d extract.Report, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, d)
	case FormatYAML:
		return writeYAML(w, d)
	}

	if !d.HasFullText {
		fmt.Fprintln(w, types.FullTextUnavailable)
		return nil
	}
	writeMatches(w, "LIMITATIONS", d.Limitations)
	fmt.Fprintln(w)
	writeMatches(w, "FUTURE WORK", d.FutureWork)
	return nil
}

func writeMatches(w io.Writer, title string, matches []extract.Match) {
	fmt.Fprintf(w, "%s (%d matches)\n", title, len(matches))
	for i, m := range matches {
		heading := m.Heading
		if heading == "" {
			heading = "(no heading)"
		}
		fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, m.Phase, heading)
		for _, line := range strings.Split(m.Content, "\n") {
			fmt.Fprintf(w, "     %s\n", line)
		}
	}
}

// WriteSections renders segmented sections. The text view is a table of
// headings and content sizes; JSON and YAML carry the full content.
func WriteSections(w io.Writer, sections []types.Section, f Format) error {
	switch f {
	case FormatJSON:
		if sections == nil {
			sections = []types.Section{}
		}
		return writeJSON(w, sections)
	case FormatYAML:
		return writeYAML(w, sections)
	}

	if len(sections) == 0 {
		fmt.Fprintln(w, "No sections found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-60s  %s\n", "#", "Heading", "Chars")
	fmt.Fprintln(w, strings.Repeat("-", 75))
	for i, s := range sections {
		heading := s.Heading
		if heading == "" {
			heading = "(no heading)"
		}
		fmt.Fprintf(w, "%-4d  %-60s  %d\n", i+1, Truncate(heading, 57), len([]rune(s.Content)))
	}
	fmt.Fprintf(w, "\n%d sections\n", len(sections))
	return nil
}
