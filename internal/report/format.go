// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-gaps/pkg/types"
)

// Format selects how reports are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, json, or yaml", s)
	}
}

const separator = "=================================================="

// WriteText renders reports for the console. Abstract, limitations, and
// future work are cut to truncate characters followed by "..."; a negative
// truncate disables cutting.
func WriteText(w io.Writer, reports []PaperReport, truncate int) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No papers with full text found.")
		return
	}

	fmt.Fprintln(w, "\n--- PAPERS WITH EXTRACTED SECTIONS ---")
	for i, r := range reports {
		fmt.Fprintf(w, "\n%s\n", separator)
		fmt.Fprintf(w, "Paper %d:\n", i+1)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "Authors: %s\n", strings.Join(r.Authors, ", "))
		fmt.Fprintf(w, "Published: %s\n", r.Published)

		fmt.Fprintf(w, "\nABSTRACT:\n%s\n", Truncate(r.Abstract, truncate))
		fmt.Fprintf(w, "\nLIMITATIONS:\n%s\n", Truncate(r.Limitations, truncate))
		fmt.Fprintf(w, "\nFUTURE WORK:\n%s\n", Truncate(r.FutureWork, truncate))

		fmt.Fprintf(w, "\nURL: %s\n", r.URL)
	}
}

// WriteResult renders a single extraction result in the given format.
func WriteResult(w io.Writer, r types.ExtractionResult, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	default:
		fmt.Fprintf(w, "LIMITATIONS:\n%s\n\nFUTURE WORK:\n%s\n", r.Limitations, r.FutureWork)
		return nil
	}
}

// Write renders reports in the given format.
func Write(w io.Writer, reports []PaperReport, f Format, truncate int) error {
	switch f {
	case FormatJSON:
		if reports == nil {
			reports = []PaperReport{}
		}
		return writeJSON(w, reports)
	case FormatYAML:
		return writeYAML(w, reports)
	default:
		WriteText(w, reports, truncate)
		return nil
	}
}

// Truncate cuts s to n characters and appends "..." when it was longer.
// Counting is by character, so multi-byte text is never split mid-rune. A
// negative n disables truncation.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
