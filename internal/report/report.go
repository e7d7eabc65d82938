// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report runs extraction over search results and renders the
// per-paper reports as text, JSON, or YAML.
package report

import (
	"strings"
	"sync"

	"github.com/pdiddy/research-gaps/internal/extract"
	"github.com/pdiddy/research-gaps/pkg/types"
)

// Placeholders shown for missing paper metadata.
const (
	NoTitle    = "No title"
	NoDate     = "Unknown date"
	NoAbstract = "No abstract available"
	NoURL      = "No URL available"
)

// PaperReport is the display record for one paper: its metadata plus the
// extracted limitations and future work.
type PaperReport struct {
	Title       string   `json:"title" yaml:"title"`
	Authors     []string `json:"authors" yaml:"authors"`
	Published   string   `json:"published" yaml:"published"`
	Abstract    string   `json:"abstract" yaml:"abstract"`
	Limitations string   `json:"limitations" yaml:"limitations"`
	FutureWork  string   `json:"future_work" yaml:"future_work"`
	URL         string   `json:"url" yaml:"url"`
}

// Analyze extracts limitations and future work from up to limit papers that
// carry full text, preserving result order. Papers without full text are
// skipped. A limit of zero or less means every paper with full text; the
// CLI passes display.max_papers, which defaults to 5.
func Analyze(papers []types.Paper, limit int) []PaperReport {
	var selected []types.Paper
	for _, p := range papers {
		if !p.HasFullText() {
			continue
		}
		selected = append(selected, p)
		if limit > 0 && len(selected) == limit {
			break
		}
	}

	reports := make([]PaperReport, len(selected))
	var wg sync.WaitGroup
	for i, p := range selected {
		wg.Add(1)
		go func(i int, p types.Paper) {
			defer wg.Done()
			reports[i] = NewPaperReport(p, extract.Sections(p.FullText))
		}(i, p)
	}
	wg.Wait()

	return reports
}

// NewPaperReport combines paper metadata with an extraction result,
// substituting placeholders for missing metadata.
func NewPaperReport(p types.Paper, r types.ExtractionResult) PaperReport {
	return PaperReport{
		Title:       orDefault(p.Title, NoTitle),
		Authors:     p.AuthorNames(),
		Published:   orDefault(p.PublishedDate, NoDate),
		Abstract:    orDefault(p.Abstract, NoAbstract),
		Limitations: r.Limitations,
		FutureWork:  r.FutureWork,
		URL:         orDefault(p.DownloadURL, NoURL),
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
