// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for research-gaps: paper
// records from the search API, segmented sections, and extraction results.
package types

// Section is one heading and the paragraphs that follow it, in document
// order. Heading is empty for content that precedes any detected heading.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content" yaml:"content"`
}

// Sentinel values used when extraction has nothing to report.
const (
	FullTextUnavailable = "Full text not available"
	NoLimitationsFound  = "No explicit limitations section found"
	NoFutureWorkFound   = "No explicit future work section found"
)

// ExtractionResult holds the limitations and future work text extracted
// from one paper. Both fields are always set: either formatted section
// excerpts or one of the sentinel strings above.
type ExtractionResult struct {
	Limitations string `json:"limitations" yaml:"limitations"`
	FutureWork  string `json:"future_work" yaml:"future_work"`
}

// MatchPhase records how a section was attributed to a category.
type MatchPhase string

const (
	// MatchHeading means the section heading matched a category pattern
	// and the whole section was taken.
	MatchHeading MatchPhase = "heading"

	// MatchSentence means individual sentences in the section matched and
	// only those sentences and their neighbours were taken.
	MatchSentence MatchPhase = "sentence"
)
