// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds "Limitations" and "Future Work" discussion in a
// paper's full text. It first looks for sections whose heading names the
// topic; for a category with no such section it falls back to individual
// sentences that mention it, keeping one sentence of context either side.
//
// Extraction never fails. Empty input and inputs without cues degrade to
// fixed sentinel strings.
package extract

import (
	"fmt"
	"strings"

	"github.com/pdiddy/research-gaps/internal/segment"
	"github.com/pdiddy/research-gaps/pkg/types"
)

// Match is a section attributed to a category, and how it was found. For
// sentence matches Content holds only the matching context windows, one
// per line.
type Match struct {
	types.Section `yaml:",inline"`

	Phase types.MatchPhase `json:"phase" yaml:"phase"`
}

// Report holds the matches for both categories in discovery order.
type Report struct {
	// HasFullText is false when the input was empty and nothing was
	// examined.
	HasFullText bool    `json:"has_full_text" yaml:"has_full_text"`
	Limitations []Match `json:"limitations" yaml:"limitations"`
	FutureWork  []Match `json:"future_work" yaml:"future_work"`
}

// Sections extracts the limitations and future work text from fullText.
func Sections(fullText string) types.ExtractionResult {
	return Detailed(fullText).Result()
}

// Detailed segments fullText and classifies its sections, returning the
// individual matches rather than formatted text.
func Detailed(fullText string) Report {
	if fullText == "" {
		return Report{}
	}

	sections := segment.Split(fullText)
	r := Report{HasFullText: true}

	// A section is claimed by at most one category by heading, and
	// limitations are checked first.
	for _, s := range sections {
		heading := fold(s.Heading)
		switch {
		case limitationSet.matches(heading):
			r.Limitations = append(r.Limitations, Match{Section: s, Phase: types.MatchHeading})
		case futureWorkSet.matches(heading):
			r.FutureWork = append(r.FutureWork, Match{Section: s, Phase: types.MatchHeading})
		}
	}

	if len(r.Limitations) > 0 && len(r.FutureWork) > 0 {
		return r
	}

	cache := newSentenceCache(sections)
	if len(r.Limitations) == 0 {
		r.Limitations = sentenceMatches(sections, cache, limitationSet)
	}
	if len(r.FutureWork) == 0 {
		r.FutureWork = sentenceMatches(sections, cache, futureWorkSet)
	}
	return r
}

// Result formats the report into the two display strings.
func (r Report) Result() types.ExtractionResult {
	if !r.HasFullText {
		return types.ExtractionResult{
			Limitations: types.FullTextUnavailable,
			FutureWork:  types.FullTextUnavailable,
		}
	}
	return types.ExtractionResult{
		Limitations: formatMatches(r.Limitations, types.NoLimitationsFound),
		FutureWork:  formatMatches(r.FutureWork, types.NoFutureWorkFound),
	}
}

// sentenceCache tokenizes each section's content at most once, shared by
// both category fallbacks.
type sentenceCache struct {
	sections []types.Section
	split    [][]string
	done     []bool
}

func newSentenceCache(sections []types.Section) *sentenceCache {
	return &sentenceCache{
		sections: sections,
		split:    make([][]string, len(sections)),
		done:     make([]bool, len(sections)),
	}
}

func (c *sentenceCache) get(i int) []string {
	if !c.done[i] {
		c.split[i] = SplitSentences(c.sections[i].Content)
		c.done[i] = true
	}
	return c.split[i]
}

// sentenceMatches scans every section sentence by sentence. Each matching
// sentence contributes a window of itself and its immediate neighbours,
// clamped to the section; a section with any windows becomes one match.
func sentenceMatches(sections []types.Section, cache *sentenceCache, set patternSet) []Match {
	var matches []Match
	for i, s := range sections {
		sents := cache.get(i)

		var windows []string
		for j, sent := range sents {
			if !set.matches(fold(sent)) {
				continue
			}
			start := max(0, j-1)
			end := min(len(sents), j+2)
			windows = append(windows, strings.Join(sents[start:end], " "))
		}

		if len(windows) > 0 {
			matches = append(matches, Match{
				Section: types.Section{Heading: s.Heading, Content: strings.Join(windows, "\n")},
				Phase:   types.MatchSentence,
			})
		}
	}
	return matches
}

// formatMatches renders matches as "Section: <heading>" blocks separated by
// blank lines, or returns sentinel when there are none.
func formatMatches(matches []Match, sentinel string) string {
	if len(matches) == 0 {
		return sentinel
	}
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "Section: %s\n%s\n\n", m.Heading, m.Content)
	}
	return strings.TrimSpace(b.String())
}
