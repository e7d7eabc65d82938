// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a paper's raw full text into an ordered sequence of
// sections using blank-line paragraph boundaries and heading heuristics.
//
// Paragraphs are split on blank lines before whitespace is collapsed, so
// the paragraph structure of the input survives normalisation.
package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/research-gaps/pkg/types"
)

// maxHeadingLen is the exclusive upper bound, in characters, on the length
// of a paragraph that can be treated as a heading.
const maxHeadingLen = 100

var (
	// blankLineRe matches a paragraph break: a newline, optional whitespace
	// (including \r and further newlines), and another newline.
	blankLineRe = regexp.MustCompile(`\n\s*\n`)

	// numberedHeadingRe matches "3. Results", "4 Discussion", "2.1 Setup",
	// "3. Étude des limites". Digits and word characters are Unicode
	// classes; RE2's \d and \w are ASCII-only.
	numberedHeadingRe = regexp.MustCompile(`^\p{Nd}+[.\s]+[\p{L}\p{N}_]`)

	// romanHeadingRe matches "IV. Discussion", "II Methods".
	romanHeadingRe = regexp.MustCompile(`^[IVX]+[.\s]+[\p{L}\p{N}_]`)
)

// Split segments fullText into sections in document order. Any input,
// including the empty string, yields a valid (possibly empty) slice.
func Split(fullText string) []types.Section {
	var sections []types.Section
	current := types.Section{}

	for _, p := range Paragraphs(fullText) {
		if IsHeading(p) {
			if current.Content != "" {
				sections = append(sections, current)
			}
			current = types.Section{Heading: p}
			continue
		}

		if current.Content == "" {
			current.Content = p
		} else {
			current.Content += " " + p
		}
	}

	if current.Content != "" {
		sections = append(sections, current)
	}
	return sections
}

// Paragraphs splits fullText on blank lines and collapses every whitespace
// run inside each paragraph to a single space. Empty paragraphs are dropped.
func Paragraphs(fullText string) []string {
	var paragraphs []string
	for _, raw := range blankLineRe.Split(fullText, -1) {
		p := strings.Join(strings.Fields(raw), " ")
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// IsHeading reports whether a normalised paragraph looks like a section
// heading: shorter than 100 characters and either entirely upper-case or
// starting with an arabic or roman section number.
func IsHeading(p string) bool {
	if utf8.RuneCountInString(p) >= maxHeadingLen {
		return false
	}
	return isUpper(p) || numberedHeadingRe.MatchString(p) || romanHeadingRe.MatchString(p)
}

// isUpper reports whether s has at least one cased letter and no lower-case
// or title-case letters. Digits, punctuation, and uncased scripts are ignored.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
