// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LimitationPatterns are the regular expressions that mark text as
// discussing limitations. They are matched against lower-cased text.
var LimitationPatterns = []string{
	`\b(?:limitation|shortcoming|drawback|weakness|constraint)s?\b`,
	`\bcurrent\s+(?:limitation|constraint|shortcoming)s?\b`,
	`\b(?:limitation|shortcoming|drawback|weakness|constraint)s?\s+of\s+(?:the|this|our)\s+(?:study|approach|method|work|research|analysis|model|system|framework)\b`,
}

// FutureWorkPatterns are the regular expressions that mark text as
// discussing future work. They are matched against lower-cased text.
var FutureWorkPatterns = []string{
	`\bfuture\s+(?:work|research|direction|study|investigation|exploration|development|improvement|enhancement)\b`,
	`\bfurther\s+(?:work|research|study|investigation|development|improvement)\b`,
	`\bfuture\s+(?:scope|perspective|outlook|avenue|plan|goal|opportunity|possibility)\b`,
	`\bopen\s+(?:question|issue|challenge|problem|area)\b`,
	`\bnext\s+step`,
}

// Category is one of the two kinds of text the extractor looks for.
type Category int

const (
	Limitations Category = iota
	FutureWork
)

// String returns the category name used in sentinel messages.
func (c Category) String() string {
	switch c {
	case Limitations:
		return "limitations"
	case FutureWork:
		return "future work"
	default:
		return "unknown"
	}
}

// patternSet is a compiled category pattern list.
type patternSet []*regexp.Regexp

var (
	limitationSet = mustCompile(LimitationPatterns)
	futureWorkSet = mustCompile(FutureWorkPatterns)
)

func mustCompile(patterns []string) patternSet {
	set := make(patternSet, len(patterns))
	for i, p := range patterns {
		set[i] = regexp.MustCompile(p)
	}
	return set
}

func (c Category) patterns() patternSet {
	if c == FutureWork {
		return futureWorkSet
	}
	return limitationSet
}

// matches reports whether any pattern matches the already-folded text.
func (s patternSet) matches(folded string) bool {
	for _, re := range s {
		if re.MatchString(folded) {
			return true
		}
	}
	return false
}

// Matches reports whether text contains a cue for category c. Text is
// NFKC-normalised and lower-cased first, so ligatures and full-width forms
// found in PDF-derived text still match.
func Matches(c Category, text string) bool {
	return c.patterns().matches(fold(text))
}

// fold returns the matching form of s. A Caser is stateful, so one is
// created per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFKC.String(s))
}
