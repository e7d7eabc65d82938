// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/data"
	"github.com/neurosnap/sentences/english"
)

// academicAbbrevs are abbreviations common in papers that the English
// training data lacks. Entries are lower-case without the final period.
var academicAbbrevs = []string{
	"al", "fig", "figs", "eq", "eqs", "cf", "etc", "i.e", "e.g", "approx", "resp",
}

// numberWithPeriodRe matches a numeric token ending in a period: "93.5.",
// "2020.", "1,024.".
var numberWithPeriodRe = regexp.MustCompile(`^[-+]?\d[\d.,]*\.$`)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer

	// tokenizerMu serialises Tokenize calls; the punkt tokenizer does not
	// document itself as safe for concurrent use.
	tokenizerMu sync.Mutex
)

// loadTokenizer builds the English punkt tokenizer from its embedded
// training data. The data ships inside the module, so a failure here is a
// build defect rather than a runtime condition.
func loadTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		t, err := newTokenizer()
		if err != nil {
			panic("extract: " + err.Error())
		}
		tokenizer = t
	})
	return tokenizer
}

func newTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	raw, err := data.Asset("data/english.json")
	if err != nil {
		return nil, fmt.Errorf("reading english punkt data: %w", err)
	}
	training, err := sentences.LoadTraining(raw)
	if err != nil {
		return nil, fmt.Errorf("loading english punkt data: %w", err)
	}
	for _, abbr := range academicAbbrevs {
		training.AbbrevTypes.Add(abbr)
	}

	t, err := english.NewSentenceTokenizer(training)
	if err != nil {
		return nil, fmt.Errorf("building english tokenizer: %w", err)
	}
	t.Annotations = append(t.Annotations, numberBreakAnnotation{})
	return t, nil
}

// numberBreakAnnotation runs after the English annotations. Those treat any
// token with two or more periods, such as "93.5.", as an abbreviation, and
// a bare "2020." as a list number, so a sentence ending in a number was
// merged with the next one. A number ending in a period followed by a
// capitalised word is a sentence break.
type numberBreakAnnotation struct{}

func (numberBreakAnnotation) Annotate(tokens []*sentences.Token) []*sentences.Token {
	for i := 0; i+1 < len(tokens); i++ {
		tok, next := tokens[i], tokens[i+1]
		if numberWithPeriodRe.MatchString(tok.Tok) && startsUpper(next.Tok) {
			tok.SentBreak = true
			tok.Abbr = false
		}
	}
	return tokens
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// SplitSentences splits text into trimmed, non-empty sentences. It handles
// abbreviations such as "e.g." and "et al.", decimal numbers, and closing
// quotes the way a punkt tokenizer does rather than breaking on every
// period.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	t := loadTokenizer()
	tokenizerMu.Lock()
	tokens := t.Tokenize(text)
	tokenizerMu.Unlock()

	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
