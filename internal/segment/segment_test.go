// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-gaps/pkg/types"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \n\n\t \r\n ", nil},
		{"single paragraph", "one line", []string{"one line"}},
		{
			name: "collapses whitespace inside a paragraph",
			text: "first   line\nsecond\tline",
			want: []string{"first line second line"},
		},
		{
			name: "splits on blank lines",
			text: "alpha\n\nbeta\n  \n\ngamma",
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "windows line endings",
			text: "alpha\r\n\r\nbeta\r\nstill beta",
			want: []string{"alpha", "beta still beta"},
		},
		{
			name: "trims paragraphs",
			text: "   padded   \n\n\n   also padded ",
			want: []string{"padded", "also padded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paragraphs(tt.text))
		})
	}
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name string
		p    string
		want bool
	}{
		{"all caps", "LIMITATIONS", true},
		{"all caps with punctuation", "5. FUTURE WORK AND OPEN QUESTIONS", true},
		{"numbered", "3. Results", true},
		{"numbered without dot", "4 Discussion", true},
		{"numbered subsection", "2.1 Experimental setup", true},
		{"roman numeral", "IV. Discussion", true},
		{"roman numeral without dot", "II Methods", true},
		{"sentence", "This paper studies limitations.", false},
		{"title case", "Future Work", false},
		{"digits only", "2024", false},
		{"number without word", "12. ", false},
		{"empty", "", false},
		{"99 upper-case characters", strings.Repeat("A", 99), true},
		{"100 upper-case characters", strings.Repeat("A", 100), false},
		{"101 upper-case characters", strings.Repeat("A", 101), false},
		{"long numbered paragraph", "1. " + strings.Repeat("word ", 30), false},
		{"non-ascii upper-case", "ÉTUDE ET LIMITES", true},
		{"numbered accented word", "3. Étude des limites", true},
		{"numbered umlaut word", "1. Über die Methode", true},
		{"arabic-indic digit", "٣. Results", true},
		{"roman numeral accented word", "II. Évaluation", true},
		{"numbered cjk word", "4 結論", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeading(tt.p))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.Section
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "content without headings",
			text: "First paragraph.\n\nSecond paragraph.",
			want: []types.Section{
				{Heading: "", Content: "First paragraph. Second paragraph."},
			},
		},
		{
			name: "preamble then heading",
			text: "Preamble text.\n\nINTRODUCTION\n\nBody text.",
			want: []types.Section{
				{Heading: "", Content: "Preamble text."},
				{Heading: "INTRODUCTION", Content: "Body text."},
			},
		},
		{
			name: "consecutive headings keep the last",
			text: "TITLE\n\n1. Introduction\n\nBody.",
			want: []types.Section{
				{Heading: "1. Introduction", Content: "Body."},
			},
		},
		{
			name: "trailing heading without content is dropped",
			text: "METHODS\n\nWe measured things.\n\nREFERENCES",
			want: []types.Section{
				{Heading: "METHODS", Content: "We measured things."},
			},
		},
		{
			name: "multiple paragraphs joined with a space",
			text: "II. Results\n\nOne.\n\nTwo.\n\nThree.",
			want: []types.Section{
				{Heading: "II. Results", Content: "One. Two. Three."},
			},
		},
		{
			name: "paragraph structure survives whitespace normalisation",
			text: "LIMITATIONS\n\nOur   sample\nwas small.\n\nFUTURE WORK\n\nWe will\tgrow it.",
			want: []types.Section{
				{Heading: "LIMITATIONS", Content: "Our sample was small."},
				{Heading: "FUTURE WORK", Content: "We will grow it."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestSplitPreservesEveryBodyParagraph(t *testing.T) {
	text := strings.Join([]string{
		"A study of things.",
		"ABSTRACT",
		"We study things carefully.",
		"And then some more.",
		"1. Introduction",
		"Things matter.",
		"2. Methods",
		"We counted the things.",
		"Twice, to be sure.",
		"CONCLUSION",
		"Things were counted.",
	}, "\n\n")

	var body []string
	for _, p := range Paragraphs(text) {
		if !IsHeading(p) {
			body = append(body, p)
		}
	}

	var content []string
	for _, s := range Split(text) {
		content = append(content, s.Content)
	}

	require.NotEmpty(t, body)
	assert.Equal(t, strings.Join(body, " "), strings.Join(content, " "))
}

func TestSplitHeadingLengthBoundary(t *testing.T) {
	heading99 := strings.Repeat("B", 99)
	heading101 := strings.Repeat("B", 101)

	got := Split(heading99 + "\n\nbody one")
	require.Len(t, got, 1)
	assert.Equal(t, heading99, got[0].Heading)
	assert.Equal(t, "body one", got[0].Content)

	got = Split(heading101 + "\n\nbody two")
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Heading)
	assert.Equal(t, heading101+" body two", got[0].Content)
}
