// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Author identifies a paper author as returned by the CORE API.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`
}

// Paper holds a work record returned by the CORE search API. Only FullText
// is consumed by extraction; the remaining fields pass through to display.
type Paper struct {
	// ID is the CORE work identifier.
	ID int64 `json:"id" yaml:"id"`

	// DOI is the work's DOI without the https://doi.org/ prefix, if known.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// PublishedDate is the publication date as the API reports it
	// (usually RFC 3339, sometimes a bare date). Kept as a string because
	// it is only displayed.
	PublishedDate string `json:"publishedDate" yaml:"published_date"`

	// YearPublished is the publication year, if known.
	YearPublished int `json:"yearPublished,omitempty" yaml:"year_published,omitempty"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// FullText is the extracted full text of the paper. Empty when CORE
	// holds no full text for the work.
	FullText string `json:"fullText" yaml:"full_text"`

	// DownloadURL points at the full-text PDF.
	DownloadURL string `json:"downloadUrl" yaml:"download_url"`
}

// HasFullText reports whether the paper carries any full text.
func (p Paper) HasFullText() bool {
	return p.FullText != ""
}

// AuthorNames returns the author display names, substituting "Unknown"
// for authors without one.
func (p Paper) AuthorNames() []string {
	names := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		if a.Name == "" {
			names[i] = "Unknown"
			continue
		}
		names[i] = a.Name
	}
	return names
}
