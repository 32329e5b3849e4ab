// Package article defines the input model for deposit generation: articles
// with their references, datasets, components, contributors and funding.
// Values are constructed upstream (by a source-format parser or from JSON)
// and are only read here.
package article

import "time"

// Article represents one published work to be deposited.
type Article struct {
	DOI          string        `json:"doi"`
	Manuscript   string        `json:"manuscript"` // Publisher manuscript identifier
	JournalTitle string        `json:"journal_title"`
	JournalISSN  string        `json:"journal_issn"`
	Volume       string        `json:"volume,omitempty"`
	ElocationID  string        `json:"elocation_id,omitempty"`
	Version      int           `json:"version,omitempty"` // Article version number, 0 if unversioned
	Title        string        `json:"title"`             // Raw markup string
	Abstract     string        `json:"abstract,omitempty"`
	Digest       string        `json:"digest,omitempty"` // Plain-language summary, raw markup
	License      *License      `json:"license,omitempty"`
	SelfURIs     []SelfURI     `json:"self_uris,omitempty"`
	Dates        []Date        `json:"dates,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
	Funding      []Award       `json:"funding,omitempty"`
	Datasets     []Dataset     `json:"datasets,omitempty"`
	References   []Reference   `json:"references,omitempty"`
	Components   []Component   `json:"components,omitempty"`
}

// License is a usage license attached to an article.
type License struct {
	Href string `json:"href"`
}

// SelfURI is an alternate location of the article content.
type SelfURI struct {
	ContentType string `json:"content_type,omitempty"` // e.g. "pdf"; empty for the generic self reference
	Href        string `json:"href"`
}

// Date is a named publication date, e.g. "pub", "publication" or "posted_date".
type Date struct {
	Type string    `json:"type"`
	Date time.Time `json:"date"`
}

// GetDate returns the article date with the given type, or nil if absent.
func (a *Article) GetDate(dateType string) *Date {
	for i := range a.Dates {
		if a.Dates[i].Type == dateType {
			return &a.Dates[i]
		}
	}
	return nil
}

// SelfURI returns the first self-uri with the given content type.
// An empty contentType matches the generic self reference only.
func (a *Article) SelfURI(contentType string) *SelfURI {
	for i := range a.SelfURIs {
		if a.SelfURIs[i].ContentType == contentType {
			return &a.SelfURIs[i]
		}
	}
	return nil
}

// HasLicense reports whether the article carries a usable license,
// meaning a license with a non-empty href.
func (a *Article) HasLicense() bool {
	return a.License != nil && a.License.Href != ""
}
