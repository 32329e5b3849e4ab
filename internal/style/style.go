// Package style implements house naming conventions used when building
// resource URLs: journal volume calculation, article version labels and
// component id styling.
package style

import (
	"strconv"
	"strings"
	"time"

	"github.com/openpress/depositor/internal/article"
)

// JournalVolume computes a volume number from the publication date and the
// year before the journal's first volume. Returns "" when the inputs do
// not produce a positive volume.
func JournalVolume(pubDate time.Time, yearOfFirstVolume int) string {
	if yearOfFirstVolume <= 0 {
		return ""
	}
	volume := pubDate.Year() - yearOfFirstVolume
	if volume <= 0 {
		return ""
	}
	return strconv.Itoa(volume)
}

// VersionLabel returns the URL label for an article's version number,
// e.g. "v2", or "" for unversioned articles.
func VersionLabel(a *article.Article) string {
	if a.Version <= 0 {
		return ""
	}
	return "v" + strconv.Itoa(a.Version)
}

// figurePrefixes identify component ids that live under the figures path
// when styled component ids are enabled.
var figurePrefixes = []string{"fig", "table", "video", "media"}

// ComponentAttributes returns the styled id and URL path prefix for a
// component. The id is lowercased; figure-like components get the
// "figures" path segment, all others none.
func ComponentAttributes(comp *article.Component) (id, prefix string) {
	id = strings.ToLower(comp.ID)
	for _, p := range figurePrefixes {
		if strings.HasPrefix(id, p) {
			return id, "figures"
		}
	}
	return id, ""
}
