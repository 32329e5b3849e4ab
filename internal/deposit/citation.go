package deposit

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
	"github.com/openpress/depositor/internal/markup"
)

// citationVolumeMaxLen caps the citation volume value per the schema.
const citationVolumeMaxLen = 31

// unstructuredTypes always get a free-text citation. Preprints only when
// they have no doi, reports only when they have no isbn.
var unstructuredTypes = map[string]bool{
	article.TypeConfProc: true,
	article.TypePatent:   true,
	article.TypeSoftware: true,
	article.TypeThesis:   true,
	article.TypeWeb:      true,
	article.TypeWebpage:  true,
}

// setCitationList builds the citation_list and, for relation-worthy
// references, appends entries to the article's relations container.
func (d *Deposit) setCitationList(parent *etree.Element, a *article.Article) error {
	if len(a.References) == 0 {
		return nil
	}
	citationList := parent.CreateElement("citation_list")
	for i := range a.References {
		ref := &a.References[i]
		if needsCitationRelation(ref) {
			d.setCitationRelatedItem(parent, ref)
		}
		if err := d.setCitation(citationList, ref, i+1); err != nil {
			return err
		}
	}
	return nil
}

// setCitation builds one structured citation entry. Each field is included
// only when the source value is present.
func (d *Deposit) setCitation(parent *etree.Element, ref *article.Reference, ordinal int) error {
	citation := parent.CreateElement("citation")
	if ref.ID != "" {
		citation.CreateAttr("key", ref.ID)
	} else {
		citation.CreateAttr("key", strconv.Itoa(ordinal))
	}

	if ref.Source != "" {
		if ref.PublicationType == article.TypeJournal {
			citation.CreateElement("journal_title").SetText(ref.Source)
		} else {
			citation.CreateElement("volume_title").SetText(ref.Source)
		}
	}

	if first, ok := firstCitationAuthor(ref); ok {
		if first.Surname != "" {
			citation.CreateElement("author").SetText(first.Surname)
		} else if first.Collab != "" {
			if err := markup.AppendCleanTag(citation, "author", first.Collab); err != nil {
				return err
			}
		}
	}

	if ref.Volume != "" {
		citation.CreateElement("volume").SetText(truncate(ref.Volume, citationVolumeMaxLen))
	}
	if ref.Issue != "" {
		citation.CreateElement("issue").SetText(ref.Issue)
	}
	if ref.FirstPage != "" {
		citation.CreateElement("first_page").SetText(ref.FirstPage)
	}
	if ref.Year != "" || ref.YearNumeric != 0 {
		year := citation.CreateElement("cYear")
		if ref.YearNumeric != 0 {
			year.SetText(strconv.Itoa(ref.YearNumeric))
		} else {
			year.SetText(ref.Year)
		}
	}

	if title := citationTitle(ref); title != "" {
		if err := markup.AppendCleanTag(citation, "article_title", title); err != nil {
			return err
		}
	}

	if ref.DOI != "" {
		citation.CreateElement("doi").SetText(ref.DOI)
	}
	if ref.ISBN != "" {
		citation.CreateElement("isbn").SetText(ref.ISBN)
	}

	if ref.ElocationID != "" {
		if legacySchemaVersions[d.cfg.SchemaVersion] {
			// No dedicated element in these versions; the elocation id
			// stands in for the first page.
			citation.CreateElement("first_page").SetText(ref.ElocationID)
		} else {
			citation.CreateElement("elocation_id").SetText(ref.ElocationID)
		}
	}

	if needsUnstructuredCitation(ref) {
		return d.setUnstructuredCitation(citation, ref)
	}
	return nil
}

// firstCitationAuthor selects the citation author: the first author-role
// name, falling back to the first editor-role name.
func firstCitationAuthor(ref *article.Reference) (article.Author, bool) {
	for _, role := range []string{article.RoleAuthor, article.RoleEditor} {
		for _, au := range ref.Authors {
			if au.Role == role {
				return au, true
			}
		}
	}
	return article.Author{}, false
}

// citationTitle prefers the article title over the data title.
func citationTitle(ref *article.Reference) string {
	if ref.ArticleTitle != "" {
		return ref.ArticleTitle
	}
	return ref.DataTitle
}

// needsUnstructuredCitation decides whether a reference gets a free-text
// citation. Reports are suppressed solely on isbn presence, independent of
// any other identifier.
func needsUnstructuredCitation(ref *article.Reference) bool {
	if unstructuredTypes[ref.PublicationType] {
		return true
	}
	if ref.PublicationType == article.TypePreprint && ref.DOI == "" {
		return true
	}
	if ref.PublicationType == article.TypeReport && ref.ISBN == "" {
		return true
	}
	return false
}

// setUnstructuredCitation synthesizes the free-text citation and renders
// it through the reparser.
func (d *Deposit) setUnstructuredCitation(parent *etree.Element, ref *article.Reference) error {
	content := unstructuredCitationText(ref)
	if content == "" {
		return nil
	}
	if d.cfg.FaceMarkup {
		return markup.AppendInlineTag(parent, "unstructured_citation", content)
	}
	return markup.AppendCleanTag(parent, "unstructured_citation", content)
}

// unstructuredCitationText joins the non-empty citation parts in fixed
// priority order with ". ", stripping trailing periods from each part and
// appending a single closing period.
func unstructuredCitationText(ref *article.Reference) string {
	parts := []string{
		citationAuthorLine(ref),
		ref.Year,
		citationTitle(ref),
		citationPublisher(ref),
		ref.Source,
		ref.VersionLabel,
		ref.Patent,
		ref.ConfName,
		citationURI(ref),
	}
	var joined []string
	for _, part := range parts {
		part = strings.TrimRight(part, ".")
		if part != "" {
			joined = append(joined, part)
		}
	}
	if len(joined) == 0 {
		return ""
	}
	return strings.Join(joined, ". ") + "."
}

// citationAuthorLine joins display names of all authors regardless of role.
func citationAuthorLine(ref *article.Reference) string {
	var names []string
	for _, au := range ref.Authors {
		if name := au.DisplayName(); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// citationPublisher joins whichever of publisher location and name are
// present with ": ".
func citationPublisher(ref *article.Reference) string {
	var parts []string
	if ref.PublisherLoc != "" {
		parts = append(parts, ref.PublisherLoc)
	}
	if ref.PublisherName != "" {
		parts = append(parts, ref.PublisherName)
	}
	return strings.Join(parts, ": ")
}

// citationURI renders the uri with its access date annotation if present.
func citationURI(ref *article.Reference) string {
	if ref.URI == "" {
		return ""
	}
	if ref.DateInCitation != "" {
		return ref.URI + " [Accessed " + ref.DateInCitation + "]"
	}
	return ref.URI
}

// truncate limits a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
