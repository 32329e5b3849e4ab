package deposit

import (
	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
	"github.com/openpress/depositor/internal/markup"
)

// setTitles builds the titles block. External links are never carried in
// titles; remaining inline markup is converted or stripped per the
// face_markup option.
func (d *Deposit) setTitles(parent *etree.Element, a *article.Article) error {
	titles := parent.CreateElement("titles")
	title := markup.RemoveTag(a.Title, "ext-link")
	if d.cfg.FaceMarkup {
		return markup.AppendInlineTag(titles, "title", title)
	}
	return markup.AppendCleanTag(titles, "title", title)
}

// setSubtitle adds a component subtitle with the same inline-or-clean
// choice as titles.
func (d *Deposit) setSubtitle(parent *etree.Element, comp *article.Component) error {
	if d.cfg.FaceMarkup {
		return markup.AppendInlineTag(parent, "subtitle", comp.Subtitle)
	}
	return markup.AppendCleanTag(parent, "subtitle", comp.Subtitle)
}

func (d *Deposit) setAbstract(parent *etree.Element, a *article.Article) error {
	if a.Abstract == "" {
		return nil
	}
	return d.setAbstractTag(parent, a.Abstract, "abstract")
}

func (d *Deposit) setDigest(parent *etree.Element, a *article.Article) error {
	if a.Digest == "" {
		return nil
	}
	return d.setAbstractTag(parent, a.Digest, "executive-summary")
}

// setAbstractTag sanitizes an abstract fragment, remaps its tags into the
// destination vocabulary, reparses it in isolation and splices the result
// under parent. Digests carry an abstract-type marker.
func (d *Deposit) setAbstractTag(parent *etree.Element, abstract, abstractType string) error {
	attrText := ""
	var keepAttrs []string
	if abstractType == "executive-summary" {
		attrText = ` abstract-type="executive-summary"`
		keepAttrs = []string{"abstract-type"}
	}

	converted := markup.EscapeAmpersand(abstract)
	converted = markup.EscapeUnmatchedAngleBrackets(converted, markup.AllowedTags())
	if d.cfg.JATSAbstract {
		converted = markup.ReplaceTag(converted, "p", "jats:p")
		converted = markup.ReplaceTag(converted, "italic", "jats:italic")
		converted = markup.ReplaceTag(converted, "bold", "jats:bold")
		converted = markup.ReplaceTag(converted, "underline", "jats:underline")
		converted = markup.ReplaceTag(converted, "sub", "jats:sub")
		converted = markup.ReplaceTag(converted, "sup", "jats:sup")
		converted = markup.ReplaceTag(converted, "sc", "jats:sc")
		converted = markup.RemoveTag(converted, "inline-formula")
		converted = markup.RemoveTag(converted, "ext-link")
	} else {
		// Strip inline tags, keep paragraphs and math
		converted = markup.CleanTags(converted, "p", "mml:")
		converted = markup.ReplaceTag(converted, "p", "jats:p")
	}

	tagged := "<jats:abstract" + markup.ReparseNamespaces + attrText + ">" +
		converted + "</jats:abstract>"
	return markup.AppendReparsed(parent, tagged, keepAttrs...)
}
