package deposit

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
	"github.com/openpress/depositor/internal/style"
)

// articleSubstitution carries the values available to article-level URL
// templates.
type articleSubstitution struct {
	doi        string
	manuscript string
	volume     string
	version    string
}

func articleSubstitutionFor(a *article.Article) articleSubstitution {
	return articleSubstitution{
		doi:        a.DOI,
		manuscript: a.Manuscript,
		volume:     a.Volume,
		version:    style.VersionLabel(a),
	}
}

func (s articleSubstitution) format(pattern string) string {
	if pattern == "" {
		return ""
	}
	return strings.NewReplacer(
		"{doi}", s.doi,
		"{manuscript}", s.manuscript,
		"{volume}", s.volume,
		"{version}", s.version,
	).Replace(pattern)
}

// componentSubstitution carries the values available to component URL
// templates: the parent article's values plus the component id and an
// optional path prefix.
type componentSubstitution struct {
	doi        string
	manuscript string
	volume     string
	id         string
	prefix     string
}

func (s componentSubstitution) format(pattern string) string {
	if pattern == "" {
		return ""
	}
	return strings.NewReplacer(
		"{doi}", s.doi,
		"{manuscript}", s.manuscript,
		"{volume}", s.volume,
		"{id}", s.id,
		"{prefix}", s.prefix,
	).Replace(pattern)
}

// articleResourceURL formats an article URL template, falling back to the
// article's generic self-uri when no template is configured. Returns ""
// when neither exists.
func (d *Deposit) articleResourceURL(a *article.Article, pattern string) string {
	if pattern != "" {
		return articleSubstitutionFor(a).format(pattern)
	}
	if selfURI := a.SelfURI(""); selfURI != nil {
		return selfURI.Href
	}
	return ""
}

// componentResourceURL formats the component URL template with the parent
// article's values and the component's id, styled per configuration.
func (d *Deposit) componentResourceURL(a *article.Article, comp *article.Component) string {
	id, prefix := comp.ID, ""
	if d.cfg.ComponentStyle {
		id, prefix = style.ComponentAttributes(comp)
	}
	sub := componentSubstitution{
		doi:        a.DOI,
		manuscript: a.Manuscript,
		volume:     a.Volume,
		id:         id,
		prefix:     prefix,
	}
	return sub.format(d.cfg.ComponentDOIPattern)
}

// textMiningPDF requires the template and a PDF self-uri on the article.
func (d *Deposit) textMiningPDF(a *article.Article) bool {
	return d.cfg.TextMiningPDFPattern != "" && a.SelfURI("pdf") != nil
}

// textMiningXML requires only the template.
func (d *Deposit) textMiningXML() bool {
	return d.cfg.TextMiningXMLPattern != ""
}

// setTextMiningCollection emits machine-readable resource links. The whole
// collection is gated on the article having a usable license.
func (d *Deposit) setTextMiningCollection(parent *etree.Element, a *article.Article) {
	if !a.HasLicense() {
		return
	}
	pdf := d.textMiningPDF(a)
	xml := d.textMiningXML()
	if !pdf && !xml {
		return
	}
	collection := parent.CreateElement("collection")
	collection.CreateAttr("property", "text-mining")
	if pdf {
		resource := collection.CreateElement("item").CreateElement("resource")
		resource.CreateAttr("mime_type", "application/pdf")
		resource.SetText(articleSubstitutionFor(a).format(d.cfg.TextMiningPDFPattern))
	}
	if xml {
		resource := collection.CreateElement("item").CreateElement("resource")
		resource.CreateAttr("mime_type", "application/xml")
		resource.SetText(articleSubstitutionFor(a).format(d.cfg.TextMiningXMLPattern))
	}
}
