package deposit

import (
	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
	"github.com/openpress/depositor/internal/mimetype"
)

// setComponentList builds the component_list. Components with an
// unrecognized mime type get no format element; components whose resource
// URL cannot be generated get no doi_data.
func (d *Deposit) setComponentList(parent *etree.Element, a *article.Article) error {
	if len(a.Components) == 0 {
		return nil
	}
	componentList := parent.CreateElement("component_list")
	for i := range a.Components {
		comp := &a.Components[i]
		component := componentList.CreateElement("component")
		component.CreateAttr("parent_relation", "isPartOf")

		titles := component.CreateElement("titles")
		titles.CreateElement("title").SetText(comp.Title)
		if comp.Subtitle != "" {
			if err := d.setSubtitle(titles, comp); err != nil {
				return err
			}
		}

		if mime := mimetype.Crossref(comp.MimeType); mime != "" {
			component.CreateElement("format").CreateAttr("mime_type", mime)
		}

		d.setComponentPermissions(component, comp)

		if comp.DOI != "" {
			if resource := d.componentResourceURL(a, comp); resource != "" {
				doiData := component.CreateElement("doi_data")
				doiData.CreateElement("doi").SetText(comp.DOI)
				doiData.CreateElement("resource").SetText(resource)
			}
		}
	}
	return nil
}

// setComponentPermissions points components that carry any copyright or
// license statement at the configured component license reference.
func (d *Deposit) setComponentPermissions(parent *etree.Element, comp *article.Component) {
	if d.cfg.ComponentLicenseRef == "" || !comp.HasPermissionText() {
		return
	}
	program := parent.CreateElement("ai:program")
	program.CreateAttr("name", "AccessIndicators")
	program.CreateElement("ai:license_ref").SetText(d.cfg.ComponentLicenseRef)
}
