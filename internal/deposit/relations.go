package deposit

import (
	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
)

// identifierChoice is one (identifier-type, value) candidate. Relation
// entries carry exactly one identifier: the first candidate with a value.
type identifierChoice struct {
	idType string
	value  string
}

func firstIdentifier(choices []identifierChoice) (identifierChoice, bool) {
	for _, c := range choices {
		if c.value != "" {
			return c, true
		}
	}
	return identifierChoice{}, false
}

func refIdentifierChoices(ref *article.Reference) []identifierChoice {
	return []identifierChoice{
		{"doi", ref.DOI},
		{"accession", ref.Accession},
		{"pmid", ref.PMID},
		{"uri", ref.URI},
	}
}

func datasetIdentifierChoices(ds *article.Dataset) []identifierChoice {
	return []identifierChoice{
		{"doi", ds.DOI},
		{"accession", ds.AccessionID},
		{"uri", ds.URI},
	}
}

// needsCitationRelation reports whether a reference also requires a
// cross-work relation entry: data-type references with any identifier.
func needsCitationRelation(ref *article.Reference) bool {
	if ref.PublicationType != article.TypeData {
		return false
	}
	_, ok := firstIdentifier(refIdentifierChoices(ref))
	return ok
}

// needsDatasetRelation reports whether a dataset has at least one
// relation-worthy identifier.
func needsDatasetRelation(ds *article.Dataset) bool {
	_, ok := firstIdentifier(datasetIdentifierChoices(ds))
	return ok
}

// relationsNeeded scans datasets and references up front so the relations
// container can be created at its fixed position in the element order.
func relationsNeeded(a *article.Article) bool {
	for i := range a.Datasets {
		if needsDatasetRelation(&a.Datasets[i]) {
			return true
		}
	}
	for i := range a.References {
		if needsCitationRelation(&a.References[i]) {
			return true
		}
	}
	return false
}

// relationsProgram returns the article's single relations container,
// creating it under parent on first call.
func (d *Deposit) relationsProgram(parent *etree.Element) *etree.Element {
	if d.relations == nil {
		d.relations = parent.CreateElement("rel:program")
	}
	return d.relations
}

// setDatasets appends one related_item per dataset that carries an
// identifier.
func (d *Deposit) setDatasets(parent *etree.Element, a *article.Article) {
	for i := range a.Datasets {
		ds := &a.Datasets[i]
		chosen, ok := firstIdentifier(datasetIdentifierChoices(ds))
		if !ok {
			continue
		}
		item := d.relationsProgram(parent).CreateElement("rel:related_item")
		setRelatedItemDescription(item, ds.Title)
		setWorkRelation(item, datasetRelationshipType(ds), chosen)
	}
}

// setCitationRelatedItem appends a relation entry for a data-type
// reference.
func (d *Deposit) setCitationRelatedItem(parent *etree.Element, ref *article.Reference) {
	chosen, ok := firstIdentifier(refIdentifierChoices(ref))
	if !ok {
		return
	}
	item := d.relationsProgram(parent).CreateElement("rel:related_item")
	setRelatedItemDescription(item, ref.DataTitle)
	setWorkRelation(item, "references", chosen)
}

// datasetRelationshipType maps the dataset type to its relationship label.
// Datasets generated for the current work supplement it; previously
// published ones are referenced. Unspecified types default to the former.
func datasetRelationshipType(ds *article.Dataset) string {
	if ds.Type == article.DatasetPrevPublished {
		return "references"
	}
	return "isSupplementedBy"
}

func setRelatedItemDescription(parent *etree.Element, description string) {
	if description == "" {
		return
	}
	parent.CreateElement("rel:description").SetText(description)
}

func setWorkRelation(parent *etree.Element, relationshipType string, id identifierChoice) {
	relation := parent.CreateElement("rel:inter_work_relation")
	relation.CreateAttr("relationship-type", relationshipType)
	relation.CreateAttr("identifier-type", id.idType)
	relation.SetText(id.value)
}
