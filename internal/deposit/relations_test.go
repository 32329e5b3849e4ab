package deposit

import (
	"strings"
	"testing"

	"github.com/openpress/depositor/internal/article"
)

func TestDataReferenceRelation(t *testing.T) {
	out := render(t, []*article.Article{articleWithReference(article.Reference{
		PublicationType: article.TypeData,
		DataTitle:       "Deposited sequences",
		DOI:             "10.5061/dryad.1234",
	})}, testConfig())

	if got := strings.Count(out, "<rel:program>"); got != 1 {
		t.Fatalf("output should contain exactly one relations container, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "<rel:related_item>"); got != 1 {
		t.Errorf("output should contain exactly one related item, got %d:\n%s", got, out)
	}
	if !strings.Contains(out,
		`<rel:inter_work_relation relationship-type="references" identifier-type="doi">10.5061/dryad.1234</rel:inter_work_relation>`) {
		t.Errorf("related item should reference the doi, got:\n%s", out)
	}
	if !strings.Contains(out, "<rel:description>Deposited sequences</rel:description>") {
		t.Errorf("related item should carry the data title description, got:\n%s", out)
	}
}

func TestTwoRelationsOneContainer(t *testing.T) {
	a := minimalArticle()
	a.References = []article.Reference{
		{PublicationType: article.TypeData, DOI: "10.5061/dryad.1234"},
		{PublicationType: article.TypeData, Accession: "GSE48760"},
	}

	out := render(t, []*article.Article{a}, testConfig())
	if got := strings.Count(out, "<rel:program>"); got != 1 {
		t.Errorf("two relation entries should share one container, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "<rel:related_item>"); got != 2 {
		t.Errorf("output should contain two related items, got %d:\n%s", got, out)
	}
}

func TestRelationIdentifierPriority(t *testing.T) {
	out := render(t, []*article.Article{articleWithReference(article.Reference{
		PublicationType: article.TypeData,
		DOI:             "10.5061/dryad.1234",
		Accession:       "GSE48760",
		PMID:            "25908843",
		URI:             "https://example.org/data",
	})}, testConfig())
	if !strings.Contains(out, `identifier-type="doi"`) {
		t.Errorf("doi should win the identifier priority, got:\n%s", out)
	}
	if strings.Count(out, "rel:inter_work_relation") != 2 { // open and close tag
		t.Errorf("entry should carry exactly one identifier, got:\n%s", out)
	}
}

func TestNonDataReferenceNoRelation(t *testing.T) {
	out := render(t, []*article.Article{articleWithReference(article.Reference{
		PublicationType: article.TypeJournal,
		DOI:             "10.1234/ref",
	})}, testConfig())
	if strings.Contains(out, "<rel:program>") {
		t.Errorf("journal references should not create relations, got:\n%s", out)
	}
}

func TestDataReferenceWithoutIdentifiersNoRelation(t *testing.T) {
	out := render(t, []*article.Article{articleWithReference(article.Reference{
		PublicationType: article.TypeData,
		DataTitle:       "Unlocatable data",
	})}, testConfig())
	if strings.Contains(out, "<rel:program>") {
		t.Errorf("data reference with no identifiers should not create a relation, got:\n%s", out)
	}
}

func TestDatasetRelations(t *testing.T) {
	a := minimalArticle()
	a.Datasets = []article.Dataset{
		{Title: "Generated data", Type: article.DatasetGenerated, DOI: "10.5061/dryad.g1"},
		{Title: "Prior data", Type: article.DatasetPrevPublished, AccessionID: "EGAS00001"},
		{Title: "Untyped data", URI: "https://example.org/d3"},
		{Title: "No identifiers at all"},
	}

	out := render(t, []*article.Article{a}, testConfig())
	if got := strings.Count(out, "<rel:program>"); got != 1 {
		t.Fatalf("datasets should share one relations container, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "<rel:related_item>"); got != 3 {
		t.Errorf("dataset without identifiers should be skipped, got %d items:\n%s", got, out)
	}
	if !strings.Contains(out,
		`<rel:inter_work_relation relationship-type="isSupplementedBy" identifier-type="doi">10.5061/dryad.g1</rel:inter_work_relation>`) {
		t.Errorf("generated dataset should be isSupplementedBy, got:\n%s", out)
	}
	if !strings.Contains(out,
		`<rel:inter_work_relation relationship-type="references" identifier-type="accession">EGAS00001</rel:inter_work_relation>`) {
		t.Errorf("previously published dataset should be references, got:\n%s", out)
	}
	if !strings.Contains(out,
		`<rel:inter_work_relation relationship-type="isSupplementedBy" identifier-type="uri">https://example.org/d3</rel:inter_work_relation>`) {
		t.Errorf("untyped dataset should default to isSupplementedBy, got:\n%s", out)
	}
}

func TestDatasetAndCitationShareContainer(t *testing.T) {
	a := minimalArticle()
	a.Datasets = []article.Dataset{
		{Type: article.DatasetGenerated, DOI: "10.5061/dryad.g1"},
	}
	a.References = []article.Reference{
		{PublicationType: article.TypeData, URI: "https://example.org/data"},
	}

	out := render(t, []*article.Article{a}, testConfig())
	if got := strings.Count(out, "<rel:program>"); got != 1 {
		t.Errorf("dataset and citation entries should share one container, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "<rel:related_item>"); got != 2 {
		t.Errorf("output should contain both entries, got %d:\n%s", got, out)
	}
}

func TestRelationsContainerPosition(t *testing.T) {
	// The container is created before doi_data even though the citation
	// entry is appended while building the citation list afterwards.
	a := minimalArticle()
	a.References = []article.Reference{
		{PublicationType: article.TypeData, DOI: "10.5061/dryad.1234"},
	}

	out := render(t, []*article.Article{a}, testConfig())
	program := strings.Index(out, "<rel:program>")
	doiData := strings.Index(out, "<doi_data>")
	citationList := strings.Index(out, "<citation_list>")
	if program < 0 || doiData < 0 || citationList < 0 {
		t.Fatalf("expected relations, doi_data and citation_list in output:\n%s", out)
	}
	if program > doiData || doiData > citationList {
		t.Errorf("element order should be relations before doi_data before citation_list, got:\n%s", out)
	}
}

func TestRelationsResetBetweenArticles(t *testing.T) {
	withData := minimalArticle()
	withData.Datasets = []article.Dataset{
		{Type: article.DatasetGenerated, DOI: "10.5061/dryad.g1"},
	}
	second := minimalArticle()
	second.DOI = "10.1234/example.05678"
	second.Datasets = []article.Dataset{
		{Type: article.DatasetGenerated, DOI: "10.5061/dryad.g2"},
	}

	out := render(t, []*article.Article{withData, second}, testConfig())
	if got := strings.Count(out, "<rel:program>"); got != 2 {
		t.Errorf("each article should get its own relations container, got %d:\n%s", got, out)
	}
}
