// Package deposit assembles Crossref deposit XML from article metadata.
//
// One Deposit builds one doi_batch document: an envelope with batch id,
// timestamp, depositor and registrant, then one journal record per input
// article. All input values are read-only; the only state that changes
// during assembly is the freshly built element tree.
package deposit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
	"github.com/openpress/depositor/internal/config"
	"github.com/openpress/depositor/internal/style"
)

// legacySchemaVersions place a reference's elocation id into the
// first_page element; later versions have a dedicated element.
var legacySchemaVersions = map[string]bool{
	"4.3.5": true,
	"4.3.7": true,
	"4.4.0": true,
}

const timestampFormat = "20060102150405"

// Deposit is one doi_batch document under construction.
type Deposit struct {
	cfg     *config.Config
	doc     *etree.Document
	root    *etree.Element
	pubDate time.Time
	batchID string

	contributors SectionWriter
	funding      SectionWriter
	comment      bool

	// Lazily created rel:program element, scoped to the article
	// currently being assembled.
	relations *etree.Element
}

// Option adjusts deposit construction.
type Option func(*Deposit)

// WithPubDate fixes the generation timestamp, replacing the wall clock.
// Also used as the publication date for articles without one.
func WithPubDate(t time.Time) Option {
	return func(d *Deposit) { d.pubDate = t }
}

// WithComment controls the generation comment after the root element.
func WithComment(enabled bool) Option {
	return func(d *Deposit) { d.comment = enabled }
}

// WithContributorWriter replaces the built-in contributor block builder.
func WithContributorWriter(w SectionWriter) Option {
	return func(d *Deposit) { d.contributors = w }
}

// WithFundingWriter replaces the built-in funding block builder.
func WithFundingWriter(w SectionWriter) Option {
	return func(d *Deposit) { d.funding = w }
}

// New assembles a deposit document for the given articles.
func New(articles []*article.Article, cfg *config.Config, opts ...Option) (*Deposit, error) {
	d := &Deposit{
		cfg:     cfg,
		pubDate: time.Now().UTC(),
		comment: true,
	}
	d.contributors = ContributorWriter(cfg.ContribTypes)
	d.funding = FundingWriter()
	for _, opt := range opts {
		opt(d)
	}

	d.doc = etree.NewDocument()
	d.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	d.root = d.doc.CreateElement("doi_batch")
	setRoot(d.root, cfg.SchemaVersion)

	d.batchID = batchID(cfg.BatchFilePrefix, articles, d.pubDate)

	if d.comment {
		d.root.CreateComment("generated by " + cfg.Generator +
			" at " + d.pubDate.Format("2006-01-02 15:04:05"))
	}

	d.setHead(d.root)
	if err := d.setBody(d.root, articles); err != nil {
		return nil, err
	}
	return d, nil
}

// BatchID returns the generated batch identifier.
func (d *Deposit) BatchID() string { return d.batchID }

// batchID derives the batch identifier from the configured prefix, the
// first article's manuscript id and the generation timestamp.
func batchID(prefix string, articles []*article.Article, pubDate time.Time) string {
	manuscript := ""
	if len(articles) > 0 && articles[0].Manuscript != "" {
		manuscript = cleanIDString(articles[0].Manuscript) + "-"
	}
	return prefix + manuscript + pubDate.Format(timestampFormat)
}

// cleanIDString strips characters unsafe in batch ids and file names.
func cleanIDString(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.' || r == '_':
			return r
		}
		return -1
	}, s)
}

// setRoot sets the root element schema attributes and namespace
// declarations. The trial registry and relations namespaces only exist in
// schema versions after the oldest supported one.
func setRoot(root *etree.Element, schemaVersion string) {
	root.CreateAttr("version", schemaVersion)
	root.CreateAttr("xmlns", "http://www.crossref.org/schema/"+schemaVersion)
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	root.CreateAttr("xmlns:fr", "http://www.crossref.org/fundref.xsd")
	root.CreateAttr("xmlns:ai", "http://www.crossref.org/AccessIndicators.xsd")
	if schemaVersion != "4.3.5" {
		root.CreateAttr("xmlns:ct", "http://www.crossref.org/clinicaltrials.xsd")
		root.CreateAttr("xmlns:rel", "http://www.crossref.org/relations.xsd")
	}
	root.CreateAttr("xsi:schemaLocation",
		"http://www.crossref.org/schema/"+schemaVersion+
			" http://www.crossref.org/schemas/crossref"+schemaVersion+".xsd")
	root.CreateAttr("xmlns:mml", "http://www.w3.org/1998/Math/MathML")
	root.CreateAttr("xmlns:jats", "http://www.ncbi.nlm.nih.gov/JATS1")
}

func (d *Deposit) setHead(parent *etree.Element) {
	head := parent.CreateElement("head")
	head.CreateElement("doi_batch_id").SetText(d.batchID)
	head.CreateElement("timestamp").SetText(d.pubDate.Format(timestampFormat))
	depositor := head.CreateElement("depositor")
	depositor.CreateElement("depositor_name").SetText(d.cfg.DepositorName)
	depositor.CreateElement("email_address").SetText(d.cfg.EmailAddress)
	head.CreateElement("registrant").SetText(d.cfg.Registrant)
}

func (d *Deposit) setBody(parent *etree.Element, articles []*article.Article) error {
	body := parent.CreateElement("body")
	for _, a := range articles {
		if err := d.setJournal(body, a); err != nil {
			return fmt.Errorf("article %s: %w", a.DOI, err)
		}
	}
	return nil
}

// pubDateFor resolves an article's publication date by checking the
// configured date types in order, falling back to the run timestamp.
func (d *Deposit) pubDateFor(a *article.Article) time.Time {
	for _, dateType := range d.cfg.PubDateTypes {
		if ad := a.GetDate(dateType); ad != nil {
			return ad.Date
		}
	}
	return d.pubDate
}

func (d *Deposit) setJournal(parent *etree.Element, a *article.Article) error {
	journal := parent.CreateElement("journal")
	setJournalMetadata(journal, a)

	issue := journal.CreateElement("journal_issue")
	pubDate := d.pubDateFor(a)
	setPublicationDate(issue, pubDate)

	volume := issue.CreateElement("journal_volume").CreateElement("volume")
	if a.Volume != "" {
		volume.SetText(a.Volume)
	} else if v := style.JournalVolume(pubDate, d.cfg.YearOfFirstVolume); v != "" {
		volume.SetText(v)
	}

	return d.setJournalArticle(journal, a)
}

func (d *Deposit) setJournalArticle(parent *etree.Element, a *article.Article) error {
	// One relations container per article, created on first need.
	d.relations = nil

	ja := parent.CreateElement("journal_article")
	ja.CreateAttr("publication_type", "full_text")
	if d.cfg.ReferenceDistributionOpts != "" {
		ja.CreateAttr("reference_distribution_opts", d.cfg.ReferenceDistributionOpts)
	}

	if err := d.setTitles(ja, a); err != nil {
		return err
	}
	if err := d.contributors.Write(ja, a); err != nil {
		return err
	}
	if err := d.setAbstract(ja, a); err != nil {
		return err
	}
	if err := d.setDigest(ja, a); err != nil {
		return err
	}

	setPublicationDate(ja, d.pubDateFor(a))

	publisherItem := ja.CreateElement("publisher_item")
	if d.cfg.ElocationID && a.ElocationID != "" {
		itemNumber := publisherItem.CreateElement("item_number")
		itemNumber.CreateAttr("item_number_type", "article_number")
		itemNumber.SetText(a.ElocationID)
	}
	identifier := publisherItem.CreateElement("identifier")
	identifier.CreateAttr("id_type", "doi")
	identifier.SetText(a.DOI)

	if err := d.funding.Write(ja, a); err != nil {
		return err
	}

	d.setAccessIndicators(ja, a)

	// Fix the relations container position now; dataset and citation
	// entries append to it later.
	if relationsNeeded(a) {
		d.relationsProgram(ja)
	}

	d.setDatasets(ja, a)

	setArchiveLocations(ja, d.cfg.ArchiveLocations)

	d.setDOIData(ja, a)

	if err := d.setCitationList(ja, a); err != nil {
		return err
	}

	return d.setComponentList(ja, a)
}

func setJournalMetadata(parent *etree.Element, a *article.Article) {
	meta := parent.CreateElement("journal_metadata")
	meta.CreateAttr("language", "en")
	meta.CreateElement("full_title").SetText(a.JournalTitle)
	issn := meta.CreateElement("issn")
	issn.CreateAttr("media_type", "electronic")
	issn.SetText(a.JournalISSN)
}

func setPublicationDate(parent *etree.Element, pubDate time.Time) {
	pd := parent.CreateElement("publication_date")
	pd.CreateAttr("media_type", "online")
	pd.CreateElement("month").SetText(fmt.Sprintf("%02d", int(pubDate.Month())))
	pd.CreateElement("day").SetText(fmt.Sprintf("%02d", pubDate.Day()))
	pd.CreateElement("year").SetText(fmt.Sprintf("%d", pubDate.Year()))
}

// setAccessIndicators emits one license_ref per configured applies-to
// scope, all pointing at the article license. Nothing is emitted without
// a usable license or with no scopes configured.
func (d *Deposit) setAccessIndicators(parent *etree.Element, a *article.Article) {
	scopes := d.cfg.AccessIndicatorsAppliesTo
	if len(scopes) == 0 || !a.HasLicense() {
		return
	}
	program := parent.CreateElement("ai:program")
	program.CreateAttr("name", "AccessIndicators")
	for _, scope := range scopes {
		ref := program.CreateElement("ai:license_ref")
		ref.CreateAttr("applies_to", scope)
		ref.SetText(a.License.Href)
	}
}

func setArchiveLocations(parent *etree.Element, locations []string) {
	if len(locations) == 0 {
		return
	}
	archives := parent.CreateElement("archive_locations")
	for _, name := range locations {
		archives.CreateElement("archive").CreateAttr("name", name)
	}
}

func (d *Deposit) setDOIData(parent *etree.Element, a *article.Article) {
	doiData := parent.CreateElement("doi_data")
	doiData.CreateElement("doi").SetText(a.DOI)
	if resource := d.articleResourceURL(a, d.cfg.DOIPattern); resource != "" {
		doiData.CreateElement("resource").SetText(resource)
	}
	d.setTextMiningCollection(doiData, a)
}

// Output serializes the document, optionally pretty-printed with the given
// indent unit.
func (d *Deposit) Output(pretty bool, indent string) (string, error) {
	doc := d.doc.Copy()
	if pretty {
		if strings.Contains(indent, "\t") {
			doc.IndentTabs()
		} else {
			doc.Indent(len(indent))
		}
	}
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serializing deposit: %w", err)
	}
	return out, nil
}

// WriteFile serializes the deposit and writes it to dir as
// "<batch id>.xml", returning the file path.
func (d *Deposit) WriteFile(dir string) (string, error) {
	out, err := d.Output(false, "")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, d.batchID+".xml")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return "", fmt.Errorf("writing deposit file: %w", err)
	}
	return path, nil
}
