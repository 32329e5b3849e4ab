package article

// Dataset types. Previously published datasets are cited as "references";
// datasets generated for the current work are "isSupplementedBy".
const (
	DatasetPrevPublished = "prev_published_datasets"
	DatasetGenerated     = "datasets"
)

// Dataset is a data resource associated with an article.
type Dataset struct {
	Title       string `json:"title,omitempty"`
	Type        string `json:"type,omitempty"` // DatasetPrevPublished or DatasetGenerated
	DOI         string `json:"doi,omitempty"`
	AccessionID string `json:"accession_id,omitempty"`
	URI         string `json:"uri,omitempty"`
}
