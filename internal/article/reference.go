package article

// Publication types that influence citation construction.
const (
	TypeJournal  = "journal"
	TypeConfProc = "confproc"
	TypePatent   = "patent"
	TypePreprint = "preprint"
	TypeReport   = "report"
	TypeSoftware = "software"
	TypeThesis   = "thesis"
	TypeWeb      = "web"
	TypeWebpage  = "webpage"
	TypeData     = "data"
)

// Author roles within a reference author list.
const (
	RoleAuthor = "author"
	RoleEditor = "editor"
)

// Reference is one entry of an article's reference list.
// Ordinal position is implied by slice order (1-based).
type Reference struct {
	ID              string   `json:"id,omitempty"` // Stable citation key, if the source assigned one
	PublicationType string   `json:"publication_type,omitempty"`
	Source          string   `json:"source,omitempty"` // Journal or volume title
	Authors         []Author `json:"authors,omitempty"`
	Volume          string   `json:"volume,omitempty"`
	Issue           string   `json:"issue,omitempty"`
	FirstPage       string   `json:"first_page,omitempty"`
	ElocationID     string   `json:"elocation_id,omitempty"`
	Year            string   `json:"year,omitempty"`         // Literal year value, may be e.g. "2015a"
	YearNumeric     int      `json:"year_numeric,omitempty"` // 0 if unknown
	ArticleTitle    string   `json:"article_title,omitempty"`
	DataTitle       string   `json:"data_title,omitempty"`
	DOI             string   `json:"doi,omitempty"`
	ISBN            string   `json:"isbn,omitempty"`
	Accession       string   `json:"accession,omitempty"`
	PMID            string   `json:"pmid,omitempty"`
	URI             string   `json:"uri,omitempty"`
	DateInCitation  string   `json:"date_in_citation,omitempty"` // Access date annotation for web citations
	PublisherLoc    string   `json:"publisher_loc,omitempty"`
	PublisherName   string   `json:"publisher_name,omitempty"`
	VersionLabel    string   `json:"version,omitempty"` // Software or dataset version
	Patent          string   `json:"patent,omitempty"`
	ConfName        string   `json:"conf_name,omitempty"`
}

// Author is one name in a reference author list.
type Author struct {
	Role       string `json:"role,omitempty"` // "author" or "editor"
	Surname    string `json:"surname,omitempty"`
	GivenNames string `json:"given_names,omitempty"`
	Collab     string `json:"collab,omitempty"` // Collaboration/group name when no personal name
}

// DisplayName renders the author as "Surname GivenNames", falling back to
// the collaboration name. Returns "" when no name parts are present.
func (au Author) DisplayName() string {
	if au.Surname != "" {
		if au.GivenNames != "" {
			return au.Surname + " " + au.GivenNames
		}
		return au.Surname
	}
	return au.Collab
}
