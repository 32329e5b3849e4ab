package article

// Contributor is an article-level contributor (author, editor, group author).
type Contributor struct {
	Role       string `json:"role"` // Source role tag, mapped through config to a Crossref role
	Surname    string `json:"surname,omitempty"`
	GivenNames string `json:"given_names,omitempty"`
	Collab     string `json:"collab,omitempty"` // Group author name when no personal name
	ORCID      string `json:"orcid,omitempty"`  // Full ORCID URI
}

// Award is a funding award attached to an article.
type Award struct {
	Funder    string   `json:"funder"`
	FunderDOI string   `json:"funder_doi,omitempty"` // Open Funder Registry DOI
	AwardIDs  []string `json:"award_ids,omitempty"`
}
