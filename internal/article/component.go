package article

// Component is a sub-part of an article (figure, table, video, supplementary
// file) eligible for its own DOI and resource link.
type Component struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"` // Raw markup string
	MimeType    string       `json:"mime_type,omitempty"`
	DOI         string       `json:"doi,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission is a copyright or license statement attached to a component.
type Permission struct {
	CopyrightStatement string `json:"copyright_statement,omitempty"`
	License            string `json:"license,omitempty"`
}

// HasPermissionText reports whether any permission record carries a
// copyright statement or license value.
func (c *Component) HasPermissionText() bool {
	for _, p := range c.Permissions {
		if p.CopyrightStatement != "" || p.License != "" {
			return true
		}
	}
	return false
}
