package deposit

import (
	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
)

// SectionWriter builds one article-level block under parent. The
// contributor and funding blocks are supplied through this interface so
// callers can substitute their own builders.
type SectionWriter interface {
	Write(parent *etree.Element, a *article.Article) error
}

// SectionWriterFunc adapts a function to the SectionWriter interface.
type SectionWriterFunc func(parent *etree.Element, a *article.Article) error

// Write calls f.
func (f SectionWriterFunc) Write(parent *etree.Element, a *article.Article) error {
	return f(parent, a)
}

// ContributorWriter returns the built-in contributor block builder. Roles
// are mapped through the configured role map; contributors with unmapped
// roles are skipped.
func ContributorWriter(roles map[string]string) SectionWriter {
	return SectionWriterFunc(func(parent *etree.Element, a *article.Article) error {
		var mapped []contributorEntry
		for _, c := range a.Contributors {
			role, ok := roles[c.Role]
			if !ok {
				continue
			}
			mapped = append(mapped, contributorEntry{contributor: c, role: role})
		}
		if len(mapped) == 0 {
			return nil
		}

		contributors := parent.CreateElement("contributors")
		sequence := "first"
		for _, entry := range mapped {
			setContributor(contributors, entry, sequence)
			sequence = "additional"
		}
		return nil
	})
}

type contributorEntry struct {
	contributor article.Contributor
	role        string
}

func setContributor(parent *etree.Element, entry contributorEntry, sequence string) {
	c := entry.contributor
	if c.Surname == "" && c.Collab != "" {
		org := parent.CreateElement("organization")
		org.CreateAttr("sequence", sequence)
		org.CreateAttr("contributor_role", entry.role)
		org.SetText(c.Collab)
		return
	}

	person := parent.CreateElement("person_name")
	person.CreateAttr("sequence", sequence)
	person.CreateAttr("contributor_role", entry.role)
	if c.GivenNames != "" {
		person.CreateElement("given_name").SetText(c.GivenNames)
	}
	person.CreateElement("surname").SetText(c.Surname)
	if c.ORCID != "" {
		orcid := person.CreateElement("ORCID")
		orcid.CreateAttr("authenticated", "true")
		orcid.SetText(c.ORCID)
	}
}
