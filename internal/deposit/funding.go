package deposit

import (
	"github.com/beevik/etree"

	"github.com/openpress/depositor/internal/article"
)

// FundingWriter returns the built-in funding block builder: one fundgroup
// assertion per award, holding the funder name (with its registry
// identifier when known) and the award numbers.
func FundingWriter() SectionWriter {
	return SectionWriterFunc(func(parent *etree.Element, a *article.Article) error {
		if len(a.Funding) == 0 {
			return nil
		}
		program := parent.CreateElement("fr:program")
		program.CreateAttr("name", "fundref")
		for _, award := range a.Funding {
			group := program.CreateElement("fr:assertion")
			group.CreateAttr("name", "fundgroup")
			if award.Funder != "" {
				funder := group.CreateElement("fr:assertion")
				funder.CreateAttr("name", "funder_name")
				funder.SetText(award.Funder)
				if award.FunderDOI != "" {
					id := funder.CreateElement("fr:assertion")
					id.CreateAttr("name", "funder_identifier")
					id.SetText(award.FunderDOI)
				}
			}
			for _, awardID := range award.AwardIDs {
				number := group.CreateElement("fr:assertion")
				number.CreateAttr("name", "award_number")
				number.SetText(awardID)
			}
		}
		return nil
	})
}
