package markup

import (
	"fmt"

	"github.com/beevik/etree"
)

// ReparseNamespaces declares the prefixes a temporary wrapper root needs so
// a fragment parses in isolation. The final document root re-declares them.
const ReparseNamespaces = ` xmlns:jats="http://www.ncbi.nlm.nih.gov/JATS1"` +
	` xmlns:mml="http://www.w3.org/1998/Math/MathML"`

// ParseError reports a fragment that could not be parsed as well-formed
// markup after sanitization. It is fatal for the enclosing assembly: a
// malformed fragment cannot be safely spliced into the output document.
type ParseError struct {
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reparsing markup fragment: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AppendReparsed parses a wrapped fragment as an isolated document and
// splices its root element under parent. Namespace declarations on the
// temporary root are dropped; attribute names listed in keepAttrs are
// copied through.
func AppendReparsed(parent *etree.Element, tagged string, keepAttrs ...string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(tagged); err != nil {
		return &ParseError{Fragment: tagged, Err: err}
	}
	root := doc.Root()
	if root == nil {
		return &ParseError{Fragment: tagged, Err: fmt.Errorf("fragment has no root element")}
	}

	el := root.Copy()
	var drop []string
	for _, attr := range el.Attr {
		key := attr.Key
		if attr.Space != "" {
			key = attr.Space + ":" + attr.Key
		}
		if !kept(key, keepAttrs) {
			drop = append(drop, key)
		}
	}
	for _, key := range drop {
		el.RemoveAttr(key)
	}

	parent.AddChild(el)
	return nil
}

// AppendCleanTag strips all inline markup from content and attaches it
// under parent as a new element with the given tag.
func AppendCleanTag(parent *etree.Element, tag, content string) error {
	converted := EscapeAmpersand(content)
	converted = EscapeUnmatchedAngleBrackets(converted, allowedTags)
	converted = CleanTags(converted)
	tagged := "<" + tag + ReparseNamespaces + ">" + converted + "</" + tag + ">"
	return AppendReparsed(parent, tagged)
}

// AppendInlineTag converts inline markup in content to the destination face
// markup vocabulary and attaches it under parent as a new element.
func AppendInlineTag(parent *etree.Element, tag, content string) error {
	converted := EscapeAmpersand(content)
	converted = EscapeUnmatchedAngleBrackets(converted, allowedTags)
	converted = ConvertFaceMarkup(converted)
	tagged := "<" + tag + ReparseNamespaces + ">" + converted + "</" + tag + ">"
	return AppendReparsed(parent, tagged)
}
