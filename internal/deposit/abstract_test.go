package deposit

import (
	"strings"
	"testing"

	"github.com/openpress/depositor/internal/article"
)

func TestAbstractJATS(t *testing.T) {
	a := minimalArticle()
	a.Abstract = `<p>Cells respond to <italic>stress</italic> &amp; heat <ext-link xlink:href="https://example.org">here</ext-link>.</p>`

	out := render(t, []*article.Article{a}, testConfig())
	if !strings.Contains(out, "<jats:abstract>") {
		t.Fatalf("output should contain a jats abstract, got:\n%s", out)
	}
	if !strings.Contains(out, "<jats:p>Cells respond to <jats:italic>stress</jats:italic> &amp; heat here.</jats:p>") {
		t.Errorf("abstract should remap inline tags to jats and drop ext-link, got:\n%s", out)
	}
}

func TestAbstractStripped(t *testing.T) {
	a := minimalArticle()
	a.Abstract = `<p>Cells respond to <italic>stress</italic>.</p>`

	cfg := testConfig()
	cfg.JATSAbstract = false
	out := render(t, []*article.Article{a}, cfg)
	if !strings.Contains(out, "<jats:p>Cells respond to stress.</jats:p>") {
		t.Errorf("stripped abstract should keep paragraphs and drop italics, got:\n%s", out)
	}
	if strings.Contains(out, "jats:italic") {
		t.Errorf("stripped abstract should not carry inline tags, got:\n%s", out)
	}
}

func TestAbstractUnescapedCharacters(t *testing.T) {
	a := minimalArticle()
	a.Abstract = "<p>A & B, where x < 3 and <italic>y</italic> > 2.</p>"

	out := render(t, []*article.Article{a}, testConfig())
	if !strings.Contains(out, "A &amp; B") {
		t.Errorf("bare ampersand should survive as an entity, got:\n%s", out)
	}
	if !strings.Contains(out, "x &lt; 3") {
		t.Errorf("stray angle bracket should survive escaped, got:\n%s", out)
	}
	if !strings.Contains(out, "<jats:italic>y</jats:italic>") {
		t.Errorf("allowed tags should survive the escaping pass, got:\n%s", out)
	}
}

func TestDigest(t *testing.T) {
	a := minimalArticle()
	a.Abstract = "<p>The abstract.</p>"
	a.Digest = "<p>The digest.</p>"

	out := render(t, []*article.Article{a}, testConfig())
	if !strings.Contains(out, `<jats:abstract abstract-type="executive-summary">`) {
		t.Errorf("digest should carry the abstract-type marker, got:\n%s", out)
	}
	abstract := strings.Index(out, "<jats:abstract>")
	digest := strings.Index(out, `<jats:abstract abstract-type="executive-summary">`)
	if abstract < 0 || digest < 0 || abstract > digest {
		t.Errorf("digest should follow the abstract, got:\n%s", out)
	}
}

func TestDigestOmittedWhenEmpty(t *testing.T) {
	out := render(t, []*article.Article{minimalArticle()}, testConfig())
	if strings.Contains(out, "jats:abstract") {
		t.Errorf("abstract elements should be absent with no content, got:\n%s", out)
	}
}

func TestAbstractMalformedMarkup(t *testing.T) {
	a := minimalArticle()
	a.Abstract = "<p>Unclosed <italic>fragment</p>"

	_, err := New([]*article.Article{a}, testConfig(), WithPubDate(testPubDate))
	if err == nil {
		t.Fatal("New() should fail on malformed abstract markup")
	}
}
