package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_HeadingsAndBody(t *testing.T) {
	input := `<html><head><title>ignored</title></head><body>
<h1>Main Title</h1>
<p>Intro paragraph.</p>
<h2>Section One</h2>
<p>Section body.</p>
</body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	frags := doc.Fragments()
	if len(frags) != 4 {
		t.Fatalf("expected 4 fragments, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text != "Main Title" || frags[0].Font != "Synthetic-Bold" {
		t.Errorf("unexpected first fragment: %+v", frags[0])
	}
	if frags[1].Text != "Intro paragraph." || frags[1].Font != "Synthetic" {
		t.Errorf("unexpected second fragment: %+v", frags[1])
	}
	if frags[2].Text != "Section One" {
		t.Errorf("unexpected third fragment: %+v", frags[2])
	}
	if frags[0].Size <= frags[2].Size {
		t.Error("h1 must synthesize a larger size than h2")
	}
}

func TestHTMLParser_SkipsChrome(t *testing.T) {
	input := `<html><body>
<nav><a href="/">Home</a></nav>
<script>var x = 1;</script>
<header>Site Header</header>
<p>Real content.</p>
<footer>Copyright</footer>
</body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	frags := doc.Fragments()
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text != "Real content." {
		t.Errorf("unexpected fragment: %+v", frags[0])
	}
}

func TestHTMLParser_ListItems(t *testing.T) {
	input := `<html><body><ul><li>alpha</li><li>beta</li></ul></body></html>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "list.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frags := doc.Fragments()
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Text != "alpha" || frags[1].Text != "beta" {
		t.Errorf("unexpected list fragments: %+v", frags)
	}
}
