package fragment

// Fragment is one positioned text run extracted from a document page.
// Y is measured from the top of the page, so ascending Y is reading order.
type Fragment struct {
	Text       string  // Raw text of the run
	Size       int     // Font size rounded to the nearest unit
	Font       string  // Font name as reported by the source format
	X          float64 // Horizontal origin
	Y          float64 // Vertical origin, from the top of the page
	Page       int     // 1-based page number
	PageHeight float64 // Height of the page the fragment sits on
}

// Page is an ordered list of fragments on a single page.
type Page struct {
	Number    int
	Height    float64
	Fragments []Fragment
}

// Document is the parsed form every parser produces.
type Document struct {
	Name  string // Source filename without extension
	Pages []Page
}

// Fragments returns all fragments in page-major, encounter order.
func (d *Document) Fragments() []Fragment {
	var out []Fragment
	for _, p := range d.Pages {
		out = append(out, p.Fragments...)
	}
	return out
}

// Empty reports whether the document carries no text at all.
func (d *Document) Empty() bool {
	for _, p := range d.Pages {
		if len(p.Fragments) > 0 {
			return false
		}
	}
	return true
}
