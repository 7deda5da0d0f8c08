package fragment

// Structured formats (Markdown, HTML, DOCX) carry explicit heading levels
// instead of font metrics. The sizes below translate those levels into the
// size-based model the outline pipeline works on: the body size sits at 10
// and each heading level gets a distinct size above it.

// BodySize is the synthesized font size for body text in structured formats.
const BodySize = 10

var headingSizes = [...]int{18, 16, 14, 12, 11, 11}

// SizeForHeadingLevel maps a structural heading level (1-6) to a synthesized
// font size. Levels outside that range get the body size.
func SizeForHeadingLevel(level int) int {
	if level < 1 || level > len(headingSizes) {
		return BodySize
	}
	return headingSizes[level-1]
}

// Builder accumulates fragments for structured formats, synthesizing page
// geometry so the pipeline's margin filtering never clips real content.
type Builder struct {
	name    string
	cursor  float64
	frags   []Fragment
	leading float64
}

// NewBuilder creates a Builder for a single synthesized page.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:    name,
		cursor:  60, // start below the top margin band
		leading: 14,
	}
}

// AddHeading appends a heading fragment at the synthesized size for level.
func (b *Builder) AddHeading(text string, level int) {
	b.add(text, SizeForHeadingLevel(level), "Synthetic-Bold")
}

// AddBody appends a body-text fragment.
func (b *Builder) AddBody(text string) {
	b.add(text, BodySize, "Synthetic")
}

func (b *Builder) add(text string, size int, font string) {
	if text == "" {
		return
	}
	b.frags = append(b.frags, Fragment{
		Text: text,
		Size: size,
		Font: font,
		Y:    b.cursor,
		Page: 1,
	})
	b.cursor += b.leading
}

// Document finalizes the synthesized single-page document. The page height
// leaves room below the last fragment so the bottom margin band stays empty.
func (b *Builder) Document() *Document {
	height := b.cursor + 100
	pages := []Page{}
	if len(b.frags) > 0 {
		frags := make([]Fragment, len(b.frags))
		copy(frags, b.frags)
		for i := range frags {
			frags[i].PageHeight = height
		}
		pages = append(pages, Page{Number: 1, Height: height, Fragments: frags})
	}
	return &Document{Name: b.name, Pages: pages}
}
