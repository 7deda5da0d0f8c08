package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/bkristol/outliner/internal/fragment"
)

// TextParser handles plain text files. Every paragraph is body text; the
// semantic pass is the only way headings can emerge from plain text.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*fragment.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := fragment.NewBuilder(stem(filename))
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			b.AddBody(current.String())
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Document(), nil
}
