package parser

import "testing"

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"doc.txt", false},
		{"doc.md", false},
		{"doc.markdown", false},
		{"doc.html", false},
		{"doc.htm", false},
		{"doc.pdf", false},
		{"doc.docx", false},
		{"DOC.PDF", false},
		{"doc.xlsx", true},
		{"doc", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("report.pdf") {
		t.Error("pdf should be supported")
	}
	if !IsSupportedExtension("notes.markdown") {
		t.Error("every extension ForFile accepts should pass the filter")
	}
	if !IsSupportedExtension("notes.TXT") {
		t.Error("extension check should be case-insensitive")
	}
	if IsSupportedExtension("archive.zip") {
		t.Error("zip should not be supported")
	}
	if IsSupportedExtension("noextension") {
		t.Error("missing extension should not be supported")
	}
}

func TestStem(t *testing.T) {
	if got := stem("report.pdf"); got != "report" {
		t.Errorf("stem = %q", got)
	}
	if got := stem("archive.tar.gz"); got != "archive.tar" {
		t.Errorf("stem = %q", got)
	}
	if got := stem("noext"); got != "noext" {
		t.Errorf("stem = %q", got)
	}
}
