package resume

import (
	"errors"
	"testing"
)

func TestExtractText_PlainTextPassthrough(t *testing.T) {
	ex := NewTextExtractor()

	got, err := ex.ExtractText([]byte("  Senior   GO\nDeveloper "), "resume.txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "senior go developer" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	ex := NewTextExtractor()

	_, err := ex.ExtractText([]byte("not a pdf at all"), "resume.pdf")
	if !errors.Is(err, ErrUnreadableDocument) {
		t.Fatalf("expected ErrUnreadableDocument, got %v", err)
	}
}

func TestNormalizeText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello   World", "hello world"},
		{"line\none\n\nline two", "line one line two"},
		{"\t Tabs\tand spaces ", "tabs and spaces"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeText(tc.in); got != tc.want {
			t.Fatalf("normalizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
