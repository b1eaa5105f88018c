package resume

import (
	"reflect"
	"testing"
)

func TestExtract_EmailAndSkills(t *testing.T) {
	ex := NewSignalExtractor([]string{"react", "python", "node", "aws"})

	sig := ex.Extract("contact me at jane.doe@example.com, skills: react, node, aws")

	if sig.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q, want jane.doe@example.com", sig.Email)
	}
	want := []string{"react", "node", "aws"}
	if !reflect.DeepEqual(sig.Skills, want) {
		t.Fatalf("skills = %v, want %v", sig.Skills, want)
	}
}

func TestExtract_NoMatchesIsNotAnError(t *testing.T) {
	ex := NewSignalExtractor([]string{"react", "python"})

	sig := ex.Extract("plumber with ten years of experience")

	if sig.Email != "" {
		t.Fatalf("email = %q, want empty", sig.Email)
	}
	if len(sig.Skills) != 0 {
		t.Fatalf("skills = %v, want empty", sig.Skills)
	}
}

func TestExtract_FirstEmailWins(t *testing.T) {
	ex := NewSignalExtractor(nil)

	sig := ex.Extract("a@b.com then c@d.org")
	if sig.Email != "a@b.com" {
		t.Fatalf("email = %q, want a@b.com", sig.Email)
	}
}

func TestExtract_SubstringFalsePositiveIsAccepted(t *testing.T) {
	// "java" occurring inside "javascript" counts; the matcher is a keyword
	// scan, not a word-boundary parser.
	ex := NewSignalExtractor([]string{"javascript", "java"})

	sig := ex.Extract("five years of javascript")
	want := []string{"javascript", "java"}
	if !reflect.DeepEqual(sig.Skills, want) {
		t.Fatalf("skills = %v, want %v", sig.Skills, want)
	}
}

func TestExtract_VocabularyOrderPreserved(t *testing.T) {
	ex := NewSignalExtractor([]string{"docker", "aws", "sql"})

	sig := ex.Extract("sql and aws and docker")
	want := []string{"docker", "aws", "sql"}
	if !reflect.DeepEqual(sig.Skills, want) {
		t.Fatalf("skills = %v, want %v", sig.Skills, want)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	ex := NewSignalExtractor([]string{"react", "node"})
	text := "react developer, reach me: dev@example.io"

	first := ex.Extract(text)
	second := ex.Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not deterministic: %+v vs %+v", first, second)
	}
}

func TestNewSignalExtractor_NormalizesVocabulary(t *testing.T) {
	ex := NewSignalExtractor([]string{" React ", "", "NODE"})
	want := []string{"react", "node"}
	if !reflect.DeepEqual(ex.Vocabulary(), want) {
		t.Fatalf("vocabulary = %v, want %v", ex.Vocabulary(), want)
	}
}
