package resume

import (
	"regexp"
	"strings"
)

// Signal is what a resume yields after extraction: the normalized text, the
// first contact email found (empty when absent) and the recognized skills.
// Absence of either is a normal result, not an error.
type Signal struct {
	Text   string
	Email  string
	Skills []string
}

var emailRe = regexp.MustCompile(`[A-Za-z0-9._-]+@[A-Za-z0-9._-]+\.[A-Za-z0-9_-]+`)

// SignalExtractor finds a contact email and known skills in extracted resume
// text. The vocabulary is injected so deployments can extend the recognized
// keyword list without code changes.
//
// Skill detection is plain substring matching over the lowercased text. That
// is deliberately imprecise: "java" matches inside "javascript" as well as on
// its own. The vocabulary is the unit of meaning here, not word boundaries;
// replacing the policy means replacing this type behind the same contract.
type SignalExtractor struct {
	vocabulary []string
}

func NewSignalExtractor(vocabulary []string) *SignalExtractor {
	vocab := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		vocab = append(vocab, v)
	}
	return &SignalExtractor{vocabulary: vocab}
}

// Extract is a pure query over the text: identical input always yields an
// identical signal, and nothing is mutated.
func (s *SignalExtractor) Extract(text string) Signal {
	sig := Signal{Text: text, Skills: make([]string, 0, len(s.vocabulary))}

	sig.Email = emailRe.FindString(text)

	for _, skill := range s.vocabulary {
		if strings.Contains(text, skill) {
			sig.Skills = append(sig.Skills, skill)
		}
	}
	return sig
}

// Vocabulary returns a copy of the configured keyword list.
func (s *SignalExtractor) Vocabulary() []string {
	out := make([]string, len(s.vocabulary))
	copy(out, s.vocabulary)
	return out
}
