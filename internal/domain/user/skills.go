package user

import "strings"

// MergeSkills unions a candidate's stored skills with newly extracted ones.
// Comparison is case-insensitive; the first-seen casing wins, with existing
// skills taking precedence over extracted ones. Existing order is preserved
// and novel skills are appended in extraction order.
func MergeSkills(existing, extracted []string) []string {
	out := make([]string, 0, len(existing)+len(extracted))
	seen := make(map[string]struct{}, len(existing)+len(extracted))

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	for _, s := range existing {
		add(s)
	}
	for _, s := range extracted {
		add(s)
	}
	return out
}
