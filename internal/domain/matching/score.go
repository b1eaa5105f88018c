package matching

import (
	"math"
	"sort"
	"strings"

	"job-portal/internal/domain/job"
)

// Result pairs a job with its match score. Scores live in [0,100] and are
// recomputed per request, never persisted.
type Result struct {
	Job   job.Job
	Score float64
}

// Score returns the percentage of requirements the candidate satisfies. A
// requirement counts as satisfied when at least one candidate skill contains
// it as a case-insensitive substring. Jobs without requirements always score 0.
// The result is rounded half away from zero to two decimals so equal inputs
// compare equal across platforms.
func Score(candidateSkills []string, requirements []string) float64 {
	if len(requirements) == 0 {
		return 0
	}

	lowered := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		lowered = append(lowered, s)
	}
	if len(lowered) == 0 {
		return 0
	}

	matched := 0
	for _, req := range requirements {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		for _, s := range lowered {
			if strings.Contains(s, r) {
				matched++
				break
			}
		}
	}

	score := float64(matched) / float64(len(requirements)) * 100
	return roundTwo(score)
}

// Rank scores every job in the catalog against the candidate's skills, drops
// zero scores and orders the rest by descending score. Ties keep catalog order.
func Rank(candidateSkills []string, jobs []job.Job) []Result {
	out := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		s := Score(candidateSkills, j.Requirements)
		if s <= 0 {
			continue
		}
		out = append(out, Result{Job: j, Score: s})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Score > out[k].Score
	})
	return out
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
