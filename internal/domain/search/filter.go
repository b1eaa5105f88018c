package search

import (
	"strings"

	"job-portal/internal/domain/job"
)

// Filter holds the browse predicates. Empty values impose no restriction: an
// empty type or level selection accepts every job, and a zero MinSalary skips
// the salary check entirely. Active predicates combine with AND.
type Filter struct {
	TextQuery        string
	LocationQuery    string
	JobTypes         []job.Type
	ExperienceLevels []job.ExperienceLevel
	MinSalary        int
}

func (f Filter) IsZero() bool {
	return f.TextQuery == "" &&
		f.LocationQuery == "" &&
		len(f.JobTypes) == 0 &&
		len(f.ExperienceLevels) == 0 &&
		f.MinSalary <= 0
}

// Apply filters the catalog, preserving input order. Filtering never re-sorts;
// ranking is the matcher's concern.
func Apply(jobs []job.Job, f Filter) []job.Job {
	text := strings.ToLower(strings.TrimSpace(f.TextQuery))
	loc := strings.ToLower(strings.TrimSpace(f.LocationQuery))

	types := make(map[job.Type]struct{}, len(f.JobTypes))
	for _, t := range f.JobTypes {
		types[t] = struct{}{}
	}
	levels := make(map[job.ExperienceLevel]struct{}, len(f.ExperienceLevels))
	for _, l := range f.ExperienceLevels {
		levels[l] = struct{}{}
	}

	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if text != "" &&
			!strings.Contains(strings.ToLower(j.Title), text) &&
			!strings.Contains(strings.ToLower(j.CompanyName), text) {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(j.Location), loc) {
			continue
		}
		if len(types) > 0 {
			if _, ok := types[j.JobType]; !ok {
				continue
			}
		}
		if len(levels) > 0 {
			if _, ok := levels[j.ExperienceLevel]; !ok {
				continue
			}
		}
		if f.MinSalary > 0 {
			// No salary on record means the >= comparison cannot pass.
			if j.Salary == nil || *j.Salary < f.MinSalary {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

// Paginate returns the 1-indexed page of the given size, clipped to the
// available length. Pages past the end come back empty, not as an error.
func Paginate(jobs []job.Job, page, size int) []job.Job {
	if page < 1 || size < 1 {
		return []job.Job{}
	}
	start := (page - 1) * size
	if start >= len(jobs) {
		return []job.Job{}
	}
	end := start + size
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}
