package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

type jobSearchCacheKeyInput struct {
	Text             string   `json:"text"`
	Location         string   `json:"location"`
	JobTypes         []string `json:"job_types"`
	ExperienceLevels []string `json:"experience_levels"`
	MinSalary        int      `json:"min_salary"`
	Page             int      `json:"page"`
	PageSize         int      `json:"page_size"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeSet(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		v = normalizeSearchValue(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func JobsSearchCacheKey(params JobSearchParams) string {
	types := make([]string, 0, len(params.JobTypes))
	for _, t := range params.JobTypes {
		types = append(types, string(t))
	}
	levels := make([]string, 0, len(params.ExperienceLevels))
	for _, l := range params.ExperienceLevels {
		levels = append(levels, string(l))
	}

	in := jobSearchCacheKeyInput{
		Text:             normalizeSearchValue(params.TextQuery),
		Location:         normalizeSearchValue(params.LocationQuery),
		JobTypes:         normalizeSet(types),
		ExperienceLevels: normalizeSet(levels),
		MinSalary:        params.MinSalary,
		Page:             params.Page,
		PageSize:         params.PageSize,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
