package dto

import "job-portal/internal/domain/matching"

type MatchedJobResponse struct {
	Job        JobResponse `json:"job"`
	MatchScore float64     `json:"match_score"`
}

func FromMatchResults(results []matching.Result) []MatchedJobResponse {
	out := make([]MatchedJobResponse, 0, len(results))
	for _, r := range results {
		out = append(out, MatchedJobResponse{Job: FromJob(r.Job), MatchScore: r.Score})
	}
	return out
}
