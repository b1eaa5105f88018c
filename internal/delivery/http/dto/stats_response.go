package dto

import "job-portal/internal/usecase"

type PortalStatsResponse struct {
	Users        int `json:"users"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
}

func FromPortalStats(s usecase.PortalStats) PortalStatsResponse {
	return PortalStatsResponse{Users: s.UserCount, Jobs: s.JobCount, Applications: s.ApplicationCount}
}
