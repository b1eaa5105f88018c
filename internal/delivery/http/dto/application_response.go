package dto

import (
	"time"

	"job-portal/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	ResumePath  string    `json:"resume_path"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		ResumePath:  a.ResumePath,
		Status:      string(a.Status),
		AppliedAt:   a.CreatedAt,
	}
}

func FromApplications(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}
