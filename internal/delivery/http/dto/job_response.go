package dto

import (
	"time"

	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CompanyID       uuid.UUID `json:"company_id"`
	CompanyName     string    `json:"company_name"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	Salary          *int      `json:"salary"`
	Requirements    []string  `json:"requirements"`
	PostedDate      time.Time `json:"posted_date"`
}

func FromJob(j job.Job) JobResponse {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		CompanyID:       j.CompanyID,
		CompanyName:     j.CompanyName,
		Location:        j.Location,
		JobType:         string(j.JobType),
		ExperienceLevel: string(j.ExperienceLevel),
		Salary:          j.Salary,
		Requirements:    reqs,
		PostedDate:      j.CreatedAt,
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
