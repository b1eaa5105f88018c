package dto

import (
	"job-portal/internal/usecase"

	"github.com/google/uuid"
)

type CompanySummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	Logo     string    `json:"logo,omitempty"`
	Website  string    `json:"website,omitempty"`
	JobCount int       `json:"job_count"`
}

type CompanyDetailsResponse struct {
	CompanySummaryResponse
	Description string        `json:"description,omitempty"`
	Jobs        []JobResponse `json:"jobs"`
}

func FromCompanySummary(s usecase.CompanySummary) CompanySummaryResponse {
	return CompanySummaryResponse{
		ID:       s.Company.ID,
		Name:     s.Company.DisplayName(),
		Location: s.Company.Profile.Location,
		Logo:     s.Company.Profile.Logo,
		Website:  s.Company.Profile.Website,
		JobCount: s.JobCount,
	}
}

func FromCompanySummaries(summaries []usecase.CompanySummary) []CompanySummaryResponse {
	out := make([]CompanySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, FromCompanySummary(s))
	}
	return out
}

func FromCompanyDetails(d usecase.CompanyDetails) CompanyDetailsResponse {
	return CompanyDetailsResponse{
		CompanySummaryResponse: CompanySummaryResponse{
			ID:       d.Company.ID,
			Name:     d.Company.DisplayName(),
			Location: d.Company.Profile.Location,
			Logo:     d.Company.Profile.Logo,
			Website:  d.Company.Profile.Website,
			JobCount: len(d.Jobs),
		},
		Description: d.Company.Profile.Description,
		Jobs:        FromJobs(d.Jobs),
	}
}
