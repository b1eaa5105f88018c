package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime Type = "Full Time"
	TypePartTime Type = "Part Time"
	TypeRemote   Type = "Remote"
	TypeContract Type = "Contract"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeRemote, TypeContract:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry Level"
	ExperienceMid    ExperienceLevel = "Mid Level"
	ExperienceSenior ExperienceLevel = "Senior Level"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

type Job struct {
	ID              uuid.UUID
	Title           string
	Description     string
	CompanyID       uuid.UUID
	CompanyName     string
	Location        string
	JobType         Type
	ExperienceLevel ExperienceLevel
	Salary          *int
	Requirements    []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
