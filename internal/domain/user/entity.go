package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile carries the role-specific fields. Candidates use ResumePath and
// Skills, employers the company fields; unused fields stay empty.
type Profile struct {
	ResumePath  string
	Skills      []string
	CompanyName string
	Location    string
	Logo        string
	Description string
	Website     string
}

func (u User) DisplayName() string {
	if u.Role == RoleEmployer && u.Profile.CompanyName != "" {
		return u.Profile.CompanyName
	}
	return u.Username
}
