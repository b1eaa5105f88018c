package dto

import (
	"time"

	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Profile   ProfileResponse `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
}

type ProfileResponse struct {
	ResumePath  string   `json:"resume_path,omitempty"`
	Skills      []string `json:"skills"`
	CompanyName string   `json:"company_name,omitempty"`
	Location    string   `json:"location,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
}

func FromUser(u user.User) UserResponse {
	skills := u.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		Profile: ProfileResponse{
			ResumePath:  u.Profile.ResumePath,
			Skills:      skills,
			CompanyName: u.Profile.CompanyName,
			Location:    u.Profile.Location,
			Logo:        u.Profile.Logo,
			Description: u.Profile.Description,
			Website:     u.Profile.Website,
		},
		CreatedAt: u.CreatedAt,
	}
}

func FromUsers(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
