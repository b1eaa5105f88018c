package dto

import "job-portal/internal/usecase"

type ResumeUploadResponse struct {
	ResumePath string   `json:"resume_path"`
	Email      string   `json:"email,omitempty"`
	Skills     []string `json:"skills"`
}

func FromResumeUpload(r usecase.ResumeUploadResult) ResumeUploadResponse {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeUploadResponse{ResumePath: r.ResumePath, Email: r.Email, Skills: skills}
}
