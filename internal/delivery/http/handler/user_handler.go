package handler

import (
	"errors"
	"io"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	users   usecase.UserUsecase
	resumes usecase.ResumeUsecase
}

func NewUserHandler(users usecase.UserUsecase, resumes usecase.ResumeUsecase) *UserHandler {
	return &UserHandler{users: users, resumes: resumes}
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.users.GetProfile(c.Context(), uid)
	if err != nil {
		if errors.Is(err, usecase.ErrCandidateNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		if errors.Is(err, usecase.ErrUnauthorized) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(usr))
}

// UploadResume accepts a multipart "resume" file, runs extraction and skill
// merging, and persists the updated profile.
func (h *UserHandler) UploadResume(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is unreadable", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is unreadable", nil, err)
	}

	result, err := h.resumes.UploadResume(c.Context(), uid, fh.Filename, data)
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Resume processed", dto.FromResumeUpload(result))
}

func (h *UserHandler) ListCompanies(c fiber.Ctx) error {
	summaries, err := h.users.ListCompanies(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompanySummaries(summaries))
}

func (h *UserHandler) GetCompany(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", nil, err)
	}

	details, err := h.users.GetCompanyDetails(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompanyDetails(details))
}

func mapResumeUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedResume):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Only PDF, DOC and DOCX resumes up to 5 MB are accepted", nil, err)
	case errors.Is(err, usecase.ErrUnreadableResume):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Could not extract text from the uploaded resume", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func currentUserID(c fiber.Ctx) (uuid.UUID, bool) {
	uid, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		return uuid.Nil, false
	}
	return uid, true
}
