package handler

import (
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	apps  usecase.ApplicationUsecase
	users usecase.UserUsecase
}

type applyRequest struct {
	ResumePath string `json:"resume_path"`
}

func NewApplicationHandler(apps usecase.ApplicationUsecase, users usecase.UserUsecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, users: users}
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req applyRequest
	// Body is optional; without it the stored profile resume is used.
	_ = c.Bind().Body(&req)

	app, err := h.apps.Apply(c.Context(), uid, jobID, req.ResumePath)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.FromApplication(app))
}

func (h *ApplicationHandler) HasApplied(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	applied, err := h.apps.HasApplied(c.Context(), uid, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]bool{"applied": applied})
}

// ListForJob exposes a posting's applications to its owner (or an admin).
func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	actor, err := h.users.GetProfile(c.Context(), uid)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	}

	apps, err := h.apps.ListForJob(c.Context(), actor, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(apps))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.apps.ListForCandidate(c.Context(), uid)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(apps))
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrResumeRequired):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Upload a resume before applying", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
