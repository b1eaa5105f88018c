package handler

import (
	"errors"
	"strconv"
	"strings"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs     usecase.JobUsecase
	search   usecase.JobSearchUsecase
	matching usecase.MatchingUsecase
	users    usecase.UserUsecase
}

type jobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	Salary          *int     `json:"salary"`
	Requirements    []string `json:"requirements"`
}

func NewJobHandler(jobs usecase.JobUsecase, search usecase.JobSearchUsecase, matching usecase.MatchingUsecase, users usecase.UserUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, search: search, matching: matching, users: users}
}

// Search filters the catalog with AND-combined query params. Empty params
// leave their dimension unrestricted.
func (h *JobHandler) Search(c fiber.Ctx) error {
	page, err := parseQueryInt(c, "page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	pageSize, err := parseQueryInt(c, "page_size", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	minSalary, err := parseQueryInt(c, "min_salary", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params := usecase.JobSearchParams{
		TextQuery:        c.Query("q"),
		LocationQuery:    c.Query("location"),
		JobTypes:         parseJobTypes(c.Query("job_type")),
		ExperienceLevels: parseExperienceLevels(c.Query("experience_level")),
		MinSalary:        minSalary,
		Page:             page,
		PageSize:         pageSize,
	}

	result, err := h.search.SearchJobs(c.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Paged(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(result.Jobs), response.PageMeta{
		Page:     result.Page,
		PageSize: result.Size,
		Total:    result.Total,
	})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, appErr := h.actor(c)
	if appErr != nil {
		return appErr
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.CreateJob(c.Context(), actor, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job posted", dto.FromJob(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	actor, appErr := h.actor(c)
	if appErr != nil {
		return appErr
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.UpdateJob(c.Context(), actor, id, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", dto.FromJob(j))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	actor, appErr := h.actor(c)
	if appErr != nil {
		return appErr
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.jobs.DeleteJob(c.Context(), actor, id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

// CompanyJobs lists the authenticated employer's own postings.
func (h *JobHandler) CompanyJobs(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobs, err := h.jobs.ListCompanyJobs(c.Context(), uid)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

// Matched ranks the whole catalog against the candidate's stored skills,
// highest score first. Zero-score jobs are omitted.
func (h *JobHandler) Matched(c fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	results, err := h.matching.MatchJobs(c.Context(), uid)
	if err != nil {
		if errors.Is(err, usecase.ErrCandidateNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchResults(results))
}

func (h *JobHandler) actor(c fiber.Ctx) (user.User, error) {
	uid, ok := currentUserID(c)
	if !ok {
		return user.User{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	usr, err := h.users.GetProfile(c.Context(), uid)
	if err != nil {
		return user.User{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	}
	return usr, nil
}

func jobInputFromRequest(req jobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         job.Type(req.JobType),
		ExperienceLevel: job.ExperienceLevel(req.ExperienceLevel),
		Salary:          req.Salary,
		Requirements:    req.Requirements,
	}
}

func parseJobTypes(s string) []job.Type {
	var out []job.Type
	for _, p := range splitQueryList(s) {
		out = append(out, job.Type(p))
	}
	return out
}

func parseExperienceLevels(s string) []job.ExperienceLevel {
	var out []job.ExperienceLevel
	for _, p := range splitQueryList(s) {
		out = append(out, job.ExperienceLevel(p))
	}
	return out
}

func splitQueryList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
