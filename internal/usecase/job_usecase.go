package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobInput struct {
	Title           string
	Description     string
	Location        string
	JobType         job.Type
	ExperienceLevel job.ExperienceLevel
	Salary          *int
	Requirements    []string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor user.User, in JobInput) (job.Job, error)
	UpdateJob(ctx context.Context, actor user.User, jobID uuid.UUID, in JobInput) (job.Job, error)
	DeleteJob(ctx context.Context, actor user.User, jobID uuid.UUID) error
	GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListCompanyJobs(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
}

// jobEventNotifier receives job catalog changes; the websocket hub implements it.
type jobEventNotifier interface {
	JobPosted(j job.Job)
}

type Jobs struct {
	jobs     repository.JobRepository
	cache    SearchCache
	notifier jobEventNotifier
}

func NewJobUsecase(jobs repository.JobRepository, cache SearchCache, notifier jobEventNotifier) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, notifier: notifier}
}

func (u *Jobs) CreateJob(ctx context.Context, actor user.User, in JobInput) (job.Job, error) {
	if actor.Role != user.RoleEmployer && actor.Role != user.RoleAdmin {
		return job.Job{}, ErrForbidden
	}
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	j := job.Job{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		CompanyID:       actor.ID,
		CompanyName:     actor.DisplayName(),
		Location:        strings.TrimSpace(in.Location),
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		Salary:          in.Salary,
		Requirements:    cleanRequirements(in.Requirements),
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrPersistenceFailure
	}

	u.invalidateSearchCache(ctx)
	if u.notifier != nil {
		u.notifier.JobPosted(j)
	}
	return j, nil
}

func (u *Jobs) UpdateJob(ctx context.Context, actor user.User, jobID uuid.UUID, in JobInput) (job.Job, error) {
	existing, err := u.GetJob(ctx, jobID)
	if err != nil {
		return job.Job{}, err
	}
	if existing.CompanyID != actor.ID && actor.Role != user.RoleAdmin {
		return job.Job{}, ErrForbidden
	}
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	existing.Title = strings.TrimSpace(in.Title)
	existing.Description = strings.TrimSpace(in.Description)
	existing.Location = strings.TrimSpace(in.Location)
	existing.JobType = in.JobType
	existing.ExperienceLevel = in.ExperienceLevel
	existing.Salary = in.Salary
	existing.Requirements = cleanRequirements(in.Requirements)

	if err := u.jobs.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrPersistenceFailure
	}

	u.invalidateSearchCache(ctx)
	return existing, nil
}

func (u *Jobs) DeleteJob(ctx context.Context, actor user.User, jobID uuid.UUID) error {
	existing, err := u.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if existing.CompanyID != actor.ID && actor.Role != user.RoleAdmin {
		return ErrForbidden
	}

	if err := u.jobs.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrPersistenceFailure
	}

	u.invalidateSearchCache(ctx)
	return nil
}

func (u *Jobs) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	if jobID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrPersistenceFailure
	}
	return j, nil
}

func (u *Jobs) ListCompanyJobs(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	out, err := u.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrPersistenceFailure
	}
	return out, nil
}

func (u *Jobs) invalidateSearchCache(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateJobCaches(ctx)
	}
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Location) == "" {
		return ErrInvalidInput
	}
	if !in.JobType.Valid() || !in.ExperienceLevel.Valid() {
		return ErrInvalidInput
	}
	if in.Salary != nil && *in.Salary < 0 {
		return ErrInvalidInput
	}
	return nil
}

func cleanRequirements(reqs []string) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
