package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied = errors.New("already applied for this job")
	ErrResumeRequired = errors.New("resume is required")
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID, jobID uuid.UUID, resumePath string) (application.Application, error)
	HasApplied(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
	ListForJob(ctx context.Context, actor user.User, jobID uuid.UUID) ([]application.Application, error)
	ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
}

type Applications struct {
	apps  application.Repository
	jobs  repository.JobRepository
	users user.Repository
}

func NewApplicationUsecase(apps application.Repository, jobs repository.JobRepository, users user.Repository) *Applications {
	return &Applications{apps: apps, jobs: jobs, users: users}
}

// Apply records one application per (job, candidate). When no resume comes
// with the request, the candidate's stored profile resume is used instead.
func (u *Applications) Apply(ctx context.Context, candidateID, jobID uuid.UUID, resumePath string) (application.Application, error) {
	if candidateID == uuid.Nil {
		return application.Application{}, ErrCandidateNotFound
	}
	if jobID == uuid.Nil {
		return application.Application{}, ErrJobNotFound
	}

	if resumePath == "" {
		usr, err := u.users.GetByID(ctx, candidateID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return application.Application{}, ErrCandidateNotFound
			}
			return application.Application{}, ErrPersistenceFailure
		}
		resumePath = usr.Profile.ResumePath
	}
	if resumePath == "" {
		return application.Application{}, ErrResumeRequired
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return application.Application{}, ErrPersistenceFailure
	}
	if !exists {
		return application.Application{}, ErrJobNotFound
	}

	applied, err := u.apps.ExistsByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return application.Application{}, ErrPersistenceFailure
	}
	if applied {
		return application.Application{}, ErrAlreadyApplied
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		ResumePath:  resumePath,
		Status:      application.StatusPending,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return application.Application{}, ErrPersistenceFailure
	}
	return a, nil
}

func (u *Applications) HasApplied(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	applied, err := u.apps.ExistsByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return false, ErrPersistenceFailure
	}
	return applied, nil
}

// ListForJob is restricted to the posting employer and admins.
func (u *Applications) ListForJob(ctx context.Context, actor user.User, jobID uuid.UUID) ([]application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrPersistenceFailure
	}
	if j.CompanyID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	out, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrPersistenceFailure
	}
	return out, nil
}

func (u *Applications) ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	out, err := u.apps.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrPersistenceFailure
	}
	return out, nil
}
