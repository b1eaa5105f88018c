package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/matching"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	MatchJobs(ctx context.Context, candidateID uuid.UUID) ([]matching.Result, error)
}

type Matching struct {
	users user.Repository
	jobs  repository.JobRepository
}

func NewMatchingUsecase(users user.Repository, jobs repository.JobRepository) *Matching {
	return &Matching{users: users, jobs: jobs}
}

// MatchJobs ranks the whole catalog against the candidate's skill set. An
// empty skill set yields an empty ranking; only an unknown candidate is an
// error.
func (u *Matching) MatchJobs(ctx context.Context, candidateID uuid.UUID) ([]matching.Result, error) {
	if candidateID == uuid.Nil {
		return nil, ErrCandidateNotFound
	}

	usr, err := u.users.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrPersistenceFailure
	}

	if len(usr.Profile.Skills) == 0 {
		return []matching.Result{}, nil
	}

	catalog, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrPersistenceFailure
	}

	return matching.Rank(usr.Profile.Skills, catalog), nil
}
