package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type PortalStats struct {
	UserCount        int
	JobCount         int
	ApplicationCount int
}

type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (PortalStats, error)
}

type Admin struct {
	users user.Repository
	jobs  repository.JobRepository
	apps  application.Repository
}

func NewAdminUsecase(users user.Repository, jobs repository.JobRepository, apps application.Repository) *Admin {
	return &Admin{users: users, jobs: jobs, apps: apps}
}

func (u *Admin) ListUsers(ctx context.Context) ([]user.User, error) {
	out, err := u.users.List(ctx)
	if err != nil {
		return nil, ErrPersistenceFailure
	}
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

func (u *Admin) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrUserNotFound
	}
	if err := u.users.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrPersistenceFailure
	}
	return nil
}

func (u *Admin) Stats(ctx context.Context) (PortalStats, error) {
	userCount, err := u.users.Count(ctx)
	if err != nil {
		return PortalStats{}, ErrPersistenceFailure
	}
	jobCount, err := u.jobs.Count(ctx)
	if err != nil {
		return PortalStats{}, ErrPersistenceFailure
	}
	appCount, err := u.apps.Count(ctx)
	if err != nil {
		return PortalStats{}, ErrPersistenceFailure
	}
	return PortalStats{UserCount: userCount, JobCount: jobCount, ApplicationCount: appCount}, nil
}
