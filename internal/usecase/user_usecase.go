package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanySummary struct {
	Company  user.User
	JobCount int
}

type CompanyDetails struct {
	Company user.User
	Jobs    []job.Job
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	ListCompanies(ctx context.Context) ([]CompanySummary, error)
	GetCompanyDetails(ctx context.Context, companyID uuid.UUID) (CompanyDetails, error)
}

type Users struct {
	users user.Repository
	jobs  repository.JobRepository
}

func NewUserUsecase(users user.Repository, jobs repository.JobRepository) *Users {
	return &Users{users: users, jobs: jobs}
}

func (u *Users) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrCandidateNotFound
		}
		return user.User{}, ErrPersistenceFailure
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Users) ListCompanies(ctx context.Context) ([]CompanySummary, error) {
	companies, err := u.users.ListByRole(ctx, user.RoleEmployer)
	if err != nil {
		return nil, ErrPersistenceFailure
	}

	out := make([]CompanySummary, 0, len(companies))
	for _, c := range companies {
		c.PasswordHash = ""
		count, err := u.jobs.CountByCompany(ctx, c.ID)
		if err != nil {
			return nil, ErrPersistenceFailure
		}
		out = append(out, CompanySummary{Company: c, JobCount: count})
	}
	return out, nil
}

func (u *Users) GetCompanyDetails(ctx context.Context, companyID uuid.UUID) (CompanyDetails, error) {
	usr, err := u.users.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return CompanyDetails{}, ErrCompanyNotFound
		}
		return CompanyDetails{}, ErrPersistenceFailure
	}
	if usr.Role != user.RoleEmployer {
		return CompanyDetails{}, ErrCompanyNotFound
	}
	usr.PasswordHash = ""

	jobs, err := u.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return CompanyDetails{}, ErrPersistenceFailure
	}
	return CompanyDetails{Company: usr, Jobs: jobs}, nil
}
