package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)

	// UpdateCandidateProfile replaces the stored resume reference and skill
	// set in a single row update. Concurrent uploads for the same candidate
	// resolve last-write-wins at the row level.
	UpdateCandidateProfile(ctx context.Context, id uuid.UUID, resumePath string, skills []string) error
}
