package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied for this job")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusRejected Status = "rejected"
	StatusAccepted Status = "accepted"
)

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	ResumePath  string
	Status      Status
	CreatedAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, a Application) error
	ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error)
	Count(ctx context.Context) (int, error)
}
