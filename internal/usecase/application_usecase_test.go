package usecase

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type mockApplicationRepo struct {
	apps []application.Application
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	m.apps = append(m.apps, a)
	return nil
}

func (m *mockApplicationRepo) ExistsByJobAndCandidate(_ context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	for _, a := range m.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.apps {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) Count(context.Context) (int, error) { return len(m.apps), nil }

func TestApply_FallsBackToProfileResume(t *testing.T) {
	candidate := user.User{
		ID:      uuid.New(),
		Role:    user.RoleCandidate,
		Profile: user.Profile{ResumePath: "uploads/resumes/1700000000000-cv.pdf"},
	}
	posting := job.Job{ID: uuid.New(), CompanyID: uuid.New()}

	apps := &mockApplicationRepo{}
	uc := NewApplicationUsecase(apps, &mockJobRepo{jobs: []job.Job{posting}}, newMockUserRepo(candidate))

	a, err := uc.Apply(context.Background(), candidate.ID, posting.ID, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ResumePath != candidate.Profile.ResumePath {
		t.Fatalf("resume path = %q, want profile resume", a.ResumePath)
	}
	if a.Status != application.StatusPending {
		t.Fatalf("status = %q, want pending", a.Status)
	}
}

func TestApply_NoResumeAnywhere(t *testing.T) {
	candidate := user.User{ID: uuid.New(), Role: user.RoleCandidate}
	posting := job.Job{ID: uuid.New()}

	uc := NewApplicationUsecase(&mockApplicationRepo{}, &mockJobRepo{jobs: []job.Job{posting}}, newMockUserRepo(candidate))

	if _, err := uc.Apply(context.Background(), candidate.ID, posting.ID, ""); !errors.Is(err, ErrResumeRequired) {
		t.Fatalf("expected ErrResumeRequired, got %v", err)
	}
}

func TestApply_DuplicateRejected(t *testing.T) {
	candidate := user.User{ID: uuid.New(), Role: user.RoleCandidate}
	posting := job.Job{ID: uuid.New()}

	uc := NewApplicationUsecase(&mockApplicationRepo{}, &mockJobRepo{jobs: []job.Job{posting}}, newMockUserRepo(candidate))

	if _, err := uc.Apply(context.Background(), candidate.ID, posting.ID, "cv.pdf"); err != nil {
		t.Fatalf("first apply: unexpected err: %v", err)
	}
	if _, err := uc.Apply(context.Background(), candidate.ID, posting.ID, "cv.pdf"); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApply_UnknownJob(t *testing.T) {
	candidate := user.User{ID: uuid.New(), Role: user.RoleCandidate}
	uc := NewApplicationUsecase(&mockApplicationRepo{}, &mockJobRepo{}, newMockUserRepo(candidate))

	if _, err := uc.Apply(context.Background(), candidate.ID, uuid.New(), "cv.pdf"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestListForJob_OwnerOnly(t *testing.T) {
	owner := user.User{ID: uuid.New(), Role: user.RoleEmployer}
	other := user.User{ID: uuid.New(), Role: user.RoleEmployer}
	admin := user.User{ID: uuid.New(), Role: user.RoleAdmin}
	posting := job.Job{ID: uuid.New(), CompanyID: owner.ID}

	apps := &mockApplicationRepo{apps: []application.Application{
		{ID: uuid.New(), JobID: posting.ID, CandidateID: uuid.New()},
	}}
	uc := NewApplicationUsecase(apps, &mockJobRepo{jobs: []job.Job{posting}}, newMockUserRepo())

	if _, err := uc.ListForJob(context.Background(), other, posting.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	for _, actor := range []user.User{owner, admin} {
		got, err := uc.ListForJob(context.Background(), actor, posting.ID)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", actor.Role, err)
		}
		if len(got) != 1 {
			t.Fatalf("%s: got %d applications, want 1", actor.Role, len(got))
		}
	}
}
