package usecase

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepo) List(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count(context.Context) (int, error) { return len(m.users), nil }

func (m *mockUserRepo) UpdateCandidateProfile(_ context.Context, id uuid.UUID, resumePath string, skills []string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Profile.ResumePath = resumePath
	u.Profile.Skills = skills
	m.users[id] = u
	return nil
}

type mockJobRepo struct {
	jobs    []job.Job
	listErr error
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	m.jobs = append(m.jobs, j)
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if errors.Is(err, repository.ErrJobNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	for i := range m.jobs {
		if m.jobs[i].ID == j.ID {
			m.jobs[i] = j
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) ListAll(context.Context) ([]job.Job, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.jobs, nil
}

func (m *mockJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]job.Job, error) {
	var out []job.Job
	for _, j := range m.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	out, err := m.ListByCompany(ctx, companyID)
	return len(out), err
}

func (m *mockJobRepo) Count(context.Context) (int, error) { return len(m.jobs), nil }

func TestMatchJobs_RanksCatalogAgainstProfile(t *testing.T) {
	candidate := user.User{
		ID:   uuid.New(),
		Role: user.RoleCandidate,
		Profile: user.Profile{
			Skills: []string{"React", "Node", "SQL"},
		},
	}
	jobs := &mockJobRepo{jobs: []job.Job{
		{ID: uuid.New(), Title: "Frontend", Requirements: []string{"react", "css"}},
		{ID: uuid.New(), Title: "Fullstack", Requirements: []string{"react", "node"}},
		{ID: uuid.New(), Title: "Embedded", Requirements: []string{"golang", "rust"}},
	}}

	uc := NewMatchingUsecase(newMockUserRepo(candidate), jobs)

	results, err := uc.MatchJobs(context.Background(), candidate.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (zero-score job excluded)", len(results))
	}
	if results[0].Job.Title != "Fullstack" || results[0].Score != 100 {
		t.Fatalf("top result = %q (%.2f)", results[0].Job.Title, results[0].Score)
	}
	if results[1].Job.Title != "Frontend" || results[1].Score != 50 {
		t.Fatalf("second result = %q (%.2f)", results[1].Job.Title, results[1].Score)
	}
}

func TestMatchJobs_EmptySkillSetYieldsEmptyRanking(t *testing.T) {
	candidate := user.User{ID: uuid.New(), Role: user.RoleCandidate}
	jobs := &mockJobRepo{jobs: []job.Job{
		{ID: uuid.New(), Title: "Frontend", Requirements: []string{"react"}},
	}}

	uc := NewMatchingUsecase(newMockUserRepo(candidate), jobs)

	results, err := uc.MatchJobs(context.Background(), candidate.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("want empty non-nil ranking, got %v", results)
	}
}

func TestMatchJobs_UnknownCandidate(t *testing.T) {
	uc := NewMatchingUsecase(newMockUserRepo(), &mockJobRepo{})

	if _, err := uc.MatchJobs(context.Background(), uuid.New()); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
	if _, err := uc.MatchJobs(context.Background(), uuid.Nil); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound for nil id, got %v", err)
	}
}
