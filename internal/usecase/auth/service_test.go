package auth

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return errors.New("duplicate email")
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) List(context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) ListByRole(context.Context, user.Role) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	return nil
}

func (f *fakeUserRepo) Count(context.Context) (int, error) { return len(f.byID), nil }

func (f *fakeUserRepo) UpdateCandidateProfile(_ context.Context, id uuid.UUID, resumePath string, skills []string) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Profile.ResumePath = resumePath
	u.Profile.Skills = skills
	f.byID[id] = u
	f.byEmail[u.Email] = u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	created, err := svc.Register(context.Background(), RegisterInput{
		Username: "jane",
		Email:    "Jane.Doe@Example.com",
		Password: "s3cret-password",
	})
	if err != nil {
		t.Fatalf("register: unexpected err: %v", err)
	}
	if created.Email != "jane.doe@example.com" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.Role != user.RoleCandidate {
		t.Fatalf("role = %q, want default candidate", created.Role)
	}
	if created.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}

	logged, err := svc.Login(context.Background(), LoginInput{Email: "JANE.DOE@example.com", Password: "s3cret-password"})
	if err != nil {
		t.Fatalf("login: unexpected err: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("login returned a different user")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "jane.doe@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_EmployerKeepsCompanyFields(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	created, err := svc.Register(context.Background(), RegisterInput{
		Username:    "acme-hr",
		Email:       "hr@acme.example",
		Password:    "s3cret-password",
		Role:        user.RoleEmployer,
		CompanyName: " Acme Software ",
		Location:    "Jakarta",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Profile.CompanyName != "Acme Software" || created.Profile.Location != "Jakarta" {
		t.Fatalf("company fields not stored: %+v", created.Profile)
	}
	if created.DisplayName() != "Acme Software" {
		t.Fatalf("display name = %q", created.DisplayName())
	}
}

func TestRegister_Rejections(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Username: "x", Email: "a@b.c", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "x", Email: "a@b.c", Password: "s3cret-password", Role: user.RoleAdmin}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("admin self-registration: expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.Register(context.Background(), RegisterInput{Username: "x", Email: "a@b.c", Password: "s3cret-password"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "y", Email: "A@B.C", Password: "s3cret-password"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("duplicate email: expected ErrEmailAlreadyRegistered, got %v", err)
	}
}
