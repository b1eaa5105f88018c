package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/user"
	"job-portal/internal/resume"

	"github.com/google/uuid"
)

var (
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrUnreadableResume   = errors.New("unreadable resume document")
	ErrUnsupportedResume  = errors.New("unsupported resume file")
	ErrPersistenceFailure = errors.New("persistence unavailable")
)

type ResumeUploadResult struct {
	ResumePath string
	Email      string
	Skills     []string
}

type ResumeUsecase interface {
	UploadResume(ctx context.Context, candidateID uuid.UUID, filename string, data []byte) (ResumeUploadResult, error)
}

type textExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

type signalExtractor interface {
	Extract(text string) resume.Signal
}

type resumeStore interface {
	Validate(filename string, size int64) error
	Save(filename string, data []byte) (string, error)
}

type candidateProfileWriter interface {
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateCandidateProfile(ctx context.Context, id uuid.UUID, resumePath string, skills []string) error
}

type Resume struct {
	users     candidateProfileWriter
	store     resumeStore
	extractor textExtractor
	signals   signalExtractor
}

func NewResumeUsecase(users candidateProfileWriter, store resumeStore, extractor textExtractor, signals signalExtractor) *Resume {
	return &Resume{users: users, store: store, extractor: extractor, signals: signals}
}

// UploadResume runs the resume pipeline: extract text, extract signal, merge
// skills, persist. The profile write happens only after extraction fully
// succeeded, so a corrupt upload never leaves a half-updated profile.
func (u *Resume) UploadResume(ctx context.Context, candidateID uuid.UUID, filename string, data []byte) (ResumeUploadResult, error) {
	if candidateID == uuid.Nil {
		return ResumeUploadResult{}, ErrCandidateNotFound
	}
	if err := u.store.Validate(filename, int64(len(data))); err != nil {
		return ResumeUploadResult{}, ErrUnsupportedResume
	}

	usr, err := u.users.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ResumeUploadResult{}, ErrCandidateNotFound
		}
		return ResumeUploadResult{}, ErrPersistenceFailure
	}

	text, err := u.extractor.ExtractText(data, filename)
	if err != nil {
		if errors.Is(err, resume.ErrUnreadableDocument) {
			return ResumeUploadResult{}, ErrUnreadableResume
		}
		return ResumeUploadResult{}, err
	}

	sig := u.signals.Extract(text)
	merged := user.MergeSkills(usr.Profile.Skills, sig.Skills)

	path, err := u.store.Save(filename, data)
	if err != nil {
		return ResumeUploadResult{}, ErrPersistenceFailure
	}

	if err := u.users.UpdateCandidateProfile(ctx, candidateID, path, merged); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ResumeUploadResult{}, ErrCandidateNotFound
		}
		return ResumeUploadResult{}, ErrPersistenceFailure
	}

	return ResumeUploadResult{ResumePath: path, Email: sig.Email, Skills: merged}, nil
}
