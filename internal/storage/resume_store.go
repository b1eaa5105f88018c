package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrUnsupportedFileType = errors.New("only resume files (PDF, DOC, DOCX) are allowed")
	ErrFileTooLarge        = errors.New("resume exceeds the size limit")
)

var allowedResumeExts = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// ResumeStore writes uploaded resumes to local disk under a configured
// directory, prefixing filenames with a timestamp so uploads never clobber
// each other.
type ResumeStore struct {
	dir     string
	maxSize int64
	now     func() time.Time
}

func NewResumeStore(dir string, maxSize int64) (*ResumeStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty resume dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResumeStore{dir: dir, maxSize: maxSize, now: time.Now}, nil
}

// Validate checks extension and size before any bytes touch disk.
func (s *ResumeStore) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedResumeExts[ext]; !ok {
		return ErrUnsupportedFileType
	}
	if s.maxSize > 0 && size > s.maxSize {
		return ErrFileTooLarge
	}
	return nil
}

// Save persists the payload and returns the stored path, the profile's opaque
// resume reference.
func (s *ResumeStore) Save(filename string, data []byte) (string, error) {
	if err := s.Validate(filename, int64(len(data))); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeFilename(filename))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
