package data

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// allowed resume upload extensions
var resumeExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// storedResumeName matches the opaque names this store generates. Anything
// else is rejected on Open so path segments can never reach the filesystem.
var storedResumeName = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.[a-z]+$`)

// DiskResumeStore stores resume files on local disk under a single flat
// directory. Stored names are server-generated uuid tokens, never the
// client-supplied filename.
type DiskResumeStore struct {
	dir string
}

// NewDiskResumeStore creates the upload directory if needed and returns a
// store rooted there.
func NewDiskResumeStore(dir string) (*DiskResumeStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("resume store directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create resume upload dir %s: %w", dir, err)
	}
	return &DiskResumeStore{dir: dir}, nil
}

// Save writes the resume to disk under a fresh uuid name, keeping only the
// extension of the original filename. The original name itself is discarded.
func (s *DiskResumeStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := resumeExtensions[ext]; !ok {
		return "", apperrors.ValidationField("resume",
			"resume must be a .pdf, .doc or .docx file")
	}

	storedName := uuid.NewString() + ext
	path := filepath.Join(s.dir, storedName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write resume file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close resume file: %w", err)
	}
	return storedName, nil
}

// Open returns a reader for a stored resume along with its modification time
// for conditional responses. Names that are not store-generated tokens are
// treated as not found.
func (s *DiskResumeStore) Open(ctx context.Context, storedName string) (io.ReadSeekCloser, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, time.Time{}, err
	}

	if !storedResumeName.MatchString(storedName) {
		return nil, time.Time{}, apperrors.NotFoundf("resume %s not found", storedName)
	}

	path := filepath.Join(s.dir, storedName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, time.Time{}, apperrors.NotFoundf("resume %s not found", storedName)
		}
		return nil, time.Time{}, fmt.Errorf("open resume file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, fmt.Errorf("stat resume file: %w", err)
	}
	return f, info.ModTime(), nil
}

// Remove deletes a stored resume. Removing a name that does not exist is not
// an error; the caller only cares that the file is gone.
func (s *DiskResumeStore) Remove(ctx context.Context, storedName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !storedResumeName.MatchString(storedName) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove resume file: %w", err)
	}
	return nil
}
