package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sbilibin2017/survey-collector/internal/logger"
)

// PhotoDir is the directory, relative to the store root, that holds photo files.
// Stored paths are prefixed with it, e.g. "uploads/walk_1700000000000_0.jpg".
const PhotoDir = "uploads"

// ErrInvalidPath is returned for stored paths that would escape the store root.
var ErrInvalidPath = errors.New("invalid photo path")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// PhotoStore keeps photo files on the local filesystem.
type PhotoStore struct {
	root string
}

// NewPhotoStore returns a store that writes photos under root/uploads.
func NewPhotoStore(root string) *PhotoStore {
	return &PhotoStore{root: root}
}

// Dir returns the absolute or root-relative photo directory.
func (s *PhotoStore) Dir() string {
	return filepath.Join(s.root, PhotoDir)
}

// FileName builds the stored name of a photo from its activity label,
// the submission time and its position in the submission.
func FileName(activity string, at time.Time, index int) string {
	label := strings.Trim(unsafeChars.ReplaceAllString(activity, "_"), "_")
	if label == "" {
		label = "foto"
	}
	return fmt.Sprintf("%s_%d_%d.jpg", label, at.UnixMilli(), index)
}

// maxNameAttempts bounds the suffixes tried when a photo name is already taken.
const maxNameAttempts = 100

// Save writes payload to a new file and returns its stored relative path.
// The photo directory is created if absent. An existing file is never
// overwritten: a taken name gets a numeric suffix.
func (s *PhotoStore) Save(activity string, index int, payload []byte, at time.Time) (string, error) {
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return "", fmt.Errorf("create photo directory: %w", err)
	}

	name := FileName(activity, at, index)
	base := strings.TrimSuffix(name, ".jpg")

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d.jpg", base, attempt)
		}
		rel := path.Join(PhotoDir, name)

		f, err := os.OpenFile(filepath.Join(s.Dir(), name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create photo %s: %w", rel, err)
		}

		if err := writeAndClose(f, payload); err != nil {
			os.Remove(f.Name())
			return "", fmt.Errorf("write photo %s: %w", rel, err)
		}

		logger.Log.Infow("photo stored",
			"path", rel,
			"size", humanize.Bytes(uint64(len(payload))),
		)
		return rel, nil
	}

	return "", fmt.Errorf("no free name for photo %s after %d attempts", base, maxNameAttempts)
}

func writeAndClose(f *os.File, payload []byte) error {
	if _, err := f.Write(payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Open opens a stored photo by its relative path.
// A missing file yields an error matching fs.ErrNotExist.
func (s *PhotoStore) Open(rel string) (io.ReadCloser, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Remove deletes a stored photo. Removing a missing file is not an error.
func (s *PhotoStore) Remove(rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Purge deletes every file in the photo directory and returns how many were removed.
// Individual failures are logged and skipped; an unreadable directory is returned as error.
func (s *PhotoStore) Purge() (int, error) {
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		full := filepath.Join(s.Dir(), e.Name())
		if err := os.Remove(full); err != nil {
			logger.Log.Errorw("failed to delete photo", "file", e.Name(), "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *PhotoStore) resolve(rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, rel)
	}
	return filepath.Join(s.root, local), nil
}
