package upload

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/photoproof/internal/logging"
)

// ErrUnusableFilename is returned when sanitization leaves nothing to
// name the file with.
var ErrUnusableFilename = errors.New("unusable filename")

// Store persists uploaded files to a local directory.
//
// There is no collision handling: two uploads that sanitize to the same
// name overwrite each other, last write wins.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates the upload directory if absent and returns a store
// rooted at it.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, logging.NewOperationError("upload.mkdir", dir, err)
	}
	return &Store{dir: dir, logger: logger.Named("upload_store")}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file bytes under a sanitized version of the supplied
// name and returns the resulting path, always inside the store directory.
func (s *Store) Save(filename string, data []byte) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", ErrUnusableFilename
	}

	dest := filepath.Join(s.dir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		wrapped := logging.NewOperationError("upload.save", name, err)
		s.logger.Error("failed to write upload", zap.Error(wrapped), zap.String("path", dest))
		return "", wrapped
	}

	s.logger.Info("stored upload", zap.String("path", dest), zap.Int("bytes", len(data)))
	return dest, nil
}
