package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gdkp-ledger/feature/index"
	"gdkp-ledger/feature/ingest"
	"gdkp-ledger/feature/session/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no record exists for a uid.
var ErrNotFound = errors.New("record not found")

// uidPattern matches derived session uids (base32, 8 chars).
var uidPattern = regexp.MustCompile(`^[A-Z2-7]{8}$`)

// Service reads the index and records of a destination directory.
type Service struct {
	destPath string
	logger   *zap.Logger
}

// NewService creates a new records service over destPath.
func NewService(destPath string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{destPath: destPath, logger: logger}
}

// Search returns the index entries matching query.
func (s *Service) Search(query string) ([]models.IndexEntry, error) {
	idx := index.NewService(filepath.Join(s.destPath, index.FileName), s.logger)
	if err := idx.Load(); err != nil {
		return nil, err
	}
	return idx.Search(query), nil
}

// Record returns the raw persisted record of session uid.
func (s *Service) Record(uid string) ([]byte, error) {
	if !uidPattern.MatchString(uid) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	data, err := os.ReadFile(filepath.Join(s.destPath, ingest.RecordsDir, uid+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return data, nil
}
