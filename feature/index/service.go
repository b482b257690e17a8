package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gdkp-ledger/feature/session/models"

	"go.uber.org/zap"
)

// FileName is the name of the persisted index inside a destination directory.
const FileName = "index.json"

// recordKeys is the exact key set of a persisted index record.
var recordKeys = []string{"date", "payout", "title", "total", "uuid"}

// Mirror receives a copy of the whole index on every Persist.
type Mirror interface {
	Sync(ctx context.Context, entries []models.IndexEntry) error
}

// Option configures a Service.
type Option func(*Service)

// WithMirror registers a mirror updated after each Persist.
func WithMirror(m Mirror) Option {
	return func(s *Service) {
		s.mirror = m
	}
}

// Service holds the index in memory and persists it to path.
type Service struct {
	path    string
	entries []models.IndexEntry
	mirror  Mirror
	logger  *zap.Logger
}

// document is the persisted index.
type document struct {
	Records []models.IndexRecord `json:"records"`
}

// NewService creates an empty index persisted at path.
func NewService(path string, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		path:    path,
		entries: make([]models.IndexEntry, 0),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds an entry in memory.
func (s *Service) Append(e models.IndexEntry) {
	s.entries = append(s.entries, e)
}

// Entries returns the entries in insertion order.
func (s *Service) Entries() []models.IndexEntry {
	return s.entries
}

// Len returns the number of entries.
func (s *Service) Len() int {
	return len(s.entries)
}

// Search returns entries whose title contains query, case-insensitively,
// newest first. An empty query matches everything.
func (s *Service) Search(query string) []models.IndexEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.IndexEntry, 0)
	for _, e := range s.entries {
		if q == "" || strings.Contains(strings.ToLower(e.Title), q) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Load replaces the in-memory entries with the persisted index.
func (s *Service) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	entries, err := decode(data)
	if err != nil {
		return err
	}

	s.entries = entries
	s.logger.Debug("Index loaded", zap.String("path", s.path), zap.Int("entries", len(entries)))
	return nil
}

func decode(data []byte) ([]models.IndexEntry, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexSchema, err)
	}
	rawRecords, ok := top["records"]
	if !ok {
		return nil, fmt.Errorf("%w: missing records", ErrIndexSchema)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(rawRecords, &records); err != nil {
		return nil, fmt.Errorf("%w: records: %v", ErrIndexSchema, err)
	}

	entries := make([]models.IndexEntry, 0, len(records))
	for i, raw := range records {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrIndexSchema, i, err)
		}
		if err := checkKeys(fields); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrIndexSchema, i, err)
		}
		var rec models.IndexRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrIndexSchema, i, err)
		}
		entries = append(entries, rec.Entry())
	}
	return entries, nil
}

func checkKeys(raw map[string]json.RawMessage) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if strings.Join(keys, ",") != strings.Join(recordKeys, ",") {
		return fmt.Errorf("keys %v, want %v", keys, recordKeys)
	}
	return nil
}

// Persist writes the whole index, replacing the previous file, then updates
// the mirror if one is configured.
func (s *Service) Persist(ctx context.Context) error {
	doc := document{Records: make([]models.IndexRecord, 0, len(s.entries))}
	for _, e := range s.entries {
		doc.Records = append(doc.Records, e.Record())
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	s.logger.Info("Index persisted", zap.String("path", s.path), zap.Int("entries", len(s.entries)))

	if s.mirror != nil {
		if err := s.mirror.Sync(ctx, s.entries); err != nil {
			return fmt.Errorf("failed to sync index mirror: %w", err)
		}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".index-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
