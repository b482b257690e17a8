package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gdkp-ledger/feature/index"
	"gdkp-ledger/feature/session"
	"gdkp-ledger/feature/session/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RecordsDir is the directory of session records inside a destination.
const RecordsDir = "records"

// Report summarises one ingestion run.
type Report struct {
	// Processed lists the export file names turned into records.
	Processed []string `json:"processed"`
	// Failed lists the export file names that were skipped.
	Failed []string `json:"failed"`
	// Archived lists the export file names copied to the raw archive.
	Archived []string `json:"archived"`
	// Entries is the size of the persisted index.
	Entries int `json:"entries"`
}

// Option configures a Service.
type Option func(*Service)

// WithObjectMirror uploads raw exports and records alongside local files.
func WithObjectMirror(m *ObjectMirror) Option {
	return func(s *Service) {
		s.objects = m
	}
}

// WithIndexOptions forwards options to every index the service opens.
func WithIndexOptions(opts ...index.Option) Option {
	return func(s *Service) {
		s.indexOpts = append(s.indexOpts, opts...)
	}
}

// Service runs ingestion batches.
type Service struct {
	parser    *session.Parser
	logger    *zap.Logger
	objects   *ObjectMirror
	indexOpts []index.Option
}

// NewService creates a new ingestion service.
func NewService(parser *session.Parser, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		parser: parser,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rebuild regenerates every record and the index from the exports in
// rootPath. Any previously persisted index is replaced.
func (s *Service) Rebuild(ctx context.Context, rootPath, destPath string) (*Report, error) {
	s.logger.Info("Rebuilding", zap.String("root", rootPath), zap.String("dest", destPath))

	if err := requireDirs(rootPath, destPath); err != nil {
		return nil, err
	}

	recordsPath := filepath.Join(destPath, RecordsDir)
	if err := os.MkdirAll(recordsPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create records directory: %w", err)
	}

	idx := index.NewService(filepath.Join(destPath, index.FileName), s.logger, s.indexOpts...)
	return s.run(ctx, rootPath, recordsPath, idx, "")
}

// Add ingests the exports staged in addPath into an existing destination and
// archives them into rootPath under their original names.
func (s *Service) Add(ctx context.Context, addPath, rootPath, destPath string) (*Report, error) {
	s.logger.Info("Adding exports", zap.String("add", addPath), zap.String("root", rootPath), zap.String("dest", destPath))

	recordsPath := filepath.Join(destPath, RecordsDir)
	if err := requireDirs(addPath, rootPath, destPath, recordsPath); err != nil {
		return nil, err
	}

	idx := index.NewService(filepath.Join(destPath, index.FileName), s.logger, s.indexOpts...)
	if err := idx.Load(); err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	return s.run(ctx, addPath, recordsPath, idx, rootPath)
}

// run ingests every export of srcPath. When archivePath is set, each
// ingested export is copied there.
func (s *Service) run(ctx context.Context, srcPath, recordsPath string, idx *index.Service, archivePath string) (*Report, error) {
	files, err := listExports(srcPath)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Processed: make([]string, 0, len(files)),
		Failed:    make([]string, 0),
		Archived:  make([]string, 0),
	}

	var errs error
	for _, file := range files {
		name := filepath.Base(file)
		l := s.logger.With(zap.String("file", name))
		l.Info("Processing export")

		sess, err := s.ingestFile(ctx, file, recordsPath)
		if err != nil {
			l.Error("Skipping export", zap.Error(err))
			report.Failed = append(report.Failed, name)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		idx.Append(sess.IndexEntry())
		report.Processed = append(report.Processed, name)

		if archivePath == "" {
			continue
		}
		if err := s.archive(ctx, file, archivePath); err != nil {
			l.Error("Failed to archive export", zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		report.Archived = append(report.Archived, name)
	}

	if err := idx.Persist(ctx); err != nil {
		return report, multierr.Append(errs, err)
	}
	report.Entries = idx.Len()

	s.logger.Info("Done",
		zap.Int("processed", len(report.Processed)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("entries", report.Entries))
	return report, errs
}

// ingestFile parses one export and writes its record.
func (s *Service) ingestFile(ctx context.Context, file, recordsPath string) (*models.Session, error) {
	sess, err := s.parser.ParseFile(file)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(sess.Record())
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	name := sess.UID + ".json"
	if s.objects != nil {
		if err := s.objects.Upload(ctx, RecordsPrefix, name, data); err != nil {
			return nil, err
		}
	}

	if err := os.WriteFile(filepath.Join(recordsPath, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write record: %w", err)
	}
	return sess, nil
}

// archive copies file into archivePath, keeping its name.
func (s *Service) archive(ctx context.Context, file, archivePath string) error {
	name := filepath.Base(file)
	if err := copyFile(file, filepath.Join(archivePath, name)); err != nil {
		return fmt.Errorf("failed to archive export: %w", err)
	}

	if s.objects != nil {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}
		return s.objects.Upload(ctx, RawPrefix, name, data)
	}
	return nil
}

func requireDirs(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			return fmt.Errorf("%w: empty path", ErrMissingPath)
		}
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrMissingPath, p)
		}
	}
	return nil
}

// listExports returns the *.json files of dir in lexical order.
func listExports(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func copyFile(src, dst string) error {
	if srcInfo, err := os.Stat(src); err == nil {
		if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
			return nil
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
