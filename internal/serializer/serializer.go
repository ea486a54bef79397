package serializer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/logging"
)

// Format identifies how a task file is stored
type Format string

const (
	FormatText     Format = "text"
	FormatSnapshot Format = "snapshot"
)

var snapshotExtensions = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// FormatFor picks the storage format from the file extension
func FormatFor(path string) Format {
	if snapshotExtensions[strings.ToLower(filepath.Ext(path))] {
		return FormatSnapshot
	}
	return FormatText
}

// Options controls how a Serializer writes and reads files
type Options struct {
	FileMode      os.FileMode
	SkipMalformed bool
	// Timeout bounds each snapshot database operation; zero means no limit
	Timeout time.Duration
}

// Serializer saves and loads task lists, dispatching on the file extension
type Serializer struct {
	opts Options
	open OpenSnapshotFunc
}

// New creates a serializer backed by SQLite for snapshot files
func New(opts Options) *Serializer {
	return NewWithOpener(opts, openSQLite)
}

// NewWithOpener creates a serializer that opens snapshot databases with open
func NewWithOpener(opts Options, open OpenSnapshotFunc) *Serializer {
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	return &Serializer{opts: opts, open: open}
}

// Save writes tasks to path
func (s *Serializer) Save(ctx context.Context, path string, tasks []domain.Task) error {
	switch FormatFor(path) {
	case FormatSnapshot:
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()
		_, err := SaveSnapshot(ctx, s.open, path, tasks, s.opts.FileMode)
		return err
	default:
		return SaveFile(path, tasks, s.opts.FileMode)
	}
}

// Load reads the tasks stored at path
func (s *Serializer) Load(ctx context.Context, path string) (*LoadResult, error) {
	logging.Debugf("loading %s as %s\n", path, FormatFor(path))
	switch FormatFor(path) {
	case FormatSnapshot:
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()
		return LoadSnapshot(ctx, s.open, path)
	default:
		return LoadFile(path, s.opts.SkipMalformed)
	}
}

func (s *Serializer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}
