package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// OpObserver receives the timing of each store operation. MetricsService
// satisfies it; a nil observer disables instrumentation.
type OpObserver interface {
	ObserveStoreOp(op string, duration time.Duration)
}

// File is a whole-document JSON store: every read parses the full file and
// every write rewrites it. A per-store mutex serializes read-modify-write
// cycles so concurrent mutations cannot lose updates.
//
// Reads fail open: a missing or unparseable file yields the empty document
// and a logged error, so callers cannot distinguish "truly empty" from
// "read failure". This mirrors the historical behaviour of the data files
// and keeps the public site serving during partial outages.
type File[T any] struct {
	path    string
	name    string
	empty   func() T
	migrate func([]byte) []byte
	logger  *zap.Logger
	obs     OpObserver

	mu sync.Mutex
}

// NewFile builds a store over the given path. empty produces the zero
// document; migrate, when non-nil, rewrites raw bytes before decoding and is
// how legacy file shapes are reconciled.
func NewFile[T any](path string, empty func() T, migrate func([]byte) []byte, logger *zap.Logger) *File[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &File[T]{path: path, name: name, empty: empty, migrate: migrate, logger: logger}
}

// SetObserver attaches timing instrumentation to this store. Operations are
// reported as "<file>.read" and "<file>.write".
func (f *File[T]) SetObserver(obs OpObserver) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = obs
}

// Read parses the whole file, failing open to the empty document.
func (f *File[T]) Read() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	start := time.Now()
	doc := f.read()
	f.observe("read", start)
	return doc
}

// Update runs fn over the current document and persists the result, all under
// the store lock. fn returning an error aborts without writing. A write
// failure propagates to the caller. The observed duration covers the whole
// read-modify-write cycle.
func (f *File[T]) Update(fn func(doc T) (T, error)) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.observe("write", time.Now())

	doc := f.read()
	next, err := fn(doc)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := f.write(next); err != nil {
		var zero T
		return zero, err
	}
	return next, nil
}

func (f *File[T]) observe(op string, start time.Time) {
	if f.obs != nil {
		f.obs.ObserveStoreOp(f.name+"."+op, time.Since(start))
	}
}

func (f *File[T]) read() T {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Warn("failed to read data file, serving empty collection",
			zap.String("path", f.path), zap.Error(err))
		return f.empty()
	}
	if f.migrate != nil {
		raw = f.migrate(raw)
	}
	doc := f.empty()
	if err := json.Unmarshal(raw, &doc); err != nil {
		f.logger.Error("failed to parse data file, serving empty collection",
			zap.String("path", f.path), zap.Error(err))
		return f.empty()
	}
	return doc
}

func (f *File[T]) write(doc T) error {
	// Two-space indentation keeps the files diffable and hand-editable,
	// the way they have always been maintained.
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
