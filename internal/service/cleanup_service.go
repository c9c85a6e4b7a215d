package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/pkg/jobs"
	"github.com/bimcat/catalog-api/pkg/storage"
)

type fileDeleter interface {
	Delete(filename string) error
}

// CleanupConfig tunes the background cleanup workers.
type CleanupConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// CleanupService removes orphaned media files in the background. Record
// mutations never wait on the filesystem: deleting a course or carousel
// image enqueues the file removal here and moves on.
type CleanupService struct {
	queue   *jobs.Queue
	storage fileDeleter
	logger  *zap.Logger
}

// NewCleanupService builds the cleanup queue over local storage.
func NewCleanupService(store fileDeleter, logger *zap.Logger, cfg CleanupConfig) *CleanupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CleanupService{storage: store, logger: logger}
	s.queue = jobs.NewQueue("media-cleanup", s.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return s
}

// Start launches the cleanup workers.
func (s *CleanupService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains and stops the workers.
func (s *CleanupService) Stop() {
	s.queue.Stop()
}

// EnqueueDeleteURL schedules removal of the file behind a public URL. URLs
// outside the served media paths are ignored, as are enqueue failures: file
// cleanup is best effort and never blocks the calling mutation.
func (s *CleanupService) EnqueueDeleteURL(publicURL string) {
	relPath := strings.TrimPrefix(publicURL, "/")
	if relPath == "" || relPath == publicURL || strings.Contains(relPath, "..") {
		s.logger.Warn("ignoring cleanup for non-local url", zap.String("url", publicURL))
		return
	}
	name := relPath[strings.LastIndex(relPath, "/")+1:]
	if !storage.SafeFilename(name) {
		s.logger.Warn("ignoring cleanup for unsafe url", zap.String("url", publicURL))
		return
	}
	task := jobs.Task{
		ID:      fmt.Sprintf("cleanup-%d", time.Now().UnixNano()),
		Type:    "delete-file",
		Payload: relPath,
	}
	if err := s.queue.Enqueue(task); err != nil {
		s.logger.Warn("media cleanup enqueue failed", zap.String("path", relPath), zap.Error(err))
	}
}

func (s *CleanupService) handle(ctx context.Context, task jobs.Task) error {
	relPath, ok := task.Payload.(string)
	if !ok {
		s.logger.Error("cleanup task with unexpected payload", zap.String("task_id", task.ID))
		return nil
	}
	if err := s.storage.Delete(relPath); err != nil {
		return err
	}
	s.logger.Info("orphaned media removed", zap.String("path", relPath))
	return nil
}
