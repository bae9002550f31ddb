package scheduler

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler handles periodic background jobs for the support bot.
type Scheduler struct {
	cron      *cron.Cron
	photosDir string
}

// NewScheduler creates a new scheduler instance. Jobs run on Moscow
// time, like the rest of the fleet operations.
func NewScheduler(photosDir string) *Scheduler {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		zap.S().Errorw("failed to load Europe/Moscow location, falling back to UTC", "error", err)
		loc = time.UTC
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		photosDir: photosDir,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Report photos only matter until the report is relayed, purge
	// the directory nightly.
	_, err := s.cron.AddFunc("0 0 * * *", s.purgePhotos)
	if err != nil {
		zap.S().Errorw("failed to register photo purge job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Support bot scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Support bot scheduler stopped")
}

// purgePhotos removes every regular file under the photos directory.
// A single stubborn file must not stop the sweep.
func (s *Scheduler) purgePhotos() {
	zap.S().Infow("Running photo purge job", "dir", s.photosDir)

	entries, err := os.ReadDir(s.photosDir)
	if err != nil {
		zap.S().Errorw("failed to read photos directory", "dir", s.photosDir, "error", err)
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.photosDir, entry.Name())
		if err := os.Remove(path); err != nil {
			zap.S().Errorw("failed to remove photo", "path", path, "error", err)
			continue
		}
		removed++
	}

	zap.S().Infow("Photo purge complete", "removed", removed)
}
