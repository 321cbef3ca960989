package media

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bowerhall/voxtutor/internal/logger"
)

// Sweeper periodically removes stale files from the media working dir.
// Job cleanup swallows removal failures, so leaked files are possible; the
// sweep bounds how long they survive.
type Sweeper struct {
	dir    string
	maxAge time.Duration
	cron   *cron.Cron
}

func NewSweeper(dir string, maxAge time.Duration) *Sweeper {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Sweeper{dir: dir, maxAge: maxAge, cron: cron.New()}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) Sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		logger.Warn("media sweep failed", "dir", s.dir, "error", err)
		return
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Warn("stale file removal failed", "path", path, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info("media sweep completed", "removed", removed)
	}
}
