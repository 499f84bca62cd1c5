package artifact

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ticketgate/internal/pkg/clock"
)

// Sweeper deletes artifact files older than the retention window. This is
// storage hygiene only: a swept file says nothing about whether the booking
// behind it is still valid, and ticket validation never consults the disk.
type Sweeper struct {
	store     *Store
	clock     clock.Clock
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(store *Store, clk clock.Clock, retention, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:     store,
		clock:     clk,
		retention: retention,
		interval:  interval,
		logger:    logger,
	}
}

// Start launches the periodic sweep. The goroutine lives until Stop.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := s.SweepOnce(); err != nil {
					s.logger.Warn("artifact sweep failed", "error", err.Error())
				} else if n > 0 {
					s.logger.Info("artifact sweep removed expired files", "removed", n)
				}
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// SweepOnce removes everything older than the retention window and reports
// how many files went away. Per-file errors are logged and skipped; a
// sweep never aborts halfway because one file was busy.
func (s *Sweeper) SweepOnce() (int, error) {
	entries, err := os.ReadDir(s.store.Dir())
	if err != nil {
		return 0, err
	}

	cutoff := s.clock.Now().Add(-s.retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.Warn("artifact sweep could not stat file", "file", entry.Name(), "error", err.Error())
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.store.Dir(), entry.Name())); err != nil {
			s.logger.Warn("artifact sweep could not remove file", "file", entry.Name(), "error", err.Error())
			continue
		}
		removed++
	}
	return removed, nil
}
