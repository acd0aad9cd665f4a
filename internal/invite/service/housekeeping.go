package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/store"
)

// HousekeepingService periodically flips overdue pending invitations to
// expired. Mutating operations already apply expiry lazily; the sweeper keeps
// listings honest for invitations nobody touches again.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs the sweep.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep expires every pending invitation whose window has closed.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()

	n, err := s.Store.Invitations().ExpireOverdueInvitations(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to expire overdue invitations", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Info("expired overdue invitations", "count", n)
	} else {
		s.Logger.Debug("no overdue invitations")
	}
}
