package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"courtbooking/internal/domain"
)

// ErrSweepInProgress is returned when Sweep is called while another run is
// still active.
var ErrSweepInProgress = errors.New("sweep already in progress")

const DefaultInterval = time.Minute

type Config struct {
	Interval   time.Duration
	Location   *time.Location
	RunOnStart bool
}

// Sweeper resets reserved occupancy flags of today's elapsed slots to free.
// It never touches bookings.
type Sweeper struct {
	repo OccupancyRepository
	cfg  Config
	now  func() time.Time
	log  *zap.Logger

	running atomic.Bool

	mu     sync.Mutex
	stopCh chan struct{}
	done   chan struct{}
}

type Option func(*Sweeper)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Sweeper) { s.now = now }
}

func New(repo OccupancyRepository, cfg Config, log *zap.Logger, opts ...Option) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sweeper{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
		log:  log.Named("sweeper"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sweep runs one pass and returns how many slots it released. A failure on
// one slot is logged and the pass moves on to the next.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, ErrSweepInProgress
	}
	defer s.running.Store(false)

	now := s.now().In(s.cfg.Location)
	date := domain.DateKey(now)
	clock := cutoffClock(now)

	slots, err := s.repo.ListElapsedReserved(ctx, date, clock)
	if err != nil {
		return 0, fmt.Errorf("%w: list elapsed reservations for %s: %w", domain.ErrInfrastructure, date, err)
	}

	released, failed := 0, 0
	for _, slot := range slots {
		if ctx.Err() != nil {
			return released, fmt.Errorf("%w: sweep interrupted: %w", domain.ErrInfrastructure, ctx.Err())
		}

		ok, err := s.repo.Release(ctx, slot.ID)
		if err != nil {
			failed++
			s.log.Error("release slot failed",
				zap.Int64("occupancy_id", slot.ID),
				zap.Int64("court_id", slot.CourtID),
				zap.String("date", slot.Date),
				zap.Int("slot_index", slot.SlotIndex),
				zap.Error(err),
			)
			continue
		}
		if ok {
			released++
		}
	}

	if failed > 0 {
		s.log.Warn("sweep finished with failures",
			zap.String("date", date),
			zap.Int("released", released),
			zap.Int("failed", failed),
		)
	}
	return released, nil
}

// Start launches the periodic loop. It is a no-op if already started.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh != nil {
		return
	}
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})

	go s.loop(ctx, s.stopCh, s.done)
	s.log.Info("sweeper started",
		zap.Duration("interval", s.cfg.Interval),
		zap.String("location", s.cfg.Location.String()),
	)
}

// Stop ends the loop and waits for an in-flight pass to return.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	stopCh, done := s.stopCh, s.done
	s.stopCh, s.done = nil, nil
	s.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	<-done
}

func (s *Sweeper) loop(ctx context.Context, stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	if s.cfg.RunOnStart {
		s.tick(ctx)
	}

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-stopCh:
			s.log.Info("sweeper stopped")
			return
		case <-ctx.Done():
			s.log.Info("sweeper stopped (context done)")
			return
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Interval)
	defer cancel()

	start := time.Now()
	n, err := s.Sweep(ctx)
	switch {
	case errors.Is(err, ErrSweepInProgress):
		s.log.Debug("previous sweep still running, tick skipped")
	case err != nil:
		s.log.Error("sweep failed", zap.Error(err))
	case n > 0:
		s.log.Info("sweep completed", zap.Int("released", n), zap.Duration("took", time.Since(start)))
	}
}

// cutoffClock renders now as the smallest "HH:MM" c such that end < c holds
// exactly when end < now. Sub-minute remainders round up; the last minute of
// the day becomes "24:00", which still sorts after every valid end time.
func cutoffClock(now time.Time) string {
	h, m := now.Hour(), now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		m++
		if m == 60 {
			h, m = h+1, 0
		}
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
