// Package stats polls market data and renders it, falling back to demo
// values when the source is unavailable.
package stats

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/vadiminshakov/late/internal/domain"
)

// Fetcher source of market snapshots.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (domain.MarketSnapshot, error)
}

// Service refreshes the statistics on the page.
type Service struct {
	fetcher  Fetcher
	renderer *Renderer
	logger   *zap.Logger
	now      func() time.Time

	flight singleflight.Group

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a refresh service.
func NewService(fetcher Fetcher, renderer *Renderer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Refresh fetches once and renders the result. Any fetch failure is logged
// and replaced by demo data; the page is never left blank. Concurrent calls
// share a single fetch.
func (s *Service) Refresh(ctx context.Context) {
	s.flight.Do("refresh", func() (interface{}, error) {
		s.refresh(ctx)
		return nil, nil
	})
}

func (s *Service) refresh(ctx context.Context) {
	s.renderer.SetLoading(true)
	defer s.renderer.SetLoading(false)

	snapshot, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("market data unavailable, using demo data", zap.Error(err))
		snapshot = s.demo()
	}

	s.renderer.Render(snapshot)
	if snapshot.Demo {
		s.renderer.MarkDemo()
		return
	}
	s.renderer.MarkUpdated(s.now())
	s.logger.Debug("market data refreshed",
		zap.Float64("price", snapshot.PriceUSD),
		zap.Float64("market_cap", snapshot.MarketCapUSD))
}

// Run refreshes immediately and then on every tick until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	s.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("starting market data polling", zap.Duration("poll_interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("context done, stopping market data polling")
			return ctx.Err()
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

func (s *Service) demo() domain.MarketSnapshot {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return domain.NewDemoSnapshot(s.rng)
}
