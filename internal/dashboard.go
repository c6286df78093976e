package internal

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vadiminshakov/late/config"
	"github.com/vadiminshakov/late/internal/domain"
	"github.com/vadiminshakov/late/internal/services/carousel"
	"github.com/vadiminshakov/late/internal/services/copier"
	"github.com/vadiminshakov/late/internal/services/counter"
	"github.com/vadiminshakov/late/internal/services/notify"
	"github.com/vadiminshakov/late/internal/services/stats"
	"github.com/vadiminshakov/late/internal/view"
)

const (
	// CopyLabel idle label of the copy button.
	CopyLabel = "📋 Copy"

	copyTimeout = 5 * time.Second
)

// Dashboard application context: owns every component and the goroutines
// they run in.
type Dashboard struct {
	Config config.Config

	page     *view.Page
	logger   *zap.Logger
	stats    *stats.Service
	notifier *notify.Notifier
	copier   *copier.Copier
	carousel *carousel.Controller

	startOnce sync.Once
	stopOnce  sync.Once

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	narrow bool
}

// NewDashboard wires the components over page. Nothing runs until Start.
func NewDashboard(conf config.Config, page *view.Page, fetcher stats.Fetcher, primary, fallback copier.Writer, logger *zap.Logger) (*Dashboard, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	notifier := notify.New(page, conf.NotificationTTL)

	return &Dashboard{
		Config:   conf,
		page:     page,
		logger:   logger,
		stats:    stats.NewService(fetcher, stats.NewRenderer(page), logger.Named("stats")),
		notifier: notifier,
		copier:   copier.New(page, conf.ContractAddress, primary, fallback, conf.CopyFeedbackTTL, logger.Named("copier")),
		carousel: carousel.NewController(page, notifier),
	}, nil
}

// Start boots the dashboard once the terminal width is known. Later calls
// are no-ops.
func (d *Dashboard) Start(ctx context.Context, width int) {
	d.startOnce.Do(func() {
		d.start(ctx, width)
	})
}

func (d *Dashboard) start(ctx context.Context, width int) {
	narrow := width <= d.Config.NarrowWidth

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	d.mu.Lock()
	d.ctx, d.cancel, d.group, d.narrow = gctx, cancel, g, narrow
	d.mu.Unlock()

	if button, ok := d.page.Element(view.CopyButton); ok {
		button.SetText(CopyLabel)
	}

	// no carousel on narrow terminals, the front end draws a static grid
	if narrow {
		d.page.Unmount(view.Track)
	}

	stepDelay := d.Config.SupplyStepDelay
	interval := d.Config.PollInterval
	if narrow {
		stepDelay = d.Config.NarrowSupplyStepDelay
		interval = d.Config.NarrowPollInterval
	}

	if supply, ok := d.page.Element(view.SupplyCount); ok {
		animator := counter.Animator{
			Target:     d.Config.TotalSupply,
			Steps:      d.Config.SupplySteps,
			StepDelay:  stepDelay,
			StartDelay: d.Config.SupplyStartDelay,
		}
		g.Go(func() error {
			return ignoreCanceled(animator.Run(gctx, supply))
		})
	}

	g.Go(func() error {
		return ignoreCanceled(d.stats.Run(gctx, interval))
	})

	d.logger.Info("dashboard started",
		zap.Int("width", width),
		zap.Bool("narrow", narrow),
		zap.Duration("poll_interval", interval))
}

// Stop cancels background work, waits for it and stops pending timers.
func (d *Dashboard) Stop() error {
	var err error
	d.stopOnce.Do(func() {
		d.mu.Lock()
		cancel, group := d.cancel, d.group
		d.mu.Unlock()

		if cancel != nil {
			cancel()
			err = group.Wait()
		}
		d.notifier.Close()
		d.copier.Close()
		d.logger.Info("dashboard stopped")
	})
	return err
}

// Resize switches between the carousel and the static grid when width
// crosses the narrow breakpoint. Polling and counter timing keep the values
// chosen at Start. Calls before Start are ignored.
func (d *Dashboard) Resize(width int) {
	narrow := width <= d.Config.NarrowWidth

	d.mu.Lock()
	if d.group == nil || d.narrow == narrow {
		d.mu.Unlock()
		return
	}
	d.narrow = narrow
	d.mu.Unlock()

	if narrow {
		d.carousel.HoverLeave()
		d.page.Unmount(view.Track)
	} else {
		d.page.Mount(view.Track)
		d.carousel.Sync()
	}
	d.logger.Debug("layout changed", zap.Int("width", width), zap.Bool("narrow", narrow))
}

// Narrow reports whether the dashboard shows the narrow layout.
func (d *Dashboard) Narrow() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.narrow
}

// Refresh fetches market data now. A fetch already in flight, manual or
// scheduled, is joined instead of starting another one.
func (d *Dashboard) Refresh() {
	d.mu.Lock()
	ctx, group := d.ctx, d.group
	d.mu.Unlock()

	if group == nil || ctx.Err() != nil {
		return
	}
	group.Go(func() error {
		d.stats.Refresh(ctx)
		return nil
	})
}

// Copy copies the contract address. It may block on the platform clipboard.
func (d *Dashboard) Copy() bool {
	ctx, cancel := context.WithTimeout(d.context(), copyTimeout)
	defer cancel()
	return d.copier.Copy(ctx)
}

// Carousel returns the carousel state.
func (d *Dashboard) Carousel() domain.CarouselState {
	return d.carousel.State()
}

func (d *Dashboard) Pause()      { d.carousel.Pause() }
func (d *Dashboard) Play()       { d.carousel.Play() }
func (d *Dashboard) Fast()       { d.carousel.Fast() }
func (d *Dashboard) Slow()       { d.carousel.Slow() }
func (d *Dashboard) Normal()     { d.carousel.Normal() }
func (d *Dashboard) HoverEnter() { d.carousel.HoverEnter() }
func (d *Dashboard) HoverLeave() { d.carousel.HoverLeave() }

func (d *Dashboard) context() context.Context {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ctx == nil {
		return context.Background()
	}
	return d.ctx
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
