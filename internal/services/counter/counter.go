// Package counter animates the total supply figure.
package counter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/late/internal/view"
	"github.com/vadiminshakov/late/pkg/format"
)

// Animator linear ramp from zero to Target in Steps equal increments.
type Animator struct {
	Target     int64
	Steps      int
	StepDelay  time.Duration
	StartDelay time.Duration
}

// Run waits StartDelay, then writes one intermediate value per step. Every
// step is scheduled only after the previous write, and the last write is
// exactly Target. Returns ctx.Err() when cancelled before the end.
func (a Animator) Run(ctx context.Context, el view.Element) error {
	steps := a.Steps
	if steps < 1 {
		steps = 1
	}

	if err := sleep(ctx, a.StartDelay); err != nil {
		return err
	}

	if a.Target <= 0 {
		el.SetText(format.Integer(a.Target))
		return nil
	}

	target := decimal.NewFromInt(a.Target)
	total := decimal.NewFromInt(int64(steps))

	for i := 1; ; i++ {
		if i >= steps {
			el.SetText(format.Integer(a.Target))
			return nil
		}

		current, _ := target.Mul(decimal.NewFromInt(int64(i))).QuoRem(total, 0)
		el.SetText(format.Integer(current.IntPart()))

		if err := sleep(ctx, a.StepDelay); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
