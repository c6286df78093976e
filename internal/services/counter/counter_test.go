package counter

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/late/internal/view"
	"github.com/vadiminshakov/late/pkg/format"
)

// recorder captures every text write.
type recorder struct {
	view.Element
	mu     sync.Mutex
	writes []string
}

func (r *recorder) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, text)
}

func (r *recorder) values(t *testing.T) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, 0, len(r.writes))
	for _, w := range r.writes {
		v, err := strconv.ParseInt(strings.ReplaceAll(w, ",", ""), 10, 64)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestAnimator_EndsExactlyOnTarget(t *testing.T) {
	tests := []struct {
		target int64
		steps  int
	}{
		{target: 1_000_000_000, steps: 50},
		{target: 1_000_000_000, steps: 100},
		{target: 7, steps: 3},
		{target: 1, steps: 50},
		{target: 999_999_999_999, steps: 97},
		{target: 123_456_789, steps: 1},
		{target: 42, steps: 0},
	}

	for _, tt := range tests {
		t.Run(format.Integer(tt.target), func(t *testing.T) {
			rec := &recorder{}
			a := Animator{Target: tt.target, Steps: tt.steps}

			require.NoError(t, a.Run(context.Background(), rec))

			values := rec.values(t)
			expectedWrites := tt.steps
			if expectedWrites < 1 {
				expectedWrites = 1
			}
			require.Len(t, values, expectedWrites)
			assert.Equal(t, tt.target, values[len(values)-1])
			assert.Equal(t, format.Integer(tt.target), rec.writes[len(rec.writes)-1])

			for i := 1; i < len(values); i++ {
				assert.LessOrEqual(t, values[i-1], values[i])
				assert.LessOrEqual(t, values[i], tt.target)
			}
		})
	}
}

func TestAnimator_FirstStep(t *testing.T) {
	rec := &recorder{}
	a := Animator{Target: 1_000_000_000, Steps: 50}

	require.NoError(t, a.Run(context.Background(), rec))
	assert.Equal(t, "20,000,000", rec.writes[0])
}

func TestAnimator_NonPositiveTarget(t *testing.T) {
	rec := &recorder{}
	a := Animator{Target: 0, Steps: 10}

	require.NoError(t, a.Run(context.Background(), rec))
	assert.Equal(t, []string{"0"}, rec.writes)
}

func TestAnimator_Delays(t *testing.T) {
	rec := &recorder{}
	a := Animator{Target: 100, Steps: 5, StepDelay: 10 * time.Millisecond, StartDelay: 30 * time.Millisecond}

	start := time.Now()
	require.NoError(t, a.Run(context.Background(), rec))

	// start delay plus four waits between five writes
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
	assert.Len(t, rec.writes, 5)
}

func TestAnimator_Cancel(t *testing.T) {
	rec := &recorder{}
	a := Animator{Target: 1_000_000, Steps: 1000, StepDelay: 5 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := a.Run(ctx, rec)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, len(rec.values(t)), 1000)
}

func TestAnimator_CancelDuringStartDelay(t *testing.T) {
	rec := &recorder{}
	a := Animator{Target: 10, Steps: 2, StartDelay: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, a.Run(ctx, rec), context.Canceled)
	assert.Empty(t, rec.writes)
}
