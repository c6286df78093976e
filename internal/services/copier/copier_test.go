package copier

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/late/internal/view"
)

const contract = "6sf6zf7UpkqPEz3byHpK5mvPUr9xBCf8FaXSuTUkpump"

type fakeWriter struct {
	mu    sync.Mutex
	err   error
	texts []string
}

func (f *fakeWriter) WriteText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

func newButtonPage() (*view.Page, view.Element) {
	page := view.NewPage(view.CopyButton)
	button, _ := page.Element(view.CopyButton)
	button.SetText("📋 Copy")
	return page, button
}

func TestCopier_Copy(t *testing.T) {
	tests := []struct {
		name          string
		primary       *fakeWriter
		fallback      *fakeWriter
		expected      bool
		label         string
		tone          view.Tone
		primaryTexts  int
		fallbackTexts int
	}{
		{
			name:         "primary succeeds",
			primary:      &fakeWriter{},
			fallback:     &fakeWriter{},
			expected:     true,
			label:        LabelCopied,
			tone:         view.ToneSuccess,
			primaryTexts: 1,
		},
		{
			name:          "primary unavailable, fallback succeeds",
			primary:       &fakeWriter{err: ErrUnavailable},
			fallback:      &fakeWriter{},
			expected:      true,
			label:         LabelCopied,
			tone:          view.ToneSuccess,
			fallbackTexts: 1,
		},
		{
			name:     "both fail",
			primary:  &fakeWriter{err: errors.New("denied")},
			fallback: &fakeWriter{err: errors.New("no tty")},
			expected: false,
			label:    LabelFailed,
			tone:     view.ToneFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, button := newButtonPage()
			c := New(page, contract, tt.primary, tt.fallback, time.Hour, zap.NewNop())
			defer c.Close()

			assert.Equal(t, tt.expected, c.Copy(context.Background()))
			assert.Equal(t, tt.label, button.Text())
			assert.Equal(t, tt.tone, button.Tone())
			assert.Len(t, tt.primary.texts, tt.primaryTexts)
			assert.Len(t, tt.fallback.texts, tt.fallbackTexts)
			if tt.primaryTexts > 0 {
				assert.Equal(t, contract, tt.primary.texts[0])
			}
		})
	}
}

func TestCopier_NilWriters(t *testing.T) {
	page, button := newButtonPage()
	c := New(page, contract, nil, nil, time.Hour, nil)
	defer c.Close()

	assert.False(t, c.Copy(context.Background()))
	assert.Equal(t, LabelFailed, button.Text())
}

func TestCopier_Revert(t *testing.T) {
	page, button := newButtonPage()
	c := New(page, contract, &fakeWriter{}, nil, 30*time.Millisecond, zap.NewNop())
	defer c.Close()

	require.True(t, c.Copy(context.Background()))
	assert.Equal(t, LabelCopied, button.Text())

	assert.Eventually(t, func() bool {
		return button.Text() == "📋 Copy" && button.Tone() == view.ToneNeutral
	}, time.Second, 5*time.Millisecond)
}

func TestCopier_RepeatedClicksRestartWindow(t *testing.T) {
	page, button := newButtonPage()
	c := New(page, contract, &fakeWriter{}, nil, 80*time.Millisecond, zap.NewNop())
	defer c.Close()

	c.Copy(context.Background())
	time.Sleep(50 * time.Millisecond)
	c.Copy(context.Background())

	// past the first click's deadline, the second click's feedback stays
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, LabelCopied, button.Text())

	// the revert restores the label from before the first click
	assert.Eventually(t, func() bool { return button.Text() == "📋 Copy" }, time.Second, 5*time.Millisecond)
}

func TestCopier_MissingButton(t *testing.T) {
	w := &fakeWriter{}
	c := New(view.NewPage(), contract, w, nil, time.Millisecond, zap.NewNop())
	defer c.Close()

	assert.True(t, c.Copy(context.Background()))
	assert.Len(t, w.texts, 1)
}

func TestTerminalSelection_WriteText(t *testing.T) {
	var buf bytes.Buffer
	sel := &TerminalSelection{out: &buf}

	require.NoError(t, sel.WriteText(context.Background(), contract))

	encoded := base64.StdEncoding.EncodeToString([]byte(contract))
	assert.Contains(t, buf.String(), "\x1b]52;")
	assert.Contains(t, buf.String(), encoded)
}

func TestTerminalSelection_NoOutput(t *testing.T) {
	var sel *TerminalSelection
	assert.ErrorIs(t, sel.WriteText(context.Background(), contract), ErrUnavailable)

	assert.ErrorIs(t, NewTerminalSelection(nil).WriteText(context.Background(), contract), ErrUnavailable)
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestTerminalSelection_SingleWrite(t *testing.T) {
	out := &countingWriter{}
	sel := &TerminalSelection{out: out, tmux: true}

	require.NoError(t, sel.WriteText(context.Background(), contract))
	assert.Equal(t, 1, out.writes)
	assert.Contains(t, out.String(), "\x1bPtmux;")
}
