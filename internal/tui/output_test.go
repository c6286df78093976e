package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_WritesLandWhole(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	out := NewOutput(f)

	const writers, chunks = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		payload := "[" + strings.Repeat(string(rune('a'+w)), 256) + "]"
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < chunks; i++ {
				_, err := out.Write([]byte(payload))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	require.NoError(t, out.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Len(t, data, writers*chunks*258)

	for len(data) > 0 {
		end := bytes.IndexByte(data, ']')
		require.Equal(t, 257, end)
		body := data[1:end]
		assert.Equal(t, strings.Repeat(string(body[0]), 256), string(body))
		data = data[end+1:]
	}
}
