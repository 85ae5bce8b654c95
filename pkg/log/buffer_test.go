package log_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/doodles/pkg/log"
)

func entries(cb *log.CircularBuffer) []string {
	var out []string
	for _, e := range cb.Entries() {
		out = append(out, string(e))
	}

	return out
}

func TestCircularBufferCapacity(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		capacity int
		want     int
	}{
		"positive": {capacity: 10, want: 10},
		"zero":     {capacity: 0, want: 100},
		"negative": {capacity: -5, want: 100},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cb := log.NewCircularBuffer(tc.capacity)
			assert.Equal(t, tc.want, cb.Capacity())
			assert.Zero(t, cb.Size())
			assert.False(t, cb.IsFull())
			assert.Nil(t, cb.Entries())
		})
	}
}

func TestCircularBufferWrite(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		writes   []string
		want     []string
		wantFull bool
	}{
		"partial": {
			writes: []string{"a", "b"},
			want:   []string{"a", "b"},
		},
		"exactly full": {
			writes:   []string{"a", "b", "c"},
			want:     []string{"a", "b", "c"},
			wantFull: true,
		},
		"overwrites oldest": {
			writes:   []string{"a", "b", "c", "d", "e"},
			want:     []string{"c", "d", "e"},
			wantFull: true,
		},
		"empty writes are dropped": {
			writes: []string{"a", "", "b"},
			want:   []string{"a", "b"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cb := log.NewCircularBuffer(3)
			for _, w := range tc.writes {
				n, err := cb.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			assert.Equal(t, tc.want, entries(cb))
			assert.Equal(t, len(tc.want), cb.Size())
			assert.Equal(t, tc.wantFull, cb.IsFull())
		})
	}
}

func TestCircularBufferCopies(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)

	p := []byte("entry")
	_, err := cb.Write(p)
	require.NoError(t, err)

	p[0] = 'X'
	assert.Equal(t, []string{"entry"}, entries(cb))

	got := cb.Entries()
	got[0][0] = 'Y'
	assert.Equal(t, []string{"entry"}, entries(cb))
}

func TestCircularBufferClear(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)
	for _, s := range []string{"a", "b", "c"} {
		_, err := cb.Write([]byte(s))
		require.NoError(t, err)
	}

	cb.Clear()
	assert.Zero(t, cb.Size())
	assert.Nil(t, cb.Entries())

	_, err := cb.Write([]byte("d"))
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, entries(cb))
}

func TestCircularBufferWriteTo(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)
	for _, s := range []string{"one\n", "two\n", "three\n"} {
		_, err := cb.Write([]byte(s))
		require.NoError(t, err)
	}

	var buf bytes.Buffer

	n, err := cb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree\n", buf.String())
	assert.Equal(t, int64(len("two\nthree\n")), n)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestCircularBufferWriteToError(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)
	_, err := cb.Write([]byte("a"))
	require.NoError(t, err)

	_, err = cb.WriteTo(errWriter{})
	require.ErrorContains(t, err, "closed")
}

func TestCircularBufferConcurrent(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(50)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 20 {
				_, err := cb.Write([]byte("x"))
				assert.NoError(t, err)
				cb.Entries()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, cb.Size())
	assert.True(t, cb.IsFull())
}
