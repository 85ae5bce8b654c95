package mcp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/doodles/pkg/mcp"
	"github.com/macropower/doodles/pkg/paging"
	"github.com/macropower/doodles/pkg/ui"
)

type fakeController struct {
	err    error
	status paging.Status
	gotos  []int
	mu     sync.Mutex
}

func (c *fakeController) Status() paging.Status {
	return c.status
}

func (c *fakeController) GoTo(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}

	c.gotos = append(c.gotos, i)

	return nil
}

var band = paging.Status{
	Title:    "Band",
	Pages:    []string{"John", "Paul", "George", "Ringo"},
	Snapshot: paging.Snapshot{Index: 1, Count: 4},
	Open:     true,
}

func connect(t *testing.T, s *mcp.Server) *sdk.ClientSession {
	t.Helper()

	ctx := t.Context()
	clientTransport, serverTransport := sdk.NewInMemoryTransports()

	serverSession, err := s.Server().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdk.NewClient(&sdk.Implementation{Name: "client"}, nil)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, clientSession.Close())
		assert.NoError(t, serverSession.Wait())
	})

	return clientSession
}

func TestGetPagerState(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want   map[string]any
		status paging.Status
	}{
		"closed": {
			want: map[string]any{
				"message":    "No pager is open. The user is browsing the gallery.",
				"index":      float64(0),
				"count":      float64(0),
				"dragOffset": float64(0),
				"open":       false,
				"dragging":   false,
			},
		},
		"open": {
			status: band,
			want: map[string]any{
				"title":      "Band",
				"message":    `Pager "Band" is showing page 2 of 4 (Paul). Pages: John, Paul, George, and Ringo.`,
				"pages":      []any{"John", "Paul", "George", "Ringo"},
				"index":      float64(1),
				"count":      float64(4),
				"dragOffset": float64(0),
				"open":       true,
				"dragging":   false,
			},
		},
		"dragging": {
			status: paging.Status{
				Title:    "Single",
				Pages:    []string{"Only Page"},
				Snapshot: paging.Snapshot{Count: 1, Dragging: true, DragOffset: -12},
				Open:     true,
			},
			want: map[string]any{
				"title":      "Single",
				"message":    `Pager "Single" is showing page 1 of 1 (Only Page). Pages: Only Page. The user is dragging.`,
				"pages":      []any{"Only Page"},
				"index":      float64(0),
				"count":      float64(1),
				"dragOffset": float64(-12),
				"open":       true,
				"dragging":   true,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cs := connect(t, mcp.NewServer("", &fakeController{status: tc.status}))

			r, err := cs.CallTool(t.Context(), &sdk.CallToolParams{
				Name:      "get_pager_state",
				Arguments: map[string]any{},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.StructuredContent)
		})
	}
}

func TestGotoPage(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		ctrl      *fakeController
		want      map[string]any
		wantGotos []int
		index     int
	}{
		"in range": {
			ctrl:  &fakeController{status: band},
			index: 2,
			want: map[string]any{
				"message": `Requested page 2 of "Band".`,
				"target":  float64(2),
				"sent":    true,
			},
			wantGotos: []int{2},
		},
		"clamped": {
			ctrl:  &fakeController{status: band},
			index: 10,
			want: map[string]any{
				"message": `Requested page 3 of "Band". Index 10 was clamped to 3.`,
				"target":  float64(3),
				"sent":    true,
			},
			wantGotos: []int{10},
		},
		"no pager": {
			ctrl:  &fakeController{err: ui.ErrNoPager},
			index: 1,
			want: map[string]any{
				"error":   "no pager is open",
				"message": "INVALID STATE ERROR: no pager is open. Use get_pager_state to check that a pager with pages is open.",
				"target":  float64(0),
				"sent":    false,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cs := connect(t, mcp.NewServer("", tc.ctrl))

			r, err := cs.CallTool(t.Context(), &sdk.CallToolParams{
				Name:      "goto_page",
				Arguments: map[string]any{"index": tc.index},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.StructuredContent)
			assert.Equal(t, tc.wantGotos, tc.ctrl.gotos)
		})
	}
}

func TestGotoPageRemote(t *testing.T) {
	t.Parallel()

	store := paging.NewStore()
	store.Publish(band)

	sender := &recorder{}
	cs := connect(t, mcp.NewServer("", ui.NewRemote(sender, store)))

	_, err := cs.CallTool(t.Context(), &sdk.CallToolParams{
		Name:      "goto_page",
		Arguments: map[string]any{"index": 3},
	})
	require.NoError(t, err)

	require.Len(t, sender.msgs, 1)
}

func TestTracing(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := trace.NewTracerProvider(trace.WithSyncer(exporter))

	t.Cleanup(func() {
		assert.NoError(t, tp.Shutdown(t.Context()))
	})

	s := mcp.NewServer("", &fakeController{status: band}, mcp.WithTracer(tp.Tracer("test")))
	cs := connect(t, s)

	_, err := cs.CallTool(t.Context(), &sdk.CallToolParams{
		Name:      "get_pager_state",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "get_pager_state", spans[0].Name)
}
