package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/macropower/doodles/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level   string
		format  string
		want    string
		err     error
		wantDbg bool
	}{
		"json": {
			level:  "info",
			format: "json",
			want:   `"msg":"page changed"`,
		},
		"logfmt": {
			level:  "INFO",
			format: "logfmt",
			want:   `msg="page changed"`,
		},
		"text": {
			level:  "warning",
			format: "text",
		},
		"debug enabled": {
			level:   "debug",
			format:  "json",
			want:    `"msg":"page changed"`,
			wantDbg: true,
		},
		"unknown level": {
			level:  "verbose",
			format: "json",
			err:    log.ErrUnknownLogLevel,
		},
		"unknown format": {
			level:  "info",
			format: "yaml",
			err:    log.ErrUnknownLogFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h, err := log.CreateHandlerWithStrings(&buf, tc.level, tc.format)
			if tc.err != nil {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			logger := slog.New(h)
			assert.Equal(t, tc.wantDbg, h.Enabled(context.Background(), slog.LevelDebug))

			if tc.want == "" {
				return
			}

			logger.Info("page changed", slog.Int("index", 2))
			assert.Contains(t, buf.String(), tc.want)
		})
	}
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	t.Run("stored logger", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		ctx := log.NewContext(context.Background(), logger)

		assert.Same(t, logger, log.WithContext(ctx))
	})

	t.Run("no logger or span", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, slog.Default(), log.WithContext(context.Background()))
	})

	t.Run("span", func(t *testing.T) {
		t.Parallel()

		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 1},
			SpanID:  trace.SpanID{1},
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		assert.NotSame(t, slog.Default(), log.WithContext(ctx))
	})
}

func TestGetLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"error":   slog.LevelError,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
	} {
		got, err := log.GetLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
