package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevision(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		settings []debug.BuildSetting
		want     string
	}{
		"no settings": {
			want: "unknown",
		},
		"long revision": {
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			want:     "0123456",
		},
		"short revision": {
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			want:     "abc",
		},
		"dirty": {
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "0123456-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, revision(tc.settings))
		})
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Info(), "doodles "+GetVersion())
	assert.Contains(t, Info(), GoOS+"/"+GoArch)
}
