package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"syllacard/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{60 * time.Second, "1m 0s"},
		{95 * time.Second, "1m 35s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
		{2 * time.Hour, "2h 0m 0s"},
		{1500 * time.Millisecond, "1s"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.d), "formatDuration(%v)", tc.d)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, percentage(0, 0))
	assert.Equal(t, 0, percentage(5, 0))
	assert.Equal(t, 50, percentage(1, 2))
	assert.Equal(t, 66, percentage(2, 3))
	assert.Equal(t, 100, percentage(7, 7))
}

func TestRenderDiffCoversEveryPosition(t *testing.T) {
	res := domain.EvaluateAnswer("ple", "pla")
	out := renderDiff(res.Diff)

	// Styling aside, every diff position contributes its character.
	for _, seg := range res.Diff {
		assert.Contains(t, out, string(seg.Char))
	}
}
