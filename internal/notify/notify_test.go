package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claude-tools/claude-statusbar/internal/usage"
)

func intPtr(v int) *int { return &v }

func TestAlertBody(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		snap      usage.Snapshot
		want      string
	}{
		{
			name:      "session over threshold",
			threshold: 80,
			snap:      usage.Snapshot{SessionPercent: intPtr(85)},
			want:      "Session usage at 85%",
		},
		{
			name:      "week over threshold",
			threshold: 80,
			snap:      usage.Snapshot{SessionPercent: intPtr(10), WeekPercent: intPtr(90)},
			want:      "Weekly usage at 90%",
		},
		{
			name:      "session takes precedence",
			threshold: 80,
			snap:      usage.Snapshot{SessionPercent: intPtr(81), WeekPercent: intPtr(95)},
			want:      "Session usage at 81%",
		},
		{
			name:      "under threshold",
			threshold: 80,
			snap:      usage.Snapshot{SessionPercent: intPtr(79), WeekPercent: intPtr(79)},
			want:      "",
		},
		{
			name:      "no data",
			threshold: 80,
			snap:      usage.Snapshot{},
			want:      "",
		},
		{
			name:      "exactly at threshold",
			threshold: 80,
			snap:      usage.Snapshot{SessionPercent: intPtr(80)},
			want:      "Session usage at 80%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alertBody(tt.threshold, tt.snap))
		})
	}
}
