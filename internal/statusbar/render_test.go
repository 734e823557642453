package statusbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/claude-tools/claude-statusbar/internal/config"
	"github.com/claude-tools/claude-statusbar/internal/usage"
)

var renderNow = time.Date(2024, time.December, 20, 10, 0, 0, 0, time.Local)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func plainRenderer() Renderer {
	return Renderer{
		Color:        false,
		ClockFormat:  config.Clock24,
		ResetDisplay: config.ResetRemaining,
	}
}

func TestRenderFullStatus(t *testing.T) {
	cached := usage.Cached{
		SessionPercent: intPtr(16),
		SessionReset:   timePtr(renderNow.Add(2*time.Hour + 30*time.Minute)),
		WeekPercent:    intPtr(13),
		WeekReset:      timePtr(renderNow.Add(5*24*time.Hour + 21*time.Hour)),
	}

	got := plainRenderer().Render("Op+T", cached, renderNow)
	assert.Equal(t, "🤖Op+T | 📊16% ⏱️2h30m | 📆13% ⏱️5d21h", got)
}

func TestRenderUnknownFields(t *testing.T) {
	got := plainRenderer().Render("?", usage.Cached{}, renderNow)
	assert.Equal(t, "🤖? | 📊?% ⏱️? | 📆?% ⏱️?", got)
}

func TestRenderClockDisplay(t *testing.T) {
	cached := usage.Cached{
		SessionPercent: intPtr(50),
		SessionReset:   timePtr(time.Date(2024, time.December, 21, 2, 30, 0, 0, time.Local)),
		WeekPercent:    intPtr(80),
		WeekReset:      timePtr(time.Date(2024, time.December, 30, 17, 0, 0, 0, time.Local)),
	}

	r := plainRenderer()
	r.ResetDisplay = config.ResetClock

	got := r.Render("So", cached, renderNow)
	assert.Equal(t, "🤖So | 📊50% ⏱️2:30 | 📆80% ⏱️30/dec 17h", got)

	r.ClockFormat = config.Clock12
	got = r.Render("So", cached, renderNow)
	assert.Equal(t, "🤖So | 📊50% ⏱️2:30am | 📆80% ⏱️30/dec 5pm", got)
}

func TestRenderColorizedKeepsContent(t *testing.T) {
	cached := usage.Cached{
		SessionPercent: intPtr(90),
		WeekPercent:    intPtr(55),
	}

	r := plainRenderer()
	r.Color = true
	got := r.Render("Op", cached, renderNow)

	// Styling varies with the terminal profile; the payload must survive.
	assert.Contains(t, got, "Op")
	assert.Contains(t, got, "90%")
	assert.Contains(t, got, "55%")
}

func TestPercentStyleBands(t *testing.T) {
	assert.Equal(t, okStyle, percentStyle(intPtr(0)))
	assert.Equal(t, okStyle, percentStyle(intPtr(49)))
	assert.Equal(t, warnStyle, percentStyle(intPtr(50)))
	assert.Equal(t, warnStyle, percentStyle(intPtr(79)))
	assert.Equal(t, critStyle, percentStyle(intPtr(80)))
	assert.Equal(t, critStyle, percentStyle(intPtr(100)))
	assert.Equal(t, dimStyle, percentStyle(nil))
}
