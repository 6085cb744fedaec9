package ui

import (
	"strings"
	"testing"
)

func TestRenderProgressShowsRealPercent(t *testing.T) {
	styles := NewStyles(LightTheme())

	view := RenderProgress(150, 40, styles)
	if !strings.Contains(view, "150.0%") {
		t.Fatalf("expected over-achievement label, got %q", view)
	}

	view = RenderProgress(0, 40, styles)
	if !strings.Contains(view, "0.0%") {
		t.Fatalf("expected zero label, got %q", view)
	}
	if strings.Contains(view, "█") {
		t.Fatalf("expected empty bar at zero percent")
	}
}

func TestRenderProgressBarClampsAtFull(t *testing.T) {
	styles := NewStyles(LightTheme())

	full := RenderProgress(100, 40, styles)
	over := RenderProgress(400, 40, styles)

	if strings.Count(over, "█") != strings.Count(full, "█") {
		t.Fatalf("bar fill must not grow past 100%%")
	}
}
