package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/zombie-survival/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '@', core.ColorGreen)
	s.SetColored(3, 0, 'z', core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}

	for _, want := range []string{"ab", "@", "z", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, '#', core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "#") {
		t.Errorf("output %q missing cell with unmapped color", out)
	}
}
