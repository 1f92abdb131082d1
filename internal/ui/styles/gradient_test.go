package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestGradientBar(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		ratio  float64
		filled int
	}{
		{"empty", 10, 0, 0},
		{"half", 10, 0.5, 5},
		{"full", 10, 1, 10},
		{"clamped above", 10, 3, 10},
		{"clamped below", 10, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(GradientBar(tt.width, tt.ratio, "━", "─"))
			if w := ansi.StringWidth(got); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
			if n := strings.Count(got, "━"); n != tt.filled {
				t.Errorf("filled = %d, want %d", n, tt.filled)
			}
		})
	}

	if GradientBar(0, 0.5, "━", "─") != "" {
		t.Error("zero width should render nothing")
	}
}

func TestApplyGradient_KeepsText(t *testing.T) {
	got := ansi.Strip(ApplyBoldGradient("Hello 世界", T().Primary, T().Secondary))
	if got != "Hello 世界" {
		t.Errorf("ApplyBoldGradient changed text: %q", got)
	}
	if ApplyGradient("", T().Primary, T().Secondary) != "" {
		t.Error("empty text should render nothing")
	}
}
