package score2pdf

// Notes:
// - CSS builders are pure functions; these tests pin the selectors and
//   key layout values the composer relies on

import (
	"strings"
	"testing"
)

func TestBuildScoreUpCSS(t *testing.T) {
	t.Parallel()

	css := buildScoreUpCSS()

	for _, want := range []string{
		".score-container",
		".point.point-up .ten",
		".point.point-up .up",
		"font-size: 104px",
		"font-size: 60px",
		"top: 136px",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("score-up CSS should contain %q", want)
		}
	}
}

func TestBuildRibbonLayoutCSS(t *testing.T) {
	t.Parallel()

	css := buildRibbonLayoutCSS()

	for _, want := range []string{
		".ribbon",
		".name-content",
		".name-group",
		".sc_year, .honorific",
		".last_name, .first_name",
		"width: 660px",
		"height: 106px",
		"top: 446px",
		"left: 91px",
		"width: 77%",
		"width: 180px",
		"font-family: Inter",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("ribbon CSS should contain %q", want)
		}
	}
}

func TestBuildSubjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		twoLine bool
		want    []string
		absent  string
	}{
		{
			name:    "single line",
			twoLine: false,
			want:    []string{"white-space: nowrap", "top: 155px"},
			absent:  "pre-line",
		},
		{
			name:    "two line",
			twoLine: true,
			want:    []string{"white-space: pre-line", "top: 140px", "line-height: 1.2"},
			absent:  "nowrap",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css := buildSubjectCSS(tt.twoLine)
			for _, want := range tt.want {
				if !strings.Contains(css, want) {
					t.Errorf("subject CSS should contain %q", want)
				}
			}
			if strings.Contains(css, tt.absent) {
				t.Errorf("subject CSS should not contain %q", tt.absent)
			}
		})
	}
}
