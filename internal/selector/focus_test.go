package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scales_practice_backend/internal/model"
)

func TestSplitQuota(t *testing.T) {
	cases := []struct {
		name                string
		quota               int
		focusAvail          int
		otherAvail          int
		probabilityIncrease float64
		wantFocus           int
		wantOther           int
	}{
		{"exact reservation", 5, 10, 10, 80, 4, 1},
		{"half and half", 4, 10, 10, 50, 2, 2},
		{"zero boost", 5, 10, 10, 0, 0, 5},
		{"full boost", 5, 10, 10, 100, 5, 0},
		{"focus pool short, shortfall moves to other", 5, 2, 10, 80, 2, 3},
		{"other pool short, shortfall moves to focus", 5, 10, 0, 20, 5, 0},
		{"both pools short", 5, 1, 1, 80, 1, 1},
		{"boost above 100 clamped to quota", 5, 10, 10, 150, 5, 0},
		{"negative boost clamped to zero", 5, 10, 10, -10, 0, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			focus, other := splitQuota(tc.quota, tc.focusAvail, tc.otherAvail, tc.probabilityIncrease)
			assert.Equal(t, tc.wantFocus, focus, "focus quota")
			assert.Equal(t, tc.wantOther, other, "other quota")
			if tc.focusAvail+tc.otherAvail >= tc.quota {
				assert.Equal(t, tc.quota, focus+other, "combined pool is large enough, no item may be lost")
			}
		})
	}
}

func TestFocusMatches(t *testing.T) {
	c := scaleCandidate(1, "minor_harmonic", 2)
	c.Note = "D"

	cases := []struct {
		name string
		wf   model.WeeklyFocusConfig
		want bool
	}{
		{"all empty means any", model.WeeklyFocusConfig{}, true},
		{"key match", model.WeeklyFocusConfig{Keys: []string{"A", "D"}}, true},
		{"key miss", model.WeeklyFocusConfig{Keys: []string{"A", "B"}}, false},
		{"type match", model.WeeklyFocusConfig{Types: []string{"minor_harmonic"}}, true},
		{"type miss", model.WeeklyFocusConfig{Types: []string{"chromatic"}}, false},
		{"category match", model.WeeklyFocusConfig{Categories: []string{"scale"}}, true},
		{"category miss", model.WeeklyFocusConfig{Categories: []string{"arpeggio"}}, false},
		{"key match but type miss", model.WeeklyFocusConfig{Keys: []string{"D"}, Types: []string{"chromatic"}}, false},
		{"all three match", model.WeeklyFocusConfig{Keys: []string{"D"}, Types: []string{"minor_harmonic"}, Categories: []string{"scale"}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, focusMatches(tc.wf, c))
		})
	}
}
