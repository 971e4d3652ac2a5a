package ui

import (
	"slices"
	"testing"

	"tensor-field/internal/core"
)

func TestStepFloat(t *testing.T) {
	ctrl := core.ParameterControl{Key: "velocity", Step: 1, Min: 0.5, Max: 3, HasMin: true, HasMax: true}
	cases := []struct {
		name      string
		current   float64
		direction int
		want      float64
		changed   bool
	}{
		{"up", 1, 1, 2, true},
		{"clamp max", 2.5, 1, 3, true},
		{"at max", 3, 1, 3, false},
		{"clamp min", 1, -1, 0.5, true},
		{"no direction", 1, 0, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := stepFloat(ctrl, tc.current, tc.direction)
			if got != tc.want || changed != tc.changed {
				t.Fatalf("stepFloat(%v, %d) = %v, %v; want %v, %v", tc.current, tc.direction, got, changed, tc.want, tc.changed)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(core.ParameterControl{Step: 1}, 10); got != "10.0" {
		t.Fatalf("formatFloat = %q", got)
	}
	if got := formatFloat(core.ParameterControl{Step: 0.25}, 1.5); got != "1.50" {
		t.Fatalf("formatFloat = %q", got)
	}
	if got := formatFloat(core.ParameterControl{}, 0.123); got != "0.12" {
		t.Fatalf("formatFloat default step = %q", got)
	}
}

func TestStatusLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Navigator", Params: []core.Parameter{
			{Key: "velocity", Label: "Velocity", Value: "10"},
			{Key: "angle_mode", Label: "Angle mode", Value: "atan2"},
		}},
		{Name: "Agent", Params: []core.Parameter{{Key: "state", Label: "State", Value: "running"}}},
	}}
	got := statusLines(snap, map[string]bool{"velocity": true})
	want := []string{"Angle mode: atan2", "State: running"}
	if !slices.Equal(got, want) {
		t.Fatalf("statusLines = %v, want %v", got, want)
	}
}
