package navigator

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"zero velocity", Config{Velocity: 0, StepSize: 1}, false},
		{"negative step", Config{Velocity: 10, StepSize: -1}, false},
		{"nan velocity", Config{Velocity: math.NaN(), StepSize: 1}, false},
		{"inf step", Config{Velocity: 1, StepSize: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{"velocity": "4", "step": "0.5", "angle": "tangent"})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Velocity != 4 || cfg.StepSize != 0.5 || cfg.AngleMode != AngleTangent {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if cfg, err := FromMap(nil); err != nil || cfg != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, %v", cfg, err)
	}
	if _, err := FromMap(map[string]string{"velocity": "-1"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative velocity, got %v", err)
	}
	if _, err := FromMap(map[string]string{"step": "fast"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unparseable step, got %v", err)
	}
	if _, err := FromMap(map[string]string{"angle": "polar"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown angle mode, got %v", err)
	}
}

func TestAgentRejectsInvalidConfig(t *testing.T) {
	if _, err := NewAgent(Config{Velocity: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	agent, err := NewAgent(DefaultConfig())
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if err := agent.SetConfig(Config{Velocity: -2, StepSize: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if agent.Config() != DefaultConfig() {
		t.Fatal("rejected config must not replace the active one")
	}
}
