package main

import (
	"strings"
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Bumper":       "bumper",
		"ContactTint":  "contact_tint",
		"EnemyChaser2": "enemy_chaser2",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRender(t *testing.T) {
	filename, content, err := render("SpeedPad")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if filename != "speed_pad.go" {
		t.Errorf("Expected speed_pad.go, got %s", filename)
	}
	for _, want := range []string{
		"type SpeedPad struct",
		`engine.RegisterScript("SpeedPad", speedPadFactory, speedPadSerializer)`,
		"func (s *SpeedPad) OnCollisionEnter(",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Generated source missing %q", want)
		}
	}
	if strings.Contains(content, "{{") {
		t.Error("Generated source still has placeholders")
	}
}

func TestRenderRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "lower", "Has Space", "Dash-Name"} {
		if _, _, err := render(name); err == nil {
			t.Errorf("Expected an error for %q", name)
		}
	}
}
