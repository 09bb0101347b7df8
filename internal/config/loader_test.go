package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/shapematch/internal/core"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultMatchConfig()) {
		t.Errorf("embedded YAML and DefaultMatchConfig differ:\n%+v\n%+v", cfg, DefaultMatchConfig())
	}
}

func TestDefaultCatalogLayout(t *testing.T) {
	cfg := DefaultMatchConfig()

	if len(cfg.Tokens) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(cfg.Tokens))
	}

	tests := []struct {
		name   string
		source core.Point
		target core.Point
	}{
		{"Circle", core.Pt(270, 90), core.Pt(100, 400)},
		{"Square", core.Pt(470, 90), core.Pt(240, 400)},
		{"Triangle", core.Pt(670, 90), core.Pt(380, 400)},
		{"Trapezium", core.Pt(270, 210), core.Pt(520, 400)},
		{"Rhombus", core.Pt(470, 210), core.Pt(660, 400)},
		{"Parallelogram", core.Pt(670, 210), core.Pt(800, 400)},
	}

	colors := make(map[string]bool)
	for i, tc := range tests {
		tok := cfg.Tokens[i]
		if tok.Name != tc.name {
			t.Errorf("token %d name = %q, expected %q", i, tok.Name, tc.name)
		}
		if tok.Source.Point() != tc.source || tok.Target.Point() != tc.target {
			t.Errorf("%s: source %v target %v, expected %v %v", tc.name, tok.Source, tok.Target, tc.source, tc.target)
		}
		colors[tok.Color] = true
	}
	if len(colors) != 6 {
		t.Errorf("token colors should be distinct, got %d unique", len(colors))
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.yaml")
	data := []byte("gameplay:\n  duration: 1s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Gameplay.Duration != time.Second {
		t.Errorf("duration = %s, expected 1s", cfg.Gameplay.Duration)
	}
	// Unset keys keep their defaults
	if cfg.Gameplay.ShapeSize != 50 || len(cfg.Tokens) != 6 {
		t.Errorf("partial config lost defaults: size=%d tokens=%d", cfg.Gameplay.ShapeSize, len(cfg.Tokens))
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("tokens: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	var vErr ValidationError
	if !errors.As(err, &vErr) || vErr.Code != "EMPTY_CATALOG" {
		t.Errorf("Load() error = %v, expected EMPTY_CATALOG validation error", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", source)
	}
	if cfg.Gameplay.Duration != 12*time.Second {
		t.Errorf("embedded duration = %s, expected 12s", cfg.Gameplay.Duration)
	}

	userPath := filepath.Join(home, ".shapematch", "configs", "match.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("gameplay:\n  duration: 30s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != userPath || cfg.Gameplay.Duration != 30*time.Second {
		t.Errorf("user config not picked up: source=%q duration=%s", source, cfg.Gameplay.Duration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MatchConfig)
		code   string
	}{
		{"defaults", func(*MatchConfig) {}, ""},
		{"zero canvas", func(c *MatchConfig) { c.Canvas.Width = 0 }, "INVALID_CANVAS"},
		{"zero duration", func(c *MatchConfig) { c.Gameplay.Duration = 0 }, "INVALID_DURATION"},
		{"negative hold", func(c *MatchConfig) { c.Display.Hold = -time.Second }, "INVALID_DURATION"},
		{"zero threshold", func(c *MatchConfig) { c.Gameplay.MatchThreshold = 0 }, "INVALID_SIZE"},
		{"bad slot color", func(c *MatchConfig) { c.Display.SlotColor = "grey" }, "INVALID_COLOR"},
		{"no tokens", func(c *MatchConfig) { c.Tokens = nil }, "EMPTY_CATALOG"},
		{"unnamed token", func(c *MatchConfig) { c.Tokens[2].Name = "" }, "MISSING_NAME"},
		{"duplicate", func(c *MatchConfig) { c.Tokens[1].Name = "Circle" }, "DUPLICATE_TOKEN"},
		{"unknown kind", func(c *MatchConfig) { c.Tokens[0].Kind = "star" }, "UNKNOWN_KIND"},
		{"bad token color", func(c *MatchConfig) { c.Tokens[3].Color = "#12" }, "INVALID_COLOR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatchConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)

			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if vErr.Code != tc.code {
				t.Errorf("code = %s, expected %s", vErr.Code, tc.code)
			}
		})
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := DefaultMatchConfig()
	Overrides{}.Apply(&cfg)
	if !reflect.DeepEqual(cfg, DefaultMatchConfig()) {
		t.Error("zero Overrides should not change the config")
	}

	Overrides{Duration: 5 * time.Second, MatchThreshold: 30, Background: "space.png"}.Apply(&cfg)
	if cfg.Gameplay.Duration != 5*time.Second || cfg.Gameplay.MatchThreshold != 30 || cfg.Canvas.Background != "space.png" {
		t.Errorf("overrides not applied: %+v", cfg.Gameplay)
	}

	Overrides{NoBackground: true}.Apply(&cfg)
	if cfg.Canvas.Background != "" {
		t.Errorf("NoBackground should clear background, got %q", cfg.Canvas.Background)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#a359fc")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != core.RGB(0xa3, 0x59, 0xfc) {
		t.Errorf("ParseColor = %s, expected #a359fc", c.Hex())
	}

	if _, err := ParseColor("purple"); err == nil {
		t.Error("ParseColor should reject named colors")
	}
}
