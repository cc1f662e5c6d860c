package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BlockfallConfig
	if err := yaml.Unmarshal(defaultBlockfallYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBlockfallConfig() {
		t.Fatalf("embedded default %+v differs from hardcoded %+v", cfg, DefaultBlockfallConfig())
	}
}

func TestLoadBlockfallFallsBackToDefault(t *testing.T) {
	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("load with no config files: %v", err)
	}
	if cfg.Gravity.BaseDelayMS <= 0 || cfg.Lock.DelayMS <= 0 {
		t.Fatalf("default config not applied: %+v", cfg)
	}
}

func TestLoadBlockfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("gravity:\n  base_delay_ms: 777\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("load custom config: %v", err)
	}
	if cfg.Gravity.BaseDelayMS != 777 {
		t.Fatalf("base delay %v, want 777", cfg.Gravity.BaseDelayMS)
	}
}

func TestLoadBlockfallMissingCustomPathFails(t *testing.T) {
	if _, err := LoadBlockfall("/nonexistent/blockfall.yaml"); err == nil {
		t.Fatal("missing explicit config path did not error")
	}
}

func TestApplyBlockfallPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantBase    float64
		progression bool
	}{
		{DifficultyEasy, 1200, true},
		{DifficultyNormal, 1000, true},
		{DifficultyHard, 700, true},
		{DifficultyFixed, 1000, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			ApplyBlockfallPreset(&cfg, tt.preset)
			if cfg.Gravity.BaseDelayMS != tt.wantBase {
				t.Errorf("base delay %v, want %v", cfg.Gravity.BaseDelayMS, tt.wantBase)
			}
			if cfg.Progression.Enabled != tt.progression {
				t.Errorf("progression %v, want %v", cfg.Progression.Enabled, tt.progression)
			}
		})
	}
}

func TestKnownPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !KnownPreset(p) {
			t.Errorf("%s not recognized", p)
		}
	}
	if KnownPreset("nightmare") {
		t.Error("unknown preset accepted")
	}
}
