package tankworld

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should validate cleanly, got %v", err)
	}
}

func TestWithOverridesDoesNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	derived := base.WithOverrides(func(c *Config) {
		c.Arena.Width = 9999
		c.PhysicalBounds["speed"] = GeneBounds{Min: 0, Max: 1, Default: 0.5}
	})

	if base.Arena.Width == 9999 {
		t.Fatal("WithOverrides mutated the receiver's Arena.Width")
	}
	if base.PhysicalBounds["speed"].Max == 1 {
		t.Fatal("WithOverrides mutated the receiver's PhysicalBounds map")
	}
	if derived.Arena.Width != 9999 {
		t.Fatalf("expected derived config to carry the override, got %v", derived.Arena.Width)
	}
}

func TestValidateRejectsNonPositiveArena(t *testing.T) {
	cfg := DefaultConfig().WithOverrides(func(c *Config) { c.Arena.Width = 0 })
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a zero-width arena")
	}
}

func TestValidateRejectsOutOfOrderLifeStages(t *testing.T) {
	cfg := DefaultConfig().WithOverrides(func(c *Config) { c.LifeStage.AdultAge = c.LifeStage.JuvenileAge })
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for non-increasing life stage thresholds")
	}
}

func TestValidateRejectsHouseCutOutOfRange(t *testing.T) {
	cfg := DefaultConfig().WithOverrides(func(c *Config) { c.Energy.PokerHouseCut = 1.0 })
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a house cut of exactly 1.0")
	}
}

func TestValidateRejectsInvertedPhysicalBounds(t *testing.T) {
	cfg := DefaultConfig().WithOverrides(func(c *Config) {
		c.PhysicalBounds["speed"] = GeneBounds{Min: 2.0, Max: 1.0, Default: 1.5}
	})
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for Min >= Max in physical_bounds")
	}
}

func TestLoadConfigYAMLRoundTripsThroughDumpYAML(t *testing.T) {
	cfg := DefaultConfig().WithOverrides(func(c *Config) { c.Arena.Width = 1234 })
	data, err := cfg.DumpYAML()
	if err != nil {
		t.Fatalf("DumpYAML failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing temp config file: %v", err)
	}

	loaded, err := LoadConfigYAML(path)
	if err != nil {
		t.Fatalf("LoadConfigYAML failed: %v", err)
	}
	if loaded.Arena.Width != 1234 {
		t.Fatalf("expected Arena.Width 1234 to round-trip, got %v", loaded.Arena.Width)
	}
}

func TestLoadConfigYAMLMissingFileReturnsConfigError(t *testing.T) {
	_, err := LoadConfigYAML(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *ConfigError, got %T: %v", err, err)
	}
}
