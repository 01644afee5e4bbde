package tankworld

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfigYAML reads a Config from a YAML file on disk, falling back to
// DefaultConfig for any field the file leaves unset, then validates the
// result. Mirrors pthm-soup's yaml.v3-based config loader, giving hosts an
// editable alternative to constructing Config literals in Go.
func LoadConfigYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newConfigError("yaml_path", "reading %s: %v", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, newConfigError("yaml_parse", "parsing %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DumpYAML serializes config back to YAML, for hosts that want to persist a
// tuned configuration alongside a run's snapshots.
func (c *Config) DumpYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
