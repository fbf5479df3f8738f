package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no explicit
// path is given.
const EnvConfigPath = "RUNNER_CONFIG"

// SourceEmbedded is reported when the built-in defaults were used.
const SourceEmbedded = "embedded"

// LoadRunner loads the runner configuration and reports where it came from.
// Search order: customPath -> $RUNNER_CONFIG -> ~/.runner/runner.yaml ->
// ./configs/runner.yaml -> embedded default.
//
// Files are overlaid on the defaults, so a file only needs the keys it
// changes. An explicit path (argument or environment) must exist and parse;
// the implicit locations are skipped when missing or broken.
func LoadRunner(customPath string) (RunnerConfig, string, error) {
	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads and parses a YAML file over the defaults.
func loadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DefaultRunnerConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRunnerConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", filename)
}
