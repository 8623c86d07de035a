// Copyright 2025 nuls Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ColorMode controls when table output is colored.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Config holds the optional user settings from config.yaml.
type Config struct {
	Color   string `yaml:"color"`   // auto, always, never (case insensitive)
	Logging string `yaml:"logging"` // none, warn, info, debug (case insensitive)
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{Color: "auto", Logging: "warn"}
}

// getConfigDir returns the config directory path.
// Uses NULS_CONFIG_DIR env var if set, otherwise defaults to ~/.nuls.
// Computed dynamically to support test isolation.
func getConfigDir() string {
	if dir := os.Getenv("NULS_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".nuls")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ColorMode maps the color setting to a mode, defaulting to auto for
// anything unrecognized.
func (c Config) ColorMode() ColorMode {
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// LogLevel maps the logging setting to a logrus level, defaulting to
// warn for anything unrecognized.
func (c Config) LogLevel() log.Level {
	switch strings.ToLower(strings.TrimSpace(c.Logging)) {
	case "none":
		return log.PanicLevel
	case "info":
		return log.InfoLevel
	case "debug":
		return log.DebugLevel
	default:
		return log.WarnLevel
	}
}
