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
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileDefaults(t *testing.T) {
	t.Setenv("NULS_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NULS_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("color: never\nlogging: debug\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.ColorMode())
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NULS_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("color: [unclosed\n"), 0o644))

	cfg, err := Load()
	assert.Error(t, err)
	// Bad config never breaks the listing; defaults apply.
	assert.Equal(t, Default(), cfg)
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color string
		want  ColorMode
	}{
		{"auto", "auto", ColorAuto},
		{"always", "always", ColorAlways},
		{"never", "never", ColorNever},
		{"case_insensitive", "ALWAYS", ColorAlways},
		{"padded", " never ", ColorNever},
		{"empty", "", ColorAuto},
		{"unrecognized", "rainbow", ColorAuto},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Config{Color: tt.color}.ColorMode())
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		logging string
		want    log.Level
	}{
		{"none", "none", log.PanicLevel},
		{"warn", "warn", log.WarnLevel},
		{"info", "info", log.InfoLevel},
		{"debug", "debug", log.DebugLevel},
		{"case_insensitive", "Debug", log.DebugLevel},
		{"empty", "", log.WarnLevel},
		{"unrecognized", "chatty", log.WarnLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Config{Logging: tt.logging}.LogLevel())
		})
	}
}
