/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config handles the user-editable YAML configuration file.
// Environment variables are treated as read-only overrides at runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CacheConfig controls the local parse-result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty means <user cache dir>/scriptbreakdown
}

// ParsingConfig holds tunables for the breakdown pipeline surface.
type ParsingConfig struct {
	// TaxonomyFile optionally points at a JSON taxonomy override; empty
	// means the built-in trigger table.
	TaxonomyFile string `yaml:"taxonomy_file"`
}

// LoggingConfig mirrors log.Options in YAML form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the persisted configuration.
// config_version: bump when the structure changes incompatibly.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Cache         CacheConfig   `yaml:"cache"`
	Parsing       ParsingConfig `yaml:"parsing"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Cache:         CacheConfig{Enabled: true, Dir: ""},
		Parsing:       ParsingConfig{TaxonomyFile: ""},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvCacheEnabled = "SBD_CACHE_ENABLED"
	EnvCacheDir     = "SBD_CACHE_DIR"
	EnvTaxonomyFile = "SBD_TAXONOMY_FILE"
	EnvLogLevel     = "SBD_LOG_LEVEL"
	EnvLogFormat    = "SBD_LOG_FORMAT"
	EnvLogSource    = "SBD_LOG_SOURCE"
	EnvLogFile      = "SBD_LOG_FILE"
)

// Path returns the config file location in the user scope.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "scriptbreakdown", "config.yaml"), nil
}

// Load reads the config from path, applies defaults for a missing file, and
// then applies environment overrides on top.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := yaml.Unmarshal(b, &cfg); uerr != nil {
			return Defaults(), fmt.Errorf("parse config: %w", uerr)
		}
	case errors.Is(err, os.ErrNotExist):
		// missing file is fine; defaults apply
	default:
		return Defaults(), fmt.Errorf("read config: %w", err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes cfg to path atomically, creating parent directories.
func Save(path string, cfg AppConfig) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("config path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// CacheDir resolves the effective cache directory.
func (c AppConfig) CacheDir() (string, error) {
	if strings.TrimSpace(c.Cache.Dir) != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "scriptbreakdown"), nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		cfg.Cache.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv(EnvTaxonomyFile); v != "" {
		cfg.Parsing.TaxonomyFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogSource); v != "" {
		cfg.Logging.Source = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}
