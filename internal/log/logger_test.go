/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in).Level(); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitAndL(t *testing.T) {
	Init(Options{Level: "debug", Format: "json"})
	if L() == nil {
		t.Fatalf("L() returned nil after Init")
	}
	if WithComponent("pipeline") == nil {
		t.Fatalf("WithComponent returned nil")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("SBD_LOG_LEVEL", "")
	t.Setenv("SBD_LOG_FORMAT", "")
	opts := FromEnv()
	if opts.Level != "info" || opts.Format != "console" {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestInitWithFileHandler(t *testing.T) {
	file := t.TempDir() + "/app.log"
	Init(Options{Level: "info", Format: "console", File: file})
	L().Info("hello from test")
}
