/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cache

import (
	"context"
	"testing"

	"scriptbreakdown/internal/screenplay"
)

func TestKeyDeterministicAndSensitive(t *testing.T) {
	a := Key("INT. LAB - DAY\n\nSmoke.", "v1")
	b := Key("INT. LAB - DAY\n\nSmoke.", "v1")
	if a != b {
		t.Fatalf("same inputs gave different keys: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("key length = %d, want 16", len(a))
	}
	if Key("INT. LAB - DAY\n\nSmoke.", "v2") == a {
		t.Fatalf("taxonomy version change should change the key")
	}
	if Key("INT. LAB - NIGHT\n\nSmoke.", "v1") == a {
		t.Fatalf("text change should change the key")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	text := "INT. LAB - DAY\n\nAn explosion rips through the wall."
	doc := screenplay.Parse(text, "Test Script")
	if err := store.Put(ctx, text, "v1", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := store.Get(ctx, text, "v1")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.Title != doc.Title || len(got.Scenes) != len(doc.Scenes) {
		t.Fatalf("cached document mismatch: %+v", got)
	}
	if len(got.Scenes) != 1 || got.Scenes[0].Slugline != doc.Scenes[0].Slugline {
		t.Fatalf("scene mismatch after round trip")
	}
}

func TestGetMiss(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, ok := store.Get(context.Background(), "never stored", "v1"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	text := "INT. LAB - DAY\n\nSmoke fills the corridor."
	first := screenplay.Parse(text, "First")
	second := screenplay.Parse(text, "Second")
	if err := store.Put(ctx, text, "v1", first); err != nil {
		t.Fatalf("Put first: %v", err)
	}
	if err := store.Put(ctx, text, "v1", second); err != nil {
		t.Fatalf("Put second: %v", err)
	}
	got, ok := store.Get(ctx, text, "v1")
	if !ok || got.Title != "Second" {
		t.Fatalf("expected replacement, got %+v ok=%v", got, ok)
	}
}

func TestPurge(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	text := "EXT. STREET - NIGHT\n\nRain hammers the pavement."
	if err := store.Put(ctx, text, "v1", screenplay.Parse(text, "")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Purge(ctx); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if _, ok := store.Get(ctx, text, "v1"); ok {
		t.Fatalf("expected miss after purge")
	}
}
