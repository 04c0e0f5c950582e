/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"strings"
	"testing"

	"scriptbreakdown/internal/vfx"
)

const fullScript = `INT. ABANDONED WAREHOUSE - NIGHT

SWAT officers stack up by the door. An EXPLOSION blows out the windows. Smoke and debris fill the air.

DETECTIVE REYES
Everyone get down! The whole place is rigged!

OFFICER CHEN
Copy that. Moving to secondary entry.

EXT. MOUNTAIN HIGHWAY - DAY

A black sedan races along the cliff edge. A HELICOPTER swoops low overhead, matching speed.

MAYA
They found us. Punch it. Take the next exit!

INT. CONTROL ROOM - NIGHT

Dozens of TECHNICIANS monitor banks of screens. Warning lights flash. The room buzzes with tension.

DIRECTOR WARD
The signal is broadcasting. We have six minutes to shut it down.
`

func TestParseFullPipeline(t *testing.T) {
	doc := Parse(fullScript, "Signal Lost Test")
	if doc.Title != "Signal Lost Test" {
		t.Fatalf("title = %q", doc.Title)
	}
	if len(doc.Scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(doc.Scenes))
	}

	s1 := doc.Scenes[0]
	if s1.IntExt != Interior || s1.DayNight != Night {
		t.Fatalf("scene 1 heading: %+v", s1)
	}
	if !containsString(s1.Characters, "DETECTIVE REYES") || !containsString(s1.Characters, "OFFICER CHEN") {
		t.Fatalf("scene 1 characters: %v", s1.Characters)
	}
	if len(s1.Triggers) == 0 {
		t.Fatalf("scene 1 should trigger on explosion/smoke")
	}
	firePyro := false
	for _, tr := range s1.Triggers {
		if tr.Category == "fire_pyro" {
			firePyro = true
		}
	}
	if !firePyro {
		t.Fatalf("scene 1 missing fire_pyro trigger: %+v", s1.Triggers)
	}
	if !containsCategory(s1.OutputCategories, "fx_fire") || !containsCategory(s1.OutputCategories, "fx_smoke_dust") {
		t.Fatalf("scene 1 output categories: %v", s1.OutputCategories)
	}

	s2 := doc.Scenes[1]
	if s2.IntExt != Exterior || !containsString(s2.Characters, "MAYA") {
		t.Fatalf("scene 2: %+v", s2)
	}

	s3 := doc.Scenes[2]
	if s3.DayNight != Night || !containsString(s3.Characters, "DIRECTOR WARD") {
		t.Fatalf("scene 3: %+v", s3)
	}

	for _, name := range []string{"DETECTIVE REYES", "OFFICER CHEN", "MAYA", "DIRECTOR WARD"} {
		if _, ok := doc.Characters[name]; !ok {
			t.Fatalf("document registry missing %q", name)
		}
	}
	if doc.PageEstimate < 1 {
		t.Fatalf("page estimate = %d", doc.PageEstimate)
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse("", "")
	if len(doc.Scenes) != 0 {
		t.Fatalf("expected 0 scenes, got %d", len(doc.Scenes))
	}
	if len(doc.Characters) != 0 {
		t.Fatalf("expected 0 characters, got %v", doc.Characters)
	}
	if doc.PageEstimate != 1 {
		t.Fatalf("page estimate = %d, want 1", doc.PageEstimate)
	}
	if len(doc.Warnings) != 0 {
		t.Fatalf("empty input should warn about nothing: %v", doc.Warnings)
	}
}

func TestParseNoHeadingsWarns(t *testing.T) {
	doc := Parse("Just prose with no sluglines at all.", "")
	if len(doc.Scenes) != 0 {
		t.Fatalf("expected 0 scenes, got %d", len(doc.Scenes))
	}
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "no scene headings") {
		t.Fatalf("expected zero-scene warning, got %v", doc.Warnings)
	}
}

func TestParsePreambleWarns(t *testing.T) {
	doc := Parse("TITLE PAGE TEXT HERE BY AUTHOR\n\nINT. OFFICE - DAY\n\nBody.", "")
	if len(doc.Scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(doc.Scenes))
	}
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "before first scene heading") {
		t.Fatalf("expected preamble warning, got %v", doc.Warnings)
	}
}

func TestParsePageEstimate(t *testing.T) {
	// 500 words over two scenes rounds to 2 pages.
	words := strings.Repeat("word ", 250)
	text := "INT. A - DAY\n" + words + "\nEXT. B - NIGHT\n" + words
	doc := Parse(text, "")
	if doc.PageEstimate != 2 {
		t.Fatalf("page estimate = %d, want 2", doc.PageEstimate)
	}
}

func TestParseDeterministic(t *testing.T) {
	a := Parse(fullScript, "t")
	b := Parse(fullScript, "t")
	if len(a.Scenes) != len(b.Scenes) {
		t.Fatalf("scene counts differ")
	}
	for i := range a.Scenes {
		as, bs := a.Scenes[i], b.Scenes[i]
		if len(as.Triggers) != len(bs.Triggers) {
			t.Fatalf("scene %d trigger counts differ", i+1)
		}
		for j := range as.Triggers {
			if as.Triggers[j] != bs.Triggers[j] {
				t.Fatalf("scene %d trigger %d differs: %+v vs %+v", i+1, j, as.Triggers[j], bs.Triggers[j])
			}
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsCategory(list []vfx.OutputCategory, s string) bool {
	for _, v := range list {
		if string(v) == s {
			return true
		}
	}
	return false
}
