/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"testing"
)

func TestCanonicalName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"JOHN", "JOHN"},
		{"JOHN (CONT'D)", "JOHN"},
		{"JOHN (V.O.)", "JOHN"},
		{"JOHN CONT'D", "JOHN"},
		{"JOHN CONTINUING", "JOHN"},
		{"  DETECTIVE   REYES  ", "DETECTIVE REYES"},
		{"MRS. O'BRIEN-SMITH", "MRS. O'BRIEN-SMITH"},
	}
	for _, tc := range cases {
		if got := CanonicalName(tc.in); got != tc.want {
			t.Fatalf("CanonicalName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractCharactersMergesContdVariant(t *testing.T) {
	text := "JOHN\nHello.\n\nJOHN (CONT'D)\nStill me.\n"
	chars := ExtractCharacters(text)
	if len(chars) != 1 {
		t.Fatalf("expected exactly 1 character, got %d: %v", len(chars), chars)
	}
	john, ok := chars["JOHN"]
	if !ok {
		t.Fatalf("JOHN missing from registry")
	}
	if len(john.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %v", john.Variants)
	}
	if len(john.Extensions) != 0 {
		t.Fatalf("CONT'D must not be an extension, got %v", john.Extensions)
	}
}

func TestExtractCharactersRecordsExtensions(t *testing.T) {
	text := "JOHN (V.O.)\nNarrating.\n\nJOHN (O.S.)\nFrom the hallway.\n"
	chars := ExtractCharacters(text)
	john := chars["JOHN"]
	if john == nil {
		t.Fatalf("JOHN missing")
	}
	if len(john.Extensions) != 2 {
		t.Fatalf("expected 2 extensions, got %v", john.Extensions)
	}
	for _, want := range []string{"O.S.", "V.O."} {
		found := false
		for _, e := range john.Extensions {
			if e == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("extension %q missing from %v", want, john.Extensions)
		}
	}
}

func TestExtractCharactersDenylist(t *testing.T) {
	text := "CUT TO\n\nFADE OUT\n\nSMASH CUT TO\n\nTHE END\n\nJANE\nHi.\n"
	chars := ExtractCharacters(text)
	if len(chars) != 1 {
		t.Fatalf("expected only JANE, got %v", chars)
	}
	if _, ok := chars["JANE"]; !ok {
		t.Fatalf("JANE missing")
	}
}

func TestExtractCharactersRejectsShortAndMixedCase(t *testing.T) {
	text := "A\nToo short.\n\nJohn\nlowercase is prose, not a cue.\n"
	if chars := ExtractCharacters(text); len(chars) != 0 {
		t.Fatalf("expected no characters, got %v", chars)
	}
}

func TestExtractCharactersIgnoresCueWithTrailingText(t *testing.T) {
	// Extension vocabulary is closed; arbitrary parentheticals or trailing
	// words disqualify the line.
	text := "JOHN (WHISPERING)\nhello\n\nJOHN SAYS something\n"
	chars := ExtractCharacters(text)
	if len(chars) != 0 {
		t.Fatalf("expected no characters, got %v", chars)
	}
}

func TestExtractCharactersSkipsSluglines(t *testing.T) {
	text := "INT. WAREHOUSE - NIGHT\n\nJOHN\nHello.\n"
	chars := ExtractCharacters(text)
	if len(chars) != 1 {
		t.Fatalf("expected only JOHN, got %v", chars)
	}
	if _, ok := chars["INT. WAREHOUSE - NIGHT"]; ok {
		t.Fatalf("slugline recorded as character")
	}
}

func TestExtractCharactersOnPhoneExtension(t *testing.T) {
	chars := ExtractCharacters("MAYA (ON PHONE)\nCan you hear me?\n")
	maya := chars["MAYA"]
	if maya == nil {
		t.Fatalf("MAYA missing")
	}
	if len(maya.Extensions) != 1 || maya.Extensions[0] != "ON PHONE" {
		t.Fatalf("unexpected extensions: %v", maya.Extensions)
	}
}
