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
)

func TestNormalizeLineEndings(t *testing.T) {
	got := Normalize("line 1\r\nline 2\rline 3\nline 4")
	if strings.Contains(got, "\r") {
		t.Fatalf("carriage returns survived: %q", got)
	}
	if n := strings.Count(got, "\n"); n != 3 {
		t.Fatalf("expected 3 newlines, got %d in %q", n, got)
	}
}

func TestNormalizeRemovesPageNumbers(t *testing.T) {
	got := Normalize("some text\n\n  42  \n\nmore text")
	if strings.Contains(got, "42") {
		t.Fatalf("page number survived: %q", got)
	}
	if !strings.Contains(got, "some text") || !strings.Contains(got, "more text") {
		t.Fatalf("content lost: %q", got)
	}
	// 4-digit lines are not page numbers.
	if got := Normalize("year\n2049\nend"); !strings.Contains(got, "2049") {
		t.Fatalf("4-digit line should survive: %q", got)
	}
}

func TestNormalizeRemovesContinuedMarkers(t *testing.T) {
	in := "JOHN\nHello there.\n(CONTINUED)\n\nCONTINUED:\nJOHN (CONT'D)\nMore dialogue."
	got := Normalize(in)
	if strings.Contains(got, "(CONTINUED)") || strings.Contains(got, "CONTINUED:") {
		t.Fatalf("page-break markers survived: %q", got)
	}
	if !strings.Contains(got, "JOHN (CONT'D)") {
		t.Fatalf("character CONT'D cue must be preserved: %q", got)
	}
}

func TestNormalizeDoesNotTouchContinuedSuffix(t *testing.T) {
	// Only full-line markers are artifacts.
	in := "He said CONTINUED: and walked off."
	if got := Normalize(in); got != in {
		t.Fatalf("inline text changed: %q", got)
	}
}

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	got := Normalize("line 1\n\n\n\n\nline 2")
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank run not collapsed: %q", got)
	}
	if !strings.Contains(got, "line 1") || !strings.Contains(got, "line 2") {
		t.Fatalf("content lost: %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\r\n\r\n\r\n\r\nb\r12\n(CONTINUED)\nc",
		"  7  \n\n\n\nCONTINUED:\nINT. LAB - DAY\nJOHN\nHi.",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
