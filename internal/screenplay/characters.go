/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"regexp"
	"strings"
)

// cueRe matches a dialogue cue: an all-caps name (letters, spaces, periods,
// apostrophes, hyphens), optionally followed by one parenthetical extension
// from a fixed vocabulary, anchored to the whole trimmed line.
var cueRe = regexp.MustCompile(`^` +
	`([A-Z][A-Z\s.'\-]+?)` +
	`(?:\s*\((` +
	`V\.?\s*O\.?` +
	`|O\.?\s*S\.?` +
	`|O\.?\s*C\.?` +
	`|CONT'?D?` +
	`|CONTINUING` +
	`|FILTERED` +
	`|SUBTITLED?` +
	`|PRE[\-\s]?LAP` +
	`|ON\s+(?:PHONE|RADIO|TV|SCREEN|SPEAKER)` +
	`|OVER\s+PHONE` +
	`)\))?` +
	`\s*$`)

var (
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	trailingContRe  = regexp.MustCompile(`(?i)\s+(?:CONT'?D?|CONTINUING)\s*$`)
)

// continuationExts are extensions that signal dialogue continuation rather
// than a delivery mode; they are stripped by canonicalization and never
// recorded in a character's extension set.
func isContinuationExt(ext string) bool {
	switch strings.ToUpper(strings.TrimSpace(ext)) {
	case "CONT", "CONTD", "CONT'D", "CONTINUING":
		return true
	}
	return false
}

// cueDenylist holds transitions and directions that satisfy the all-caps cue
// grammar but are never characters.
var cueDenylist = map[string]struct{}{
	"CUT TO":        {},
	"FADE TO":       {},
	"FADE IN":       {},
	"FADE OUT":      {},
	"DISSOLVE TO":   {},
	"SMASH CUT TO":  {},
	"MATCH CUT TO":  {},
	"THE END":       {},
	"CONTINUED":     {},
	"INTERCUT":      {},
	"MONTAGE":       {},
	"END MONTAGE":   {},
	"FLASHBACK":     {},
	"END FLASHBACK": {},
	"SUPER":         {},
	"TITLE CARD":    {},
	"CHYRON":        {},
}

// CanonicalName normalizes a raw cue name: parentheticals stripped, trailing
// CONT'D/CONTINUING dropped, whitespace collapsed.
func CanonicalName(raw string) string {
	name := parentheticalRe.ReplaceAllString(strings.TrimSpace(raw), "")
	name = trailingContRe.ReplaceAllString(name, "")
	name = wsRunRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// ExtractCharacters scans text for dialogue cue lines and returns a registry
// keyed by canonical name. The same character seen under several cue
// variants collapses into one entry that accumulates variants and extensions.
func ExtractCharacters(text string) map[string]*Character {
	characters := map[string]*Character{}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		// Sluglines are all-caps too; they are headings, not speakers.
		if parseHeading(stripped) != nil {
			continue
		}
		m := cueRe.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}

		canonical := CanonicalName(m[1])
		if len(canonical) < 2 {
			continue
		}
		if _, banned := cueDenylist[canonical]; banned {
			continue
		}

		ch, ok := characters[canonical]
		if !ok {
			ch = &Character{CanonicalName: canonical}
			characters[canonical] = ch
		}
		ch.addVariant(stripped)
		if ext := strings.TrimSpace(m[2]); ext != "" && !isContinuationExt(ext) {
			ch.addExtension(ext)
		}
	}
	return characters
}
