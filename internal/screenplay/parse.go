/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"scriptbreakdown/internal/vfx"
)

// wordsPerPage is the rough screenplay convention used for the page estimate.
const wordsPerPage = 250

// Parse runs the whole pipeline over raw text: normalize, segment, extract
// characters (per scene and document-wide), scan triggers per scene, and map
// trigger categories into the output taxonomy. Total over any input; an
// empty string yields zero scenes, zero characters, page estimate 1.
func Parse(raw, title string) *Document {
	return ParseWithTaxonomy(raw, title, vfx.DefaultTaxonomy)
}

// ParseWithTaxonomy is Parse with a caller-supplied trigger taxonomy, used
// when a taxonomy override file is configured.
func ParseWithTaxonomy(raw, title string, taxonomy []vfx.Category) *Document {
	text := Normalize(raw)
	scenes := Segment(text)

	doc := &Document{
		Title:      title,
		Text:       text,
		Scenes:     scenes,
		Characters: ExtractCharacters(text),
	}

	totalWords := 0
	for i := range doc.Scenes {
		s := &doc.Scenes[i]
		s.Characters = sortedNames(ExtractCharacters(s.RawText))
		s.Triggers = vfx.ScanWith(taxonomy, s.RawText)
		s.OutputCategories = vfx.MapCategories(vfx.CategoryNames(s.Triggers))
		totalWords += s.WordCount
	}

	doc.PageEstimate = int(math.Round(float64(totalWords) / wordsPerPage))
	if doc.PageEstimate < 1 {
		doc.PageEstimate = 1
	}

	doc.Warnings = collectWarnings(text, doc.Scenes)
	return doc
}

func sortedNames(chars map[string]*Character) []string {
	names := make([]string, 0, len(chars))
	for name := range chars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// collectWarnings notes structure the parser had to give up on. These are
// advisory only; malformed headings are never errors.
func collectWarnings(text string, scenes []Scene) []string {
	var warnings []string
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if len(scenes) == 0 {
		return []string{"no scene headings detected; document yields zero scenes"}
	}
	if idx := strings.Index(text, scenes[0].Slugline); idx > 0 {
		if pre := strings.Fields(text[:idx]); len(pre) > 0 {
			warnings = append(warnings,
				fmt.Sprintf("%d words before first scene heading were ignored", len(pre)))
		}
	}
	return warnings
}
