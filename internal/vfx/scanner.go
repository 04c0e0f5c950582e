/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vfx

import (
	"regexp"
	"strings"
)

// contextRadius is how many bytes of surrounding text are captured on each
// side of a match. Exclusion patterns are tested against this window only, so
// a false-positive phrase suppresses the nearby hit without blanking the
// whole category for a long scene.
const contextRadius = 50

// Scan runs the built-in taxonomy over text.
func Scan(text string) []Trigger {
	return ScanWith(DefaultTaxonomy, text)
}

// ScanWith runs the given taxonomy over text and returns every keyword hit
// that survives its category's exclusion patterns. Order is deterministic:
// taxonomy order, then keyword order within a category, then match offset.
func ScanWith(taxonomy []Category, text string) []Trigger {
	var triggers []Trigger
	for _, cat := range taxonomy {
		for _, kw := range cat.Keywords {
			for _, loc := range kw.FindAllStringIndex(text, -1) {
				ctx := contextWindow(text, loc[0], loc[1])
				if excluded(cat.Exclusions, ctx) {
					continue
				}
				triggers = append(triggers, Trigger{
					Category:       cat.Name,
					MatchedKeyword: text[loc[0]:loc[1]],
					Severity:       cat.Severity,
					Context:        ctx,
					Position:       loc[0],
				})
			}
		}
	}
	return triggers
}

func contextWindow(text string, start, end int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	// Back off any UTF-8 continuation bytes the clamp may have landed on.
	for lo > 0 && lo < len(text) && text[lo]&0xC0 == 0x80 {
		lo--
	}
	for hi < len(text) && text[hi]&0xC0 == 0x80 {
		hi++
	}
	return strings.TrimSpace(text[lo:hi])
}

func excluded(exclusions []*regexp.Regexp, ctx string) bool {
	for _, ex := range exclusions {
		if ex.MatchString(ctx) {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest severity among triggers, or "" if none.
func MaxSeverity(triggers []Trigger) Severity {
	rank := map[Severity]int{SeverityLow: 1, SeverityMedium: 2, SeverityHigh: 3}
	var best Severity
	for _, t := range triggers {
		if rank[t.Severity] > rank[best] {
			best = t.Severity
		}
	}
	return best
}

// CategoryNames returns the distinct category names among triggers in
// first-seen order.
func CategoryNames(triggers []Trigger) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range triggers {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}
