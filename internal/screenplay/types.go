/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package screenplay recovers logical structure from semi-structured
// screenplay text: scene boundaries, character cues, and (via the vfx
// package) keyword triggers. Every function here is a total, deterministic
// transform over its input string; there is no I/O and no shared state.
package screenplay

import "scriptbreakdown/internal/vfx"

// IntExt classifies a scene heading's interior/exterior prefix.
type IntExt string

const (
	Interior    IntExt = "int"
	Exterior    IntExt = "ext"
	IntExtBoth  IntExt = "int_ext"
	IntExtUnset IntExt = "unspecified"
)

// DayNight is the four-way time-of-day classification derived from the
// slugline's trailing clause.
type DayNight string

const (
	Day             DayNight = "day"
	Night           DayNight = "night"
	Dawn            DayNight = "dawn"
	Dusk            DayNight = "dusk"
	Continuous      DayNight = "continuous"
	DayNightUnknown DayNight = "unspecified"
)

// Scene is one contiguous slice of the screenplay between two headings.
// Number is assigned by arrival order; numbers embedded in the slugline are
// discarded. Characters and Triggers are filled by later pipeline passes.
type Scene struct {
	Number           int                  `json:"scene_number"`
	Slugline         string               `json:"slugline"`
	IntExt           IntExt               `json:"int_ext"`
	DayNight         DayNight             `json:"day_night"`
	TimeOfDay        string               `json:"time_of_day,omitempty"`
	Location         string               `json:"location"`
	RawText          string               `json:"raw_text"`
	WordCount        int                  `json:"word_count"`
	Characters       []string             `json:"characters"`
	Triggers         []vfx.Trigger        `json:"vfx_triggers"`
	OutputCategories []vfx.OutputCategory `json:"vfx_categories"`
}

// Character is a speaker derived from dialogue cue lines. Identity is the
// canonical name; Variants keeps the verbatim cue lines it was seen under
// for audit, Extensions the delivery tags (V.O., O.S., ...). CONT'D is a
// continuation marker, not a delivery mode, and is never an extension.
type Character struct {
	CanonicalName string   `json:"canonical_name"`
	Variants      []string `json:"variants"`
	Extensions    []string `json:"extensions"`
}

func (c *Character) addVariant(v string)   { c.Variants = insertSorted(c.Variants, v) }
func (c *Character) addExtension(e string) { c.Extensions = insertSorted(c.Extensions, e) }

// merge folds other's variants and extensions into c. Used when per-scene
// registries are combined into the document-level registry.
func (c *Character) merge(other *Character) {
	for _, v := range other.Variants {
		c.addVariant(v)
	}
	for _, e := range other.Extensions {
		c.addExtension(e)
	}
}

// insertSorted adds s to a sorted, duplicate-free slice.
func insertSorted(list []string, s string) []string {
	lo, hi := 0, len(list)
	for lo < hi {
		mid := (lo + hi) / 2
		if list[mid] < s {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(list) && list[lo] == s {
		return list
	}
	list = append(list, "")
	copy(list[lo+1:], list[lo:])
	list[lo] = s
	return list
}

// Document is the fully parsed screenplay. Once returned by Parse it is
// owned by the caller and never mutated again.
type Document struct {
	Title        string                `json:"title"`
	Text         string                `json:"text"`
	Scenes       []Scene               `json:"scenes"`
	Characters   map[string]*Character `json:"characters"`
	PageEstimate int                   `json:"page_estimate"`
	Warnings     []string              `json:"warnings,omitempty"`
}
