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

// headingRe is the slugline grammar, applied to one trimmed line at a time.
// Scene-number tokens (leading "42A " or a trailing " 42A") are consumed but
// never kept: scene numbers are reassigned sequentially by arrival order.
var headingRe = regexp.MustCompile(`(?i)^` +
	`(?:\d+[A-Z]?\s+)?` +
	`((?:INT\.?\s*/\s*EXT\.?|EXT\.?\s*/\s*INT\.?)|I/E\.?|INT\.?|EXT\.?|EST\.?)` +
	`[\s.\-/]+` +
	`(.+?)` +
	`(?:\s*[-–—]+\s*` +
	`(DAY|NIGHT|DAWN|DUSK|MORNING|AFTERNOON|EVENING|CONTINUOUS|LATER|SAME\s*TIME|MOMENTS?\s*LATER|SUNSET|SUNRISE)` +
	`)?` +
	`(?:\s+\d+[A-Z]?)?` +
	`\s*$`)

var wsRunRe = regexp.MustCompile(`\s+`)

// timeToDayNight folds the slugline time vocabulary into the four-way
// classification. LATER and its variants say nothing about light, so they
// stay unspecified.
var timeToDayNight = map[string]DayNight{
	"day":           Day,
	"night":         Night,
	"dawn":          Dawn,
	"dusk":          Dusk,
	"morning":       Day,
	"afternoon":     Day,
	"evening":       Night,
	"continuous":    Continuous,
	"later":         DayNightUnknown,
	"same time":     DayNightUnknown,
	"same":          DayNightUnknown,
	"moments later": DayNightUnknown,
	"moment later":  DayNightUnknown,
	"sunset":        Dusk,
	"sunrise":       Dawn,
}

type heading struct {
	slugline  string
	intExt    IntExt
	dayNight  DayNight
	timeOfDay string
	location  string
}

// parseHeading parses a single line as a slugline. Returns nil for body text.
func parseHeading(line string) *heading {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	h := &heading{slugline: line, dayNight: DayNightUnknown}

	ieRaw := strings.ReplaceAll(strings.ToUpper(m[1]), " ", "")
	switch {
	case strings.Contains(ieRaw, "/"):
		h.intExt = IntExtBoth
	case strings.HasPrefix(ieRaw, "INT"):
		h.intExt = Interior
	case strings.HasPrefix(ieRaw, "EXT"), strings.HasPrefix(ieRaw, "EST"):
		h.intExt = Exterior
	default:
		// Unreachable given the grammar, but never a crash.
		h.intExt = IntExtUnset
	}

	h.location = strings.TrimRight(strings.TrimSpace(m[2]), "-–— ")

	if m[3] != "" {
		h.timeOfDay = strings.ToUpper(strings.TrimSpace(m[3]))
		key := wsRunRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(m[3])), " ")
		if dn, ok := timeToDayNight[key]; ok {
			h.dayNight = dn
		}
	}
	return h
}

// Segment splits normalized text into an ordered list of scenes. Text before
// the first heading is document preamble and is dropped; a document with no
// recognizable heading yields zero scenes. Never fails.
func Segment(text string) []Scene {
	var (
		scenes  []Scene
		current *heading
		buf     []string
	)

	flush := func() {
		if current == nil {
			return
		}
		raw := strings.TrimSpace(strings.Join(buf, "\n"))
		scenes = append(scenes, Scene{
			Number:    len(scenes) + 1,
			Slugline:  current.slugline,
			IntExt:    current.intExt,
			DayNight:  current.dayNight,
			TimeOfDay: current.timeOfDay,
			Location:  current.location,
			RawText:   raw,
			WordCount: len(strings.Fields(raw)),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if h := parseHeading(line); h != nil {
			flush()
			current = h
			buf = buf[:0]
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return scenes
}
