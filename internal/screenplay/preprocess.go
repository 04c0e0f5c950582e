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

var (
	// A line of nothing but 1-3 digits is a stray page number. The line is
	// emptied, not deleted, so paragraph boundaries survive.
	pageNumberRe = regexp.MustCompile(`(?m)^[ \t]*\d{1,3}[ \t]*$`)

	// Page-break artifacts. Full-line matches only: "JOHN (CONT'D)" is a
	// character cue and must pass through untouched.
	continuedParenRe = regexp.MustCompile(`(?mi)^[ \t]*\(CONTINUED\)[ \t]*$`)
	continuedColonRe = regexp.MustCompile(`(?mi)^[ \t]*CONTINUED:[ \t]*$`)

	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw extracted text before structural analysis: line
// endings become \n, stray page numbers and CONTINUED page-break markers are
// blanked, and runs of blank lines are collapsed to bound scene-splitting
// ambiguity. Idempotent and total.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = pageNumberRe.ReplaceAllString(text, "")
	text = continuedParenRe.ReplaceAllString(text, "")
	text = continuedColonRe.ReplaceAllString(text, "")

	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return text
}
