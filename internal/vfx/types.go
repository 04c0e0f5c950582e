/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package vfx scans screenplay text for visual-effects trigger keywords.
//
// The taxonomy is a static table of categories, each carrying positive
// keyword patterns, false-positive exclusion patterns, and a severity.
// Adding a category means adding a table entry; the matching engine never
// changes. All patterns are RE2, so worst-case matching stays linear in the
// input length.
package vfx

import "regexp"

// Severity ranks how strongly a trigger category signals VFX cost.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Trigger is a single keyword hit in scanned text.
// Repeated mentions of the same keyword yield repeated triggers; downstream
// scoring treats trigger density as a signal, so no dedup happens here.
type Trigger struct {
	Category       string   `json:"category"`
	MatchedKeyword string   `json:"matched_keyword"`
	Severity       Severity `json:"severity"`
	Context        string   `json:"context"`
	Position       int      `json:"position"`
}

// Category is one compiled entry of the trigger taxonomy.
type Category struct {
	Name       string
	Severity   Severity
	Keywords   []*regexp.Regexp
	Exclusions []*regexp.Regexp
}

// categorySpec is the uncompiled, declaration-friendly form used for the
// built-in table and for user-supplied taxonomy files.
type categorySpec struct {
	name       string
	severity   Severity
	keywords   []string
	exclusions []string
}

// compileSpecs turns pattern strings into a compiled taxonomy.
// Patterns are matched case-insensitively.
func compileSpecs(specs []categorySpec) ([]Category, error) {
	out := make([]Category, 0, len(specs))
	for _, s := range specs {
		c := Category{Name: s.name, Severity: s.severity}
		for _, p := range s.keywords {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, err
			}
			c.Keywords = append(c.Keywords, re)
		}
		for _, p := range s.exclusions {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, err
			}
			c.Exclusions = append(c.Exclusions, re)
		}
		out = append(out, c)
	}
	return out, nil
}

func mustCompileSpecs(specs []categorySpec) []Category {
	out, err := compileSpecs(specs)
	if err != nil {
		panic(err)
	}
	return out
}
