/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders a parsed screenplay breakdown to CSV, HTML, PDF and
// JSON.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"scriptbreakdown/internal/screenplay"
)

// csvColumns is the fixed column order of the scene table.
var csvColumns = []string{
	"scene_number",
	"slugline",
	"int_ext",
	"day_night",
	"time_of_day",
	"location",
	"word_count",
	"characters",
	"vfx_categories",
	"vfx_triggers",
}

// pipeJoin renders list cells; multi-valued columns use a pipe delimiter so
// the file stays one row per scene.
func pipeJoin(items []string) string { return strings.Join(items, "|") }

// WriteCSV writes the scene breakdown table to w.
func WriteCSV(w io.Writer, doc *screenplay.Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, sc := range doc.Scenes {
		cats := make([]string, len(sc.OutputCategories))
		for i, c := range sc.OutputCategories {
			cats[i] = string(c)
		}
		trigs := make([]string, len(sc.Triggers))
		for i, t := range sc.Triggers {
			trigs[i] = t.Category + ":" + t.MatchedKeyword
		}
		row := []string{
			strconv.Itoa(sc.Number),
			sc.Slugline,
			string(sc.IntExt),
			string(sc.DayNight),
			sc.TimeOfDay,
			sc.Location,
			strconv.Itoa(sc.WordCount),
			pipeJoin(sc.Characters),
			pipeJoin(cats),
			pipeJoin(trigs),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the breakdown to path, creating parent directories.
func SaveCSV(path string, doc *screenplay.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	if err := WriteCSV(f, doc); err != nil {
		return err
	}
	return f.Close()
}
