/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"scriptbreakdown/internal/screenplay"
	"scriptbreakdown/internal/vfx"
)

// severityRank orders severities for the per-scene trigger listing.
func severityRank(s vfx.Severity) int {
	switch s {
	case vfx.SeverityHigh:
		return 2
	case vfx.SeverityMedium:
		return 1
	default:
		return 0
	}
}

// SavePDF renders a printable breakdown report to path.
// Built-in Helvetica keeps text vector without embedding.
func SavePDF(path string, doc *screenplay.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	title := doc.Title
	if title == "" {
		title = "Untitled Script"
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(fmt.Sprintf("%s — Scene Breakdown", title), true)
	pdf.SetAuthor("scriptbreakdown", false)
	pdf.SetMargins(54, 54, 54)
	pdf.SetAutoPageBreak(true, 54)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 22, title, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 14, fmt.Sprintf("%d scenes, estimated %d pages", len(doc.Scenes), doc.PageEstimate), "", "L", false)
	for _, w := range doc.Warnings {
		pdf.MultiCell(0, 14, "Note: "+w, "", "L", false)
	}
	pdf.Ln(10)

	for _, sc := range doc.Scenes {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 16, fmt.Sprintf("%d. %s", sc.Number, sc.Slugline), "", "L", false)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(80, 80, 80)
		meta := fmt.Sprintf("%s / %s", sc.IntExt, sc.DayNight)
		if sc.TimeOfDay != "" {
			meta += " (" + sc.TimeOfDay + ")"
		}
		meta += fmt.Sprintf(", %d words", sc.WordCount)
		pdf.MultiCell(0, 12, meta, "", "L", false)

		if len(sc.Characters) > 0 {
			pdf.MultiCell(0, 12, "Cast: "+strings.Join(sc.Characters, ", "), "", "L", false)
		}
		if len(sc.OutputCategories) > 0 {
			cats := make([]string, len(sc.OutputCategories))
			for i, c := range sc.OutputCategories {
				cats[i] = string(c)
			}
			pdf.MultiCell(0, 12, "VFX: "+strings.Join(cats, ", "), "", "L", false)
		}
		// High-severity triggers get their context printed so the reader can
		// judge the hit without opening the script.
		for _, t := range sc.Triggers {
			if severityRank(t.Severity) < 2 {
				continue
			}
			pdf.SetTextColor(160, 40, 30)
			pdf.MultiCell(0, 12, fmt.Sprintf("  %s [%s]: ...%s...", t.Category, t.MatchedKeyword, t.Context), "", "L", false)
			pdf.SetTextColor(80, 80, 80)
		}
		pdf.Ln(8)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
