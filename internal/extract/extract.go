/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package extract turns screenplay files of various formats into plain text
// suitable for the structural parser. Supported formats: Final Draft (.fdx),
// Word (.docx), PDF, plain text, Fountain and RTF.
package extract

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	applog "scriptbreakdown/internal/log"
	"log/slog"
)

// SupportedExtensions lists the file extensions Text accepts, sorted.
func SupportedExtensions() []string {
	exts := []string{".pdf", ".txt", ".text", ".docx", ".fdx", ".rtf", ".fountain"}
	sort.Strings(exts)
	return exts
}

// Supported reports whether the file's extension is a recognized screenplay
// format.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// Text extracts screenplay text from any supported file format, dispatching
// on the file extension.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l := applog.WithComponent("extract").With(slog.String("path", path), slog.String("format", ext))
	switch ext {
	case ".fdx":
		l.Debug("extracting final draft file")
		return FromFDX(path)
	case ".docx":
		l.Debug("extracting word document")
		return FromDOCX(path)
	case ".pdf":
		l.Debug("extracting pdf")
		return FromPDF(path)
	case ".txt", ".text", ".fountain":
		l.Debug("reading plain text")
		return FromTextFile(path)
	case ".rtf":
		l.Debug("reading rtf")
		return FromRTF(path)
	case ".doc":
		return "", fmt.Errorf("legacy .doc is not supported; convert %s to .docx first", filepath.Base(path))
	default:
		return "", fmt.Errorf("unsupported format %q (supported: %s)", ext, strings.Join(SupportedExtensions(), ", "))
	}
}
