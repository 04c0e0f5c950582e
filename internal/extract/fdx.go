/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package extract

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Final Draft XML carries typed paragraphs. Each type is re-laid-out with the
// indentation a standard screenplay page would use so downstream regexes see
// familiar shapes.
type fdxDocument struct {
	Content fdxContent `xml:"Content"`
}

type fdxContent struct {
	Paragraphs []fdxParagraph `xml:"Paragraph"`
}

type fdxParagraph struct {
	Type  string    `xml:"Type,attr"`
	Texts []fdxText `xml:"Text"`
}

type fdxText struct {
	Value string `xml:",chardata"`
}

// FromFDX extracts screenplay text from a Final Draft .fdx file.
func FromFDX(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read fdx: %w", err)
	}
	var doc fdxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parse fdx xml: %w", err)
	}

	var lines []string
	for _, para := range doc.Content.Paragraphs {
		var sb strings.Builder
		for _, t := range para.Texts {
			sb.WriteString(t.Value)
		}
		line := strings.TrimSpace(sb.String())
		if line == "" {
			lines = append(lines, "")
			continue
		}
		switch strings.TrimSpace(para.Type) {
		case "Scene Heading", "Shot":
			lines = append(lines, "", strings.ToUpper(line), "")
		case "Action":
			lines = append(lines, line, "")
		case "Character":
			lines = append(lines, "", "                         "+strings.ToUpper(line))
		case "Parenthetical":
			lines = append(lines, "                    "+line)
		case "Dialogue":
			lines = append(lines, "               "+line)
		case "Transition":
			lines = append(lines, "", "                                            "+strings.ToUpper(line), "")
		default:
			// General, notes and anything untyped
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
