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
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"scriptbreakdown/internal/screenplay"
)

// htmlReport is a self-contained single-file report: no external assets, so
// it can be mailed around a production office.
const htmlReport = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Breakdown — {{.Title}}</title>
<style>
:root {
  --bg: #0f0e0d;
  --surface: #171614;
  --rule: rgba(255,245,230,0.08);
  --text-1: #e8e4de;
  --text-2: #b0a99e;
  --accent: #c9a84c;
  --high: #c4463a;
  --medium: #c9a84c;
  --low: #5a9e6f;
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, 'Segoe UI', sans-serif;
  background: var(--bg);
  color: var(--text-2);
  line-height: 1.6;
  padding: 48px 24px;
}
main { max-width: 920px; margin: 0 auto; }
h1 { color: var(--text-1); font-size: 28px; margin-bottom: 4px; }
.meta { font-size: 13px; margin-bottom: 32px; }
.scene {
  background: var(--surface);
  border: 1px solid var(--rule);
  border-radius: 8px;
  padding: 20px;
  margin-bottom: 16px;
}
.slug { color: var(--text-1); font-weight: 600; font-family: 'Courier New', monospace; }
.num { color: var(--accent); margin-right: 8px; }
.tags { margin-top: 8px; }
.tag {
  display: inline-block;
  font-size: 11px;
  border: 1px solid var(--rule);
  border-radius: 4px;
  padding: 1px 8px;
  margin: 2px 4px 2px 0;
}
.sev-high { color: var(--high); border-color: var(--high); }
.sev-medium { color: var(--medium); border-color: var(--medium); }
.sev-low { color: var(--low); border-color: var(--low); }
.ctx { font-size: 12px; color: var(--text-2); font-style: italic; }
.warnings { color: var(--high); font-size: 13px; margin-bottom: 24px; }
table.chars { font-size: 13px; border-collapse: collapse; margin: 24px 0; }
table.chars td, table.chars th { border: 1px solid var(--rule); padding: 4px 12px; text-align: left; }
table.chars th { color: var(--text-1); }
</style>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<p class="meta">{{.SceneCount}} scenes &middot; est. {{.PageEstimate}} pages &middot; generated {{.Generated}}</p>
{{range .Warnings}}<p class="warnings">&#9888; {{.}}</p>{{end}}
{{if .Characters}}
<table class="chars">
<tr><th>Character</th><th>Variants</th><th>Extensions</th></tr>
{{range .Characters}}<tr><td>{{.CanonicalName}}</td><td>{{join .Variants ", "}}</td><td>{{join .Extensions ", "}}</td></tr>
{{end}}</table>
{{end}}
{{range .Scenes}}
<div class="scene">
  <div class="slug"><span class="num">{{.Number}}</span>{{.Slugline}}</div>
  <div class="tags">
    {{range .OutputCategories}}<span class="tag">{{.}}</span>{{end}}
  </div>
  {{if .Characters}}<div class="tags">Cast: {{join .Characters ", "}}</div>{{end}}
  {{range .Triggers}}
  <div class="tags"><span class="tag sev-{{.Severity}}">{{.Category}}</span> <span class="ctx">&hellip;{{.Context}}&hellip;</span></div>
  {{end}}
</div>
{{end}}
</main>
</body>
</html>
`

type htmlData struct {
	Title        string
	SceneCount   int
	PageEstimate int
	Generated    string
	Warnings     []string
	Characters   []*screenplay.Character
	Scenes       []screenplay.Scene
}

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": func(items []string, sep string) string {
		out := ""
		for i, s := range items {
			if i > 0 {
				out += sep
			}
			out += s
		}
		return out
	},
}).Parse(htmlReport))

// WriteHTML renders the breakdown report to w.
func WriteHTML(w io.Writer, doc *screenplay.Document) error {
	chars := make([]*screenplay.Character, 0, len(doc.Characters))
	for _, c := range doc.Characters {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i].CanonicalName < chars[j].CanonicalName })

	title := doc.Title
	if title == "" {
		title = "Untitled Script"
	}
	data := htmlData{
		Title:        title,
		SceneCount:   len(doc.Scenes),
		PageEstimate: doc.PageEstimate,
		Generated:    time.Now().Format("2006-01-02 15:04"),
		Warnings:     doc.Warnings,
		Characters:   chars,
		Scenes:       doc.Scenes,
	}
	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// SaveHTML writes the report to path, creating parent directories.
func SaveHTML(path string, doc *screenplay.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html: %w", err)
	}
	defer f.Close()
	if err := WriteHTML(f, doc); err != nil {
		return err
	}
	return f.Close()
}
