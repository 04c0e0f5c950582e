/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vfx

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// taxonomyFileSchema validates user-supplied taxonomy files before any
// pattern compilation. Bad severities or missing keywords fail here with a
// readable message instead of surfacing as scan-time oddities.
const taxonomyFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "categories"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "severity", "keywords"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "severity": {"enum": ["low", "medium", "high"]},
          "keywords": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          },
          "exclusions": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

type taxonomyFile struct {
	Version    string `json:"version"`
	Categories []struct {
		Name       string   `json:"name"`
		Severity   Severity `json:"severity"`
		Keywords   []string `json:"keywords"`
		Exclusions []string `json:"exclusions"`
	} `json:"categories"`
}

// LoadTaxonomy reads a JSON taxonomy file, validates it against the embedded
// schema, and compiles it. The returned version string replaces
// TaxonomyVersion in cache keys so overridden taxonomies never collide with
// built-in results.
func LoadTaxonomy(path string) ([]Category, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read taxonomy file: %w", err)
	}
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(taxonomyFileSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, "", fmt.Errorf("validate taxonomy file: %w", err)
	}
	if !res.Valid() {
		return nil, "", fmt.Errorf("invalid taxonomy file: %s", firstIssue(res))
	}

	var tf taxonomyFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, "", fmt.Errorf("decode taxonomy file: %w", err)
	}
	specs := make([]categorySpec, 0, len(tf.Categories))
	for _, c := range tf.Categories {
		specs = append(specs, categorySpec{
			name:       c.Name,
			severity:   c.Severity,
			keywords:   c.Keywords,
			exclusions: c.Exclusions,
		})
	}
	compiled, err := compileSpecs(specs)
	if err != nil {
		return nil, "", fmt.Errorf("compile taxonomy patterns: %w", err)
	}
	return compiled, tf.Version, nil
}

func firstIssue(res *gojsonschema.Result) string {
	for _, e := range res.Errors() {
		return e.String()
	}
	return "unknown validation error"
}
