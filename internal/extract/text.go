/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package extract

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FromTextFile reads a plain-text screenplay. Non-UTF-8 input is decoded as
// Latin-1 so legacy files still come through.
func FromTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

var (
	rtfControlRe = regexp.MustCompile(`\\[a-zA-Z]+-?\d*\s?`)
	rtfGroupRe   = regexp.MustCompile(`[{}]`)
)

// FromRTF does a best-effort strip of RTF control words and group braces.
// \par markers become newlines before the generic strip.
func FromRTF(path string) (string, error) {
	raw, err := FromTextFile(path)
	if err != nil {
		return "", err
	}
	s := strings.ReplaceAll(raw, `\par`, "\n")
	s = rtfControlRe.ReplaceAllString(s, "")
	s = rtfGroupRe.ReplaceAllString(s, "")
	return s, nil
}
