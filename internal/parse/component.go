// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// scriptBlock is a byte range of a source file parsed with one grammar.
type scriptBlock struct {
	lang       Language
	start, end int
}

// scriptBlocks finds the top-level <script> and <script setup> blocks of a
// single-file component. Scripts nested in other blocks or inside comments
// are skipped.
func scriptBlocks(src []byte) []scriptBlock {
	var (
		blocks  []scriptBlock
		offset  int
		block   string // name of the open top-level block
		depth   int    // nesting of block inside itself
		pending *Language
	)

	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return blocks
		}

		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)

			switch {
			case block == "":
				block, depth = tag, 1
				if tag == "script" {
					lang := scriptLang(z, hasAttr)
					pending = &lang
				}

			case tag == block:
				depth++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if block != "" && string(name) == block {
				if depth--; depth == 0 {
					block, pending = "", nil
				}
			}

		case html.TextToken:
			if pending != nil {
				blocks = append(blocks, scriptBlock{lang: *pending, start: start, end: offset})
				pending = nil
			}
		}
	}
}

// scriptLang reads the lang attribute of the current <script> tag.
func scriptLang(z *html.Tokenizer, more bool) Language {
	lang := JavaScript

	for more {
		var key, val []byte
		key, val, more = z.TagAttr()

		if string(key) != "lang" {
			continue
		}

		switch strings.ToLower(string(val)) {
		case "ts":
			lang = TypeScript

		case "tsx":
			lang = TSX
		}
	}

	return lang
}
