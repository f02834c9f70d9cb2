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

// Package astutil provides per-file facts used to filter findings.
package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// vuesanitizer is the name of the linter.
const vuesanitizer = "vuesanitizer"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *jsast.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed *[jsast.File].
func NewCurrentFile(file *jsast.File) CurrentFile {
	if file == nil || file.Handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file, IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a file with a valid handle.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the underlying file.
func (c CurrentFile) File() *jsast.File {
	return c.file
}

// Generated returns true if the file is a generated or minified file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Line returns the line of pos.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.file.Line(pos)
}

// NoLintComment checks if the line of pos carries a nolint:vuesanitizer comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil || !pos.IsValid() {
		return false
	}

	line := c.Line(pos)

	// comments are sorted, find the first one on or after the line start
	start := c.file.Handle.LineStart(line)
	i, _ := slices.BinarySearchFunc(c.file.Comments, start,
		func(c *jsast.Comment, p token.Pos) int { return int(c.Pos() - p) })

	for _, comment := range c.file.Comments[i:] {
		if c.Line(comment.Pos()) != line {
			return false
		}

		if CommentHasNoLint(comment.Text) {
			return true
		}
	}

	return false
}

var (
	nolintPattern    = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)
	generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)
)

// CommentHasNoLint checks if the provided comment text contains a `nolint:vuesanitizer` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == vuesanitizer || l == "all" {
			return true
		}
	}

	return false
}

// IsGenerated reports whether a file is minified or carries a generated
// code marker before its first statement.
func IsGenerated(file *jsast.File) bool {
	if strings.HasSuffix(strings.ToLower(file.Name), ".min.js") {
		return true
	}

	first := token.NoPos
	if len(file.Programs) > 0 && len(file.Programs[0].Body) > 0 {
		first = file.Programs[0].Body[0].Pos()
	}

	for _, comment := range file.Comments {
		if first.IsValid() && comment.Pos() > first {
			break
		}

		if generatedPattern.MatchString(comment.Text) {
			return true
		}
	}

	return false
}
