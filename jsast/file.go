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

package jsast

import "go/token"

// Comment is a single line or block comment, including its delimiters.
type Comment struct {
	Span
	Text string
}

// File is a parsed source file.
//
// A plain script has one [Program]. A single-file component has one
// [Program] per script block, positioned inside the whole file.
type File struct {
	Name      string
	Src       []byte
	Handle    *token.File
	Programs  []*Program
	Comments  []*Comment // sorted by position
	HasErrors bool       // the parser recovered from syntax errors
}

// Start returns the position of the first byte of the file.
func (f *File) Start() token.Pos {
	return token.Pos(f.Handle.Base())
}

// Text returns the source text of a node.
func (f *File) Text(n Node) string {
	return f.TextRange(n.Pos(), n.End())
}

// TextRange returns the source text between two positions, or the empty
// string when the range is not inside the file.
func (f *File) TextRange(pos, end token.Pos) string {
	from, to, ok := f.Offsets(pos, end)
	if !ok {
		return ""
	}

	return string(f.Src[from:to])
}

// Offsets converts a position range into byte offsets of the file.
func (f *File) Offsets(pos, end token.Pos) (from, to int, ok bool) {
	if f.Handle == nil || !pos.IsValid() || end < pos {
		return 0, 0, false
	}

	base, size := f.Handle.Base(), f.Handle.Size()
	from, to = int(pos)-base, int(end)-base

	if from < 0 || to > size || to > len(f.Src) {
		return 0, 0, false
	}

	return from, to, true
}

// Line returns the 1-based line number of a position.
func (f *File) Line(pos token.Pos) int {
	return f.Handle.PositionFor(pos, false).Line
}
