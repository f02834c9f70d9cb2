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

// Package rewrite synthesizes mechanical source edits for findings.
//
// Every edit is built from the source text of the nodes involved and is
// only returned when the replacement parses as a single expression.
package rewrite

import (
	"slices"
	"strings"

	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// Validator checks that a replacement text is a single well-formed expression.
type Validator interface {
	ValidExpression(text string) bool
}

// Synthesizer builds edits against one file.
type Synthesizer struct {
	file      *jsast.File
	validator Validator
}

// New creates a [Synthesizer] for f. A nil validator accepts every text.
func New(f *jsast.File, v Validator) Synthesizer {
	return Synthesizer{file: f, validator: v}
}

// replace returns an edit replacing n with text, or nil when n is not
// inside the file or text is not a valid expression.
func (s Synthesizer) replace(n jsast.Node, text string) *finding.Edit {
	if _, _, ok := s.file.Offsets(n.Pos(), n.End()); !ok {
		return nil
	}

	if s.validator != nil && !s.validator.ValidExpression(text) {
		return nil
	}

	return &finding.Edit{Pos: n.Pos(), End: n.End(), NewText: text}
}

// NullSafe rewrites the last link of a member access into its null-safe form.
func (s Synthesizer) NullSafe(m *jsast.MemberExpr) *finding.Edit {
	object, property := s.file.Text(m.Object), s.file.Text(m.Property)
	if object == "" || property == "" {
		return nil
	}

	if m.Computed {
		return s.replace(m, object+"?.["+property+"]")
	}

	return s.replace(m, object+"?."+property)
}

// WrapDescriptor wraps a bare prop type in a descriptor object.
func (s Synthesizer) WrapDescriptor(typ jsast.Node) *finding.Edit {
	text := s.file.Text(typ)
	if text == "" {
		return nil
	}

	return s.replace(typ, "{ type: "+text+" }")
}

// CollapseArray replaces a single-element array with its element.
func (s Synthesizer) CollapseArray(arr *jsast.ArrayExpr) *finding.Edit {
	if len(arr.Elements) != 1 {
		return nil
	}

	text := s.file.Text(arr.Elements[0])
	if text == "" {
		return nil
	}

	return s.replace(arr, text)
}

// InsertArgument fills the empty argument list of call with text.
func (s Synthesizer) InsertArgument(call *jsast.CallExpr, text string) *finding.Edit {
	if len(call.Args) != 0 {
		return nil
	}

	src := s.file.Text(call)

	open := strings.LastIndexByte(src, '(')
	if open < 0 || !strings.HasSuffix(src, ")") || strings.TrimSpace(src[open+1:len(src)-1]) != "" {
		return nil
	}

	return s.replace(call, src[:open+1]+text+")")
}

// Unwrap replaces a single-argument call with its argument.
func (s Synthesizer) Unwrap(call *jsast.CallExpr) *finding.Edit {
	if len(call.Args) != 1 {
		return nil
	}

	text := s.file.Text(call.Args[0])
	if text == "" {
		return nil
	}

	return s.replace(call, text)
}

// UpdateDependencies removes the identifiers named in remove from a
// dependency array and appends add. Untouched elements keep their source
// text and the separators between them.
func (s Synthesizer) UpdateDependencies(arr *jsast.ArrayExpr, add, remove []string) *finding.Edit {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}

	src := s.file.Text(arr)
	if src == "" {
		return nil
	}

	kept, cuts := cutElements(src, arr, remove)

	var b strings.Builder
	last := 0
	for _, c := range cuts {
		b.WriteString(src[last:c.from])
		last = c.to
	}

	text := b.String() + src[last:]

	if len(add) > 0 {
		names := strings.Join(add, ", ")

		if kept == 0 {
			text = "[" + names + "]"
		} else {
			// insert behind the last remaining element
			end := strings.LastIndexByte(text, ']')
			if end < 0 {
				return nil
			}

			body := strings.TrimRight(text[:end], " \t\r\n")
			space := text[len(body):end]

			trailing := strings.HasSuffix(body, ",")
			body = strings.TrimSuffix(body, ",")

			text = body + ", " + names
			if trailing {
				text += ","
			}

			text += space + "]"
		}
	} else if kept == 0 {
		text = "[]"
	}

	return s.replace(arr, text)
}

type cut struct{ from, to int }

// cutElements computes the byte ranges of the array text src to delete,
// together with the number of remaining elements. Each removed element takes
// one adjacent comma with it; comments between elements are kept.
func cutElements(src string, arr *jsast.ArrayExpr, remove []string) (kept int, cuts []cut) {
	base := arr.Pos()
	pos := func(i int) int { return int(arr.Elements[i].Pos() - base) }
	end := func(i int) int { return int(arr.Elements[i].End() - base) }

	removed := make([]bool, len(arr.Elements))
	lastKept := -1
	for i, el := range arr.Elements {
		if id, ok := el.(*jsast.Ident); ok && slices.Contains(remove, id.Name) {
			removed[i] = true
		} else {
			kept++
			lastKept = i
		}
	}

	if kept == 0 {
		return 0, nil
	}

	for i, r := range removed {
		if !r {
			continue
		}

		if i < lastKept {
			// the element and the comma following it
			comma := commaIn(src, end(i), pos(i+1), false)
			if comma < 0 {
				cuts = append(cuts, cut{pos(i), end(i)})

				continue
			}

			after := comma + 1
			for after < pos(i+1) && isSpace(src[after]) {
				after++
			}

			if blank(src[end(i):comma]) {
				cuts = append(cuts, cut{pos(i), after})
			} else {
				cuts = append(cuts, cut{pos(i), end(i)}, cut{comma, after})
			}

			continue
		}

		// the comma before the element
		comma := commaIn(src, end(i-1), pos(i), true)
		if comma < 0 {
			cuts = append(cuts, cut{pos(i), end(i)})

			continue
		}

		if blank(src[comma+1 : pos(i)]) {
			cuts = append(cuts, cut{comma, end(i)})

			continue
		}

		before := pos(i)
		for before > comma+1 && isSpace(src[before-1]) {
			before--
		}

		cuts = append(cuts, cut{comma, comma + 1}, cut{before, end(i)})
	}

	return kept, cuts
}

// commaIn returns the offset of the first (or last) comma in src[from:to],
// skipping comments, or -1.
func commaIn(src string, from, to int, last bool) int {
	found := -1

	for i := from; i < to; {
		rest := src[i:to]

		switch {
		case strings.HasPrefix(rest, "/*"):
			n := strings.Index(rest[2:], "*/")
			if n < 0 {
				return found
			}
			i += n + 4

		case strings.HasPrefix(rest, "//"):
			n := strings.IndexByte(rest, '\n')
			if n < 0 {
				return found
			}
			i += n + 1

		case rest[0] == ',':
			if !last {
				return i
			}
			found = i
			i++

		default:
			i++
		}
	}

	return found
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func blank(s string) bool {
	return strings.TrimLeft(s, " \t\r\n") == ""
}
