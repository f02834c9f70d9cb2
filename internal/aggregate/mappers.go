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

package aggregate

import (
	"go/token"

	"fillmore-labs.com/vuesanitizer/internal/classify"
)

// mapperPairs are the helper categories that can be merged when called close together.
var mapperPairs = [...][2]classify.Mapper{
	{classify.MapState, classify.MapGetters},
	{classify.MapMutations, classify.MapActions},
}

type mapperCall struct {
	pos  token.Pos
	line int
}

// MapperCalls records mapping helper calls of a file.
//
// The zero value is ready to use.
type MapperCalls struct {
	calls    [classify.MapActions + 1][]mapperCall
	reported bool
}

// Observe records a call of kind starting at pos on line.
func (m *MapperCalls) Observe(kind classify.Mapper, pos token.Pos, line int) {
	if kind == classify.NoMapper || int(kind) >= len(m.calls) {
		return
	}

	m.calls[kind] = append(m.calls[kind], mapperCall{pos: pos, line: line})
}

// Redundant returns, once per file, the anchors of helper pairs with any
// two calls at most proximity lines apart. The anchor of a pair is the
// first call of its first category.
func (m *MapperCalls) Redundant(proximity int) []token.Pos {
	if m.reported {
		return nil
	}

	m.reported = true

	var anchors []token.Pos
	for _, pair := range mapperPairs {
		first, second := m.calls[pair[0]], m.calls[pair[1]]
		if near(first, second, proximity) {
			anchors = append(anchors, first[0].pos)
		}
	}

	return anchors
}

func near(a, b []mapperCall, proximity int) bool {
	for _, x := range a {
		for _, y := range b {
			if d := x.line - y.line; d <= proximity && -d <= proximity {
				return true
			}
		}
	}

	return false
}
