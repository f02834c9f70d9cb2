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

package batch

import (
	"cmp"
	"os"
	"slices"

	"fillmore-labs.com/vuesanitizer/internal/finding"
)

// Fixed returns the source of r with the non-overlapping edits of its
// findings applied, and the number of edits applied. Of two overlapping
// edits the one starting first wins.
func (r Result) Fixed() ([]byte, int) {
	if r.File == nil {
		return nil, 0
	}

	var edits []*finding.Edit
	for _, f := range r.Findings {
		if f.Edit != nil {
			edits = append(edits, f.Edit)
		}
	}

	if len(edits) == 0 {
		return r.File.Src, 0
	}

	slices.SortStableFunc(edits, func(a, b *finding.Edit) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End))
	})

	src := r.File.Src
	out := make([]byte, 0, len(src))

	applied, last := 0, 0
	for _, e := range edits {
		from, to, ok := r.File.Offsets(e.Pos, e.End)
		if !ok || from < last {
			continue
		}

		out = append(out, src[last:from]...)
		out = append(out, e.NewText...)
		last = to
		applied++
	}

	out = append(out, src[last:]...)

	return out, applied
}

// WriteFixes writes the fixed source of r back to its file when any edit
// applies, returning the number of edits applied.
func (r Result) WriteFixes() (int, error) {
	fixed, n := r.Fixed()
	if n == 0 {
		return 0, nil
	}

	info, err := os.Stat(r.Path)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(r.Path, fixed, info.Mode().Perm()); err != nil {
		return 0, err
	}

	return n, nil
}
