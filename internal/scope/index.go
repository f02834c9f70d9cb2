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

package scope

import (
	"slices"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// Index is a per-file reference index.
type Index struct {
	initializers map[string][]string // variable name → callee names of initializer calls
	unresolved   []string
}

// NewIndex records variable initializer calls of f. Unresolved are the
// names referenced but never bound in the file.
func NewIndex(f *jsast.File, unresolved []string) *Index {
	x := &Index{
		initializers: make(map[string][]string),
		unresolved:   unresolved,
	}

	for _, prog := range f.Programs {
		jsast.Inspect(prog, func(n jsast.Node) bool {
			d, ok := n.(*jsast.VarDeclarator)
			if !ok {
				return true
			}

			call, ok := d.Init.(*jsast.CallExpr)
			if !ok {
				return true
			}

			if callee := jsast.CalleeName(call); callee != "" {
				for _, name := range PatternNames(d.ID) {
					x.initializers[name] = append(x.initializers[name], callee)
				}
			}

			return true
		})
	}

	return x
}

// InitializedBy reports whether a variable named name is initialized by a
// call to one of callees.
func (x *Index) InitializedBy(name string, callees ...string) bool {
	for _, callee := range x.initializers[name] {
		if slices.Contains(callees, callee) {
			return true
		}
	}

	return false
}

// Unresolved reports whether any name referenced without binding satisfies f.
func (x *Index) Unresolved(f func(name string) bool) bool {
	return slices.ContainsFunc(x.unresolved, f)
}
