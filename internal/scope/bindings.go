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

// Package scope models the names bound at a point of a syntax tree walk.
package scope

// DefaultGlobals are the host and language names treated as always bound.
var DefaultGlobals = []string{
	"console", "setTimeout", "clearTimeout", "setInterval", "clearInterval",
	"document", "window", "this", "undefined", "null", "true", "false",
}

// Bindings is an immutable set of bound names.
//
// [Bindings.With] layers new names on top of an existing set without
// modifying it, so sibling subtrees never see each other's bindings.
// A nil *Bindings is the empty set.
type Bindings struct {
	parent *Bindings
	names  map[string]struct{}
}

// NewBindings creates a set containing names.
func NewBindings(names ...string) *Bindings {
	var b *Bindings

	return b.With(names...)
}

// Globals returns the [DefaultGlobals] extended by extra.
func Globals(extra ...string) *Bindings {
	return NewBindings(DefaultGlobals...).With(extra...)
}

// With returns a set containing the names of b and names.
func (b *Bindings) With(names ...string) *Bindings {
	var layer map[string]struct{}

	for _, name := range names {
		if name == "" || b.Contains(name) {
			continue
		}

		if layer == nil {
			layer = make(map[string]struct{}, len(names))
		}

		layer[name] = struct{}{}
	}

	if layer == nil {
		return b
	}

	return &Bindings{parent: b, names: layer}
}

// Contains reports whether name is bound.
func (b *Bindings) Contains(name string) bool {
	for ; b != nil; b = b.parent {
		if _, ok := b.names[name]; ok {
			return true
		}
	}

	return false
}
