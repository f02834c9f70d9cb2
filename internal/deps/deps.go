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

// Package deps compares the free variables of a callback against its
// declared dependency list.
package deps

import "slices"

// Kind classifies the dependency argument of an effect call.
type Kind uint8

const (
	// Absent means no dependency list was given; every free variable is untracked.
	Absent Kind = iota

	// Explicit means an array of dependencies was given.
	Explicit

	// Suppressed means an options object replaced the list, opting out of inference.
	Suppressed
)

// Descriptor is the declared dependency intent of a callback.
type Descriptor struct {
	Kind  Kind
	Names []string // Explicit only, in declaration order
}

// Result holds the dependency differences. Both lists are empty when nothing is to be reported.
type Result struct {
	Missing     []string // first-seen order of the callback body
	Unnecessary []string // declaration order
}

// Compare computes the missing and unnecessary dependencies of a callback
// that references used, in first-seen order, against declared.
func Compare(used []string, declared Descriptor) Result {
	switch declared.Kind {
	case Suppressed:
		return Result{}

	case Absent:
		return Result{Missing: slices.Clone(used)}

	default:
		var r Result

		for _, name := range used {
			if !slices.Contains(declared.Names, name) {
				r.Missing = append(r.Missing, name)
			}
		}

		for _, name := range declared.Names {
			if !slices.Contains(used, name) && !slices.Contains(r.Unnecessary, name) {
				r.Unnecessary = append(r.Unnecessary, name)
			}
		}

		return r
	}
}
