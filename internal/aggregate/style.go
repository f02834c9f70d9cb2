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

// Package aggregate collects per-file observations that are only reported
// after a whole file has been traversed.
package aggregate

import "fillmore-labs.com/vuesanitizer/internal/config"

//go:generate go tool stringer -type Style -linecomment

// Style is a way of accessing a store.
type Style uint8

const (
	// Composition is a store accessor call such as useStore().
	Composition Style = iota // composition
	// Instance is an access through this.$store.
	Instance // instance
	// Helpers is a binding produced by mapping helpers.
	Helpers // helpers
)

// StyleFlags is the bit set representation of [Style].
type StyleFlags uint8

// Flag returns the bit of s.
func (s Style) Flag() StyleFlags { return 1 << s }

// Styles records the store access styles of a file and reports a mix once.
//
// The zero value is ready to use.
type Styles struct {
	seen     config.BitMask[StyleFlags]
	reported bool
}

// Observe records a use of style.
func (s *Styles) Observe(style Style) {
	s.seen.Enable(style.Flag())
}

// Observed reports whether style has been recorded.
func (s *Styles) Observed(style Style) bool {
	return s.seen.Enabled(style.Flag())
}

// Mixed returns true the first time it is called after at least two
// distinct styles have been observed, and false otherwise.
func (s *Styles) Mixed() bool {
	if s.reported {
		return false
	}

	if s.seen.Count() < 2 {
		return false
	}

	s.reported = true

	return true
}
