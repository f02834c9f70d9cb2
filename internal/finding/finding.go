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

// Package finding defines the results of the rules.
package finding

import (
	"go/token"

	"fillmore-labs.com/vuesanitizer/internal/config"
)

// Finding is one reported issue.
type Finding struct {
	Rule    config.Rule
	Message MessageKind
	Pos     token.Pos // anchor start
	End     token.Pos // anchor end, may equal Pos
	Data    map[string]string
	Edit    *Edit // nil when no safe rewrite exists
}

// Edit replaces the source text between Pos and End with NewText.
type Edit struct {
	Pos, End token.Pos
	NewText  string
}

// Range is a source range, satisfied by all syntax nodes.
type Range interface {
	Pos() token.Pos
	End() token.Pos
}

// At creates a [Finding] anchored at rng.
func At(rule config.Rule, msg MessageKind, rng Range) Finding {
	return Finding{Rule: rule, Message: msg, Pos: rng.Pos(), End: rng.End()}
}

// With returns f with a placeholder value added.
func (f Finding) With(key, value string) Finding {
	data := make(map[string]string, len(f.Data)+1)
	for k, v := range f.Data {
		data[k] = v
	}

	data[key] = value
	f.Data = data

	return f
}

// WithEdit returns f with edit attached.
func (f Finding) WithEdit(edit *Edit) Finding {
	f.Edit = edit

	return f
}
