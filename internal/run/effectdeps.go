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

package run

import (
	"strings"

	"fillmore-labs.com/vuesanitizer/internal/classify"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/deps"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/internal/freevars"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// effectDeps compares the free variables of effect and watch callbacks
// with their declared dependencies.
func (w *walker) effectDeps(call *jsast.CallExpr) {
	if !w.enabled(config.EffectDeps) {
		return
	}

	effect, ok := classify.EffectCall(call, w.EffectHooks)
	if !ok {
		return
	}

	used := freevars.Extract(effect.Callback, w.globals)
	result := deps.Compare(used, effect.Deps)

	// one edit updates the array for both findings
	var edit *finding.Edit
	if effect.Array != nil {
		edit = w.rewrite.UpdateDependencies(effect.Array, result.Missing, result.Unnecessary)
	}

	if len(result.Missing) > 0 {
		w.report(finding.At(config.EffectDeps, finding.MissingDeps, call).
			With("deps", strings.Join(result.Missing, ", ")).
			WithEdit(edit))

		edit = nil
	}

	if len(result.Unnecessary) > 0 {
		w.report(finding.At(config.EffectDeps, finding.UnnecessaryDeps, call).
			With("deps", strings.Join(result.Unnecessary, ", ")).
			WithEdit(edit))
	}
}
