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
	"fillmore-labs.com/vuesanitizer/internal/classify"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/jsast"
)

func (w *walker) reactiveRefs(call *jsast.CallExpr) {
	if !w.enabled(config.ReactiveRefs) {
		return
	}

	switch {
	case classify.MissingInitialValue(call):
		callee, initial := jsast.CalleeName(call), "undefined"
		if callee == "reactive" {
			initial = "{}"
		}

		w.report(finding.At(config.ReactiveRefs, finding.MissingValue, call).
			With("callee", callee).
			WithEdit(w.rewrite.InsertArgument(call, initial)))

	case classify.UnnecessaryRef(call):
		w.report(finding.At(config.ReactiveRefs, finding.UnnecessaryRef, call))

	case classify.PrimitiveInReactive(call):
		w.report(finding.At(config.ReactiveRefs, finding.PrimitiveInReactive, call))

	default:
		for _, ref := range classify.NestedRefs(call) {
			f := finding.At(config.ReactiveRefs, finding.RefInReactive, ref)
			if classify.Unwrappable(ref) {
				f = f.WithEdit(w.rewrite.Unwrap(ref))
			}

			w.report(f)
		}
	}
}
