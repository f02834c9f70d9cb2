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
	"fillmore-labs.com/vuesanitizer/internal/aggregate"
	"fillmore-labs.com/vuesanitizer/internal/classify"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/jsast"
)

func (w *walker) vuexHelpers(call *jsast.CallExpr) {
	if !w.enabled(config.VuexHelpersUsage) {
		return
	}

	if jsast.CalleeName(call) == "useStore" {
		w.vuexStyles.Observe(aggregate.Composition)

		return
	}

	kind := classify.MapperOf(call)
	if kind == classify.NoMapper {
		return
	}

	w.vuexStyles.Observe(aggregate.Helpers)
	w.mappers.Observe(kind, call.Pos(), w.file.Line(call.Pos()))

	if classify.ObjectForm(call) && w.index.Unresolved(classify.NamespaceHint) {
		w.report(finding.At(config.VuexHelpersUsage, finding.MapperMissingNamespace, call).
			With("helper", jsast.CalleeName(call)))
	}

	if arr := classify.SingleElementArray(call); arr != nil {
		w.report(finding.At(config.VuexHelpersUsage, finding.UnnecessaryArray, arr).
			With("helper", jsast.CalleeName(call)).
			WithEdit(w.rewrite.CollapseArray(arr)))
	}
}

func (w *walker) vuexHelpersFinish() {
	if !w.enabled(config.VuexHelpersUsage) {
		return
	}

	if w.vuexStyles.Mixed() {
		w.report(finding.At(config.VuexHelpersUsage, finding.InconsistentMappers, w.fileStart()))
	}

	for _, pos := range w.mappers.Redundant(w.Thresholds.MapperProximity) {
		w.report(finding.At(config.VuexHelpersUsage, finding.RedundantMappers, jsast.Span{From: pos, To: pos}))
	}
}
