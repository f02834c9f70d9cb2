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
	"strconv"

	"fillmore-labs.com/vuesanitizer/internal/classify"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/jsast"
)

func (w *walker) conditional(c *jsast.CondExpr) {
	if !w.enabled(config.ConditionalRendering) {
		return
	}

	w.unsafeAccess(c, c.Test)

	if score := classify.Complexity(c.Test); score > w.Thresholds.Complexity {
		w.report(finding.At(config.ConditionalRendering, finding.ComplexCondition, c).
			With("complexity", strconv.Itoa(score)))
	}
}

func (w *walker) logical(l *jsast.LogicalExpr) {
	if !w.enabled(config.ConditionalRendering) {
		return
	}

	w.unsafeAccess(l, l.Left)
}

// unsafeAccess reports a test operand accessing a property without null
// safety. The edit touches the operand only.
func (w *walker) unsafeAccess(anchor, operand jsast.Node) {
	m := classify.UnsafeAccess(operand)
	if m == nil {
		return
	}

	w.report(finding.At(config.ConditionalRendering, finding.UnsafeConditional, anchor).
		With("access", w.file.Text(m)).
		WithEdit(w.rewrite.NullSafe(m)))
}

func (w *walker) listKey(el *jsast.JSXElement) {
	if !w.enabled(config.ConditionalRendering) || !classify.MissingKey(el) {
		return
	}

	w.report(finding.At(config.ConditionalRendering, finding.MissingKey, el).With("element", el.Name))
}
