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

// piniaHelpers are the mapping helpers producing store-backed bindings.
var piniaHelpers = []string{"mapState", "mapGetters", "mapActions"}

func (w *walker) piniaCall(call *jsast.CallExpr) {
	if !w.enabled(config.PiniaStoreUsage) {
		return
	}

	if classify.StoreAccessor(jsast.CalleeName(call)) {
		w.piniaStyles.Observe(aggregate.Composition)
	}

	options, ok := classify.PiniaStore(call)
	if !ok {
		return
	}

	if !w.storeSetup(call) {
		w.report(finding.At(config.PiniaStoreUsage, finding.MissingStoreSetup, call))
	}

	if options == nil {
		return
	}

	if state := classify.UntypedState(options); state != nil {
		w.report(finding.At(config.PiniaStoreUsage, finding.MissingTypeDefinition, state))
	}

	for _, getter := range classify.PassThroughGetters(options) {
		w.report(finding.At(config.PiniaStoreUsage, finding.UnnecessaryGetters, getter).
			With("getter", jsast.KeyName(getter)))
	}
}

// storeSetup reports whether a defineStore call initializes a variable or
// is part of the default export.
func (w *walker) storeSetup(call *jsast.CallExpr) bool {
	if w.inside(exportDefault) {
		return true
	}

	d, ok := w.parent().(*jsast.VarDeclarator)

	return ok && d.Init == call
}

// piniaStateChange reports state assignments outside of actions.
func (w *walker) piniaStateChange(a *jsast.AssignExpr) {
	if !w.enabled(config.PiniaStoreUsage) || w.inside(actionsContainer) || !classify.PiniaStateWrite(a.Left) {
		return
	}

	w.report(finding.At(config.PiniaStoreUsage, finding.DirectStateChange, a).With("container", "actions"))
}

func (w *walker) piniaAccess(m *jsast.MemberExpr) {
	if !w.enabled(config.PiniaStoreUsage) {
		return
	}

	if classify.InstanceStore(m) {
		w.piniaStyles.Observe(aggregate.Instance)

		return
	}

	if id, ok := m.Object.(*jsast.Ident); ok && w.index.InitializedBy(id.Name, piniaHelpers...) {
		w.piniaStyles.Observe(aggregate.Helpers)
	}
}

func (w *walker) piniaFinish() {
	if !w.enabled(config.PiniaStoreUsage) {
		return
	}

	if w.piniaStyles.Mixed() {
		w.report(finding.At(config.PiniaStoreUsage, finding.InconsistentStoreUsage, w.fileStart()))
	}
}
