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

func (w *walker) vuexStore(n jsast.Node) {
	if !w.enabled(config.VuexStoreStructure) {
		return
	}

	store := classify.StoreDefinition(n)
	if store == nil {
		return
	}

	if state := classify.LargeState(store, w.Thresholds.LargeStore); state != nil {
		w.report(finding.At(config.VuexStoreStructure, finding.StoreMissingModules, state).
			With("limit", strconv.Itoa(w.Thresholds.LargeStore)))
	}

	for _, key := range classify.RawMutationNames(store, w.Thresholds.MutationName) {
		w.report(finding.At(config.VuexStoreStructure, finding.MissingTypes, key).With("mutation", key.Name))
	}

	for _, action := range classify.CommitOnlyActions(store) {
		w.report(finding.At(config.VuexStoreStructure, finding.UnnecessaryActions, action).
			With("action", jsast.KeyName(action)))
	}
}

// vuexStateChange reports state assignments outside of mutations.
func (w *walker) vuexStateChange(a *jsast.AssignExpr) {
	if !w.enabled(config.VuexStoreStructure) || w.inside(mutationsContainer) || !classify.VuexStateWrite(a.Left) {
		return
	}

	w.report(finding.At(config.VuexStoreStructure, finding.DirectStateChange, a).With("container", "mutations"))
}
