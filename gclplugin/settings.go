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

package gclplugin

import (
	"fmt"
	"regexp"

	vuesanitizer "fillmore-labs.com/vuesanitizer/analyzer"
	"fillmore-labs.com/vuesanitizer/internal/config"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// EffectDeps enables the effect-deps rule.
	EffectDeps *bool `json:"effect-deps,omitzero"`
	// ReactiveRefs enables the reactive-refs rule.
	ReactiveRefs *bool `json:"reactive-refs,omitzero"`
	// ConditionalRendering enables the conditional-rendering rule.
	ConditionalRendering *bool `json:"conditional-rendering,omitzero"`
	// PropValidation enables the prop-validation rule.
	PropValidation *bool `json:"prop-validation,omitzero"`
	// VuexStoreStructure enables the vuex-store-structure rule.
	VuexStoreStructure *bool `json:"vuex-store-structure,omitzero"`
	// VuexHelpersUsage enables the vuex-helpers-usage rule.
	VuexHelpersUsage *bool `json:"vuex-helpers-usage,omitzero"`
	// PiniaStoreUsage enables the pinia-store-usage rule.
	PiniaStoreUsage *bool `json:"pinia-store-usage,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// SuggestFixes attaches suggested fixes to diagnostics.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
	// Complexity is the highest condition weight not reported.
	Complexity *int `json:"complexity,omitzero"`
	// LargeStore is the highest state property count of a store without modules.
	LargeStore *int `json:"large-store,omitzero"`
	// MapperProximity is the maximum line distance of mergeable mapping helpers.
	MapperProximity *int `json:"mapper-proximity,omitzero"`
	// MutationName matches mutation names that should be type constants.
	MutationName *string `json:"mutation-name,omitzero"`
	// Globals are additional global names.
	Globals []string `json:"globals,omitzero"`
	// EffectHooks are the lifecycle hooks checked like watchEffect.
	EffectHooks []string `json:"effect-hooks,omitzero"`
}

// Options converts [Settings] into a list of [vuesanitizer.Option] for the vuesanitizer analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]vuesanitizer.Option, error) {
	var opts []vuesanitizer.Option

	rules := [...]struct {
		rule    config.Rule
		enabled *bool
	}{
		{config.EffectDeps, s.EffectDeps},
		{config.ReactiveRefs, s.ReactiveRefs},
		{config.ConditionalRendering, s.ConditionalRendering},
		{config.PropValidation, s.PropValidation},
		{config.VuexStoreStructure, s.VuexStoreStructure},
		{config.VuexHelpersUsage, s.VuexHelpersUsage},
		{config.PiniaStoreUsage, s.PiniaStoreUsage},
	}

	for _, r := range rules {
		if r.enabled != nil {
			opts = append(opts, vuesanitizer.WithRule(r.rule, *r.enabled))
		}
	}

	opts = appendOption(opts, s.Generated, vuesanitizer.WithGenerated)
	opts = appendOption(opts, s.SuggestFixes, vuesanitizer.WithSuggestFixes)
	opts = appendOption(opts, s.Complexity, vuesanitizer.WithComplexity)
	opts = appendOption(opts, s.LargeStore, vuesanitizer.WithLargeStore)
	opts = appendOption(opts, s.MapperProximity, vuesanitizer.WithMapperProximity)

	if s.MutationName != nil {
		var pattern *regexp.Regexp
		if *s.MutationName != "" {
			var err error
			if pattern, err = regexp.Compile(*s.MutationName); err != nil {
				return nil, fmt.Errorf("invalid mutation-name setting: %w", err)
			}
		}

		opts = append(opts, vuesanitizer.WithMutationNamePattern(pattern))
	}

	if s.Globals != nil {
		opts = append(opts, vuesanitizer.WithGlobals(s.Globals...))
	}

	if s.EffectHooks != nil {
		opts = append(opts, vuesanitizer.WithEffectHooks(s.EffectHooks...))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [vuesanitizer.Option] list.
func appendOption[T any](opts []vuesanitizer.Option, value *T, constructor func(T) vuesanitizer.Option) []vuesanitizer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
