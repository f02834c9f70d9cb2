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

package config

import (
	"iter"
	"strings"
)

// Rule identifies a lint rule.
type Rule uint8

//go:generate go tool stringer -type Rule -linecomment
const (
	// EffectDeps checks the dependencies of effect and watch callbacks.
	EffectDeps Rule = iota // effect-deps

	// ReactiveRefs checks ref and reactive wrappers.
	ReactiveRefs // reactive-refs

	// ConditionalRendering checks conditional expressions and list rendering.
	ConditionalRendering // conditional-rendering

	// PropValidation checks component prop declarations.
	PropValidation // prop-validation

	// VuexStoreStructure checks Vuex store definitions.
	VuexStoreStructure // vuex-store-structure

	// VuexHelpersUsage checks Vuex mapping helpers.
	VuexHelpersUsage // vuex-helpers-usage

	// PiniaStoreUsage checks Pinia store definitions and access.
	PiniaStoreUsage // pinia-store-usage

	// NumRules is the number of rules.
	NumRules = iota
)

// RuleFlags is a set of [Rule] values.
type RuleFlags uint8

// Flag returns the [RuleFlags] bit of r.
func (r Rule) Flag() RuleFlags { return 1 << r }

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// AllRules returns all rules in declaration order.
func AllRules() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for r := range Rule(NumRules) {
			if !yield(r) {
				return
			}
		}
	}
}

// DefaultRules enables every rule.
func DefaultRules() Rules {
	var rules Rules
	for r := range AllRules() {
		rules.Enable(r.Flag())
	}

	return rules
}

// ParseRule looks up a rule by its identifier, ignoring case.
func ParseRule(name string) (Rule, bool) {
	for r := range AllRules() {
		if strings.EqualFold(r.String(), name) {
			return r, true
		}
	}

	return 0, false
}

// BehaviorFlags represents optional behavior of the rules.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// SuggestFixes attaches rewrites to findings.
	SuggestFixes
)

// Behavior holds the enabled behavior flags.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavior.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes)
}
