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

package analyzer

import (
	"log/slog"
	"regexp"
	"slices"

	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/run"
)

// Option configures specific behavior of a [New] vuesanitizer analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRules is an [Option] to enable exactly the given rules.
func WithRules(rules ...config.Rule) Option { return rulesOption{rules: slices.Clone(rules)} }

type rulesOption struct{ rules []config.Rule }

func (o rulesOption) apply(r *run.Options) {
	r.Rules = config.Rules{}
	for _, rule := range o.rules {
		r.Rules.Enable(rule.Flag())
	}
}

func (o rulesOption) LogAttr() slog.Attr {
	names := make([]string, 0, len(o.rules))
	for _, rule := range o.rules {
		names = append(names, rule.String())
	}

	return slog.Any("rules", names)
}

// WithRule is an [Option] to configure whether a single rule is enabled.
func WithRule(rule config.Rule, enabled bool) Option {
	return ruleOption{rule: rule, enabled: enabled}
}

type ruleOption struct {
	rule    config.Rule
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.rule.Flag(), o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.rule.String(), o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fixes", o.fixes)
}

// WithComplexity is an [Option] to configure the highest condition weight that is not reported.
func WithComplexity(complexity int) Option { return complexityOption{complexity: complexity} }

type complexityOption struct{ complexity int }

func (o complexityOption) apply(r *run.Options) {
	r.Thresholds.Complexity = o.complexity
}

func (o complexityOption) LogAttr() slog.Attr {
	return slog.Int("complexity", o.complexity)
}

// WithLargeStore is an [Option] to configure the state size above which a store should use modules.
func WithLargeStore(largeStore int) Option { return largeStoreOption{largeStore: largeStore} }

type largeStoreOption struct{ largeStore int }

func (o largeStoreOption) apply(r *run.Options) {
	r.Thresholds.LargeStore = o.largeStore
}

func (o largeStoreOption) LogAttr() slog.Attr {
	return slog.Int("large-store", o.largeStore)
}

// WithMapperProximity is an [Option] to configure the line distance of mergeable mapping helpers.
func WithMapperProximity(lines int) Option { return proximityOption{lines: lines} }

type proximityOption struct{ lines int }

func (o proximityOption) apply(r *run.Options) {
	r.Thresholds.MapperProximity = o.lines
}

func (o proximityOption) LogAttr() slog.Attr {
	return slog.Int("mapper-proximity", o.lines)
}

// WithMutationNamePattern is an [Option] to configure which mutation names
// should be type constants. A nil pattern disables the check.
func WithMutationNamePattern(pattern *regexp.Regexp) Option {
	return mutationNameOption{pattern: pattern}
}

type mutationNameOption struct{ pattern *regexp.Regexp }

func (o mutationNameOption) apply(r *run.Options) {
	r.Thresholds.MutationName = o.pattern
}

func (o mutationNameOption) LogAttr() slog.Attr {
	if o.pattern == nil {
		return slog.String("mutation-name", "")
	}

	return slog.String("mutation-name", o.pattern.String())
}

// WithGlobals is an [Option] to add host-global names that are never reported as dependencies.
func WithGlobals(globals ...string) Option { return globalsOption{globals: slices.Clone(globals)} }

type globalsOption struct{ globals []string }

func (o globalsOption) apply(r *run.Options) {
	r.Globals = append(slices.Clip(r.Globals), o.globals...)
}

func (o globalsOption) LogAttr() slog.Attr {
	return slog.Any("globals", o.globals)
}

// WithEffectHooks is an [Option] to replace the lifecycle hooks checked like watchEffect.
func WithEffectHooks(hooks ...string) Option { return hooksOption{hooks: slices.Clone(hooks)} }

type hooksOption struct{ hooks []string }

func (o hooksOption) apply(r *run.Options) {
	r.EffectHooks = slices.Clone(o.hooks)
}

func (o hooksOption) LogAttr() slog.Attr {
	return slog.Any("effect-hooks", o.hooks)
}
