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
	"log/slog"

	"fillmore-labs.com/vuesanitizer/internal/classify"
	"fillmore-labs.com/vuesanitizer/internal/config"
)

// Options represent configuration options for the vuesanitizer rules.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.Rules

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Thresholds holds the heuristic cutoffs of the rules.
	Thresholds config.Thresholds

	// Globals are additional host-global names never reported as dependencies.
	Globals []string

	// EffectHooks are the lifecycle hooks checked like watchEffect.
	EffectHooks []string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:       config.DefaultRules(),
		Behavior:    config.DefaultBehavior(),
		Thresholds:  config.DefaultThresholds(),
		EffectHooks: classify.DefaultEffectHooks,
	}
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	var rules []string
	for r := range config.AllRules() {
		if o.Rules.Enabled(r.Flag()) {
			rules = append(rules, r.String())
		}
	}

	as := []slog.Attr{
		slog.Any("rules", rules),
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("fixes", o.Behavior.Enabled(config.SuggestFixes)),
		slog.Int("complexity", o.Thresholds.Complexity),
		slog.Int("largeStore", o.Thresholds.LargeStore),
		slog.Int("mapperProximity", o.Thresholds.MapperProximity),
	}

	if o.Thresholds.MutationName != nil {
		as = append(as, slog.String("mutationName", o.Thresholds.MutationName.String()))
	}

	return slog.GroupValue(as...)
}
