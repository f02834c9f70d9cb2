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
	"flag"

	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/run"
)

// RegisterFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for r := range config.AllRules() {
		flags.Var(ruleValue(&o.Rules, r), r.String(), "enable the "+r.String()+" rule")
	}

	flags.Var(behaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(behaviorValue(&o.Behavior, config.SuggestFixes), "suggest-fixes", "attach suggested fixes to diagnostics")

	flags.IntVar(&o.Thresholds.Complexity, "complexity", o.Thresholds.Complexity, "highest condition weight not reported")
	flags.IntVar(&o.Thresholds.LargeStore, "large-store", o.Thresholds.LargeStore, "highest state property count of a store without modules")
	flags.IntVar(&o.Thresholds.MapperProximity, "mapper-proximity", o.Thresholds.MapperProximity, "maximum line distance of mergeable mapping helpers")
	flags.Var(patternValue{&o.Thresholds.MutationName}, "mutation-name", "pattern of mutation names that should be type constants")
	flags.Var(listValue{&o.Globals}, "globals", "comma separated additional global names")
	flags.Var(listValue{&o.EffectHooks}, "effect-hooks", "comma separated lifecycle hooks checked like watchEffect")
}

func ruleValue(rules *config.Rules, r config.Rule) boolValue[config.RuleFlags, *config.Rules] {
	return boolValue[config.RuleFlags, *config.Rules]{flags: rules, value: r.Flag()}
}

func behaviorValue(b *config.Behavior, f config.BehaviorFlags) boolValue[config.BehaviorFlags, *config.Behavior] {
	return boolValue[config.BehaviorFlags, *config.Behavior]{flags: b, value: f}
}
