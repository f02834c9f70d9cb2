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

package report

import (
	"regexp"
	"strings"

	"fillmore-labs.com/vuesanitizer/internal/finding"
)

var messages = [...]string{
	finding.MissingDeps:     "Callback uses {{deps}} without declaring them as dependencies",
	finding.UnnecessaryDeps: "Dependencies {{deps}} are not used by the callback",

	finding.MissingValue:        "Call of {{callee}} should pass an initial value",
	finding.UnnecessaryRef:      "Object literal wrapped in ref, use reactive instead",
	finding.PrimitiveInReactive: "Primitive value passed to reactive, use ref instead",
	finding.RefInReactive:       "ref inside reactive is unwrapped automatically",

	finding.UnsafeConditional: "Condition accesses {{access}} without optional chaining",
	finding.ComplexCondition:  "Condition is too complex (weight {{complexity}})",
	finding.MissingKey:        "List rendering of element {{element}} without key",

	finding.MissingType:      "Prop {{prop}} should declare its type in a descriptor object",
	finding.MissingRequired:  "Prop {{prop}} should be required or have a default value",
	finding.MissingValidator: "Prop {{prop}} of object or array type should have a validator",

	finding.DirectStateChange:   "State modified outside of {{container}}",
	finding.StoreMissingModules: "Store state has more than {{limit}} properties, split it into namespaced modules",
	finding.MissingTypes:        "Mutation {{mutation}} should be named by a type constant",
	finding.UnnecessaryActions:  "Action {{action}} only commits a mutation",

	finding.MapperMissingNamespace: "Mapping helper {{helper}} should be given the module namespace",
	finding.UnnecessaryArray:       "Single mapping passed to {{helper}} does not need array syntax",
	finding.InconsistentMappers:    "Mapping helpers and useStore are mixed in one file",
	finding.RedundantMappers:       "Adjacent mapping helper calls can be merged",

	finding.MissingTypeDefinition:  "Store state should declare its return type",
	finding.UnnecessaryGetters:     "Getter {{getter}} only returns a state property",
	finding.InconsistentStoreUsage: "Store is accessed in inconsistent styles",
	finding.MissingStoreSetup:      "defineStore result should be assigned to a variable or exported",
}

var fixes = map[finding.MessageKind]string{
	finding.MissingDeps:       "Update dependency array",
	finding.UnnecessaryDeps:   "Update dependency array",
	finding.MissingValue:      "Add initial value",
	finding.RefInReactive:     "Remove ref",
	finding.UnsafeConditional: "Use optional chaining",
	finding.MissingType:       "Wrap type in descriptor",
	finding.UnnecessaryArray:  "Remove array syntax",
}

// Placeholder values are quoted names, except for lists and plain values.
var (
	listValued = map[string]bool{"deps": true}
	plain      = map[string]bool{"complexity": true, "limit": true, "container": true}
)

var placeholder = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Message renders the user-facing message of a finding, with the message
// identifier as suffix.
func Message(f finding.Finding) string {
	var template string
	if int(f.Message) < len(messages) {
		template = messages[f.Message]
	}

	if template == "" {
		template = f.Message.String()
	}

	text := placeholder.ReplaceAllStringFunc(template, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]

		value, ok := f.Data[key]
		if !ok {
			return m
		}

		switch {
		case listValued[key]:
			return concatNames(strings.Split(value, ", "))

		case plain[key]:
			return value

		default:
			return "'" + value + "'"
		}
	})

	return text + " (vs:" + f.Message.String() + ")"
}

// FixMessage returns the title of the suggested fix of a finding.
func FixMessage(f finding.Finding) string {
	if msg, ok := fixes[f.Message]; ok {
		return msg
	}

	return "Apply suggested rewrite"
}

// concatNames formats a list of names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
