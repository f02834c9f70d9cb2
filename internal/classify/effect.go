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

// Package classify holds stateless predicates over single syntax nodes.
package classify

import (
	"slices"

	"fillmore-labs.com/vuesanitizer/internal/deps"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// DefaultEffectHooks are the lifecycle hooks whose callbacks are checked like watchEffect.
var DefaultEffectHooks = []string{"onMounted", "onUpdated", "onUnmounted"}

// Effect is an effect or watch call with an analyzable callback.
type Effect struct {
	Callback *jsast.FuncLit
	Deps     deps.Descriptor
	Array    *jsast.ArrayExpr // the dependency array of Explicit descriptors
}

// EffectCall classifies call. Calls with other callees, missing callbacks
// or non-array watch sources are not analyzable.
func EffectCall(call *jsast.CallExpr, hooks []string) (Effect, bool) {
	name := jsast.CalleeName(call)

	switch {
	case name == "watchEffect":
		cb, ok := callback(call.Args, 0)
		if !ok {
			return Effect{}, false
		}

		kind := deps.Absent
		if isObject(call.Args, 1) {
			kind = deps.Suppressed
		}

		return Effect{Callback: cb, Deps: deps.Descriptor{Kind: kind}}, true

	case name == "watch":
		cb, ok := callback(call.Args, 1)
		if !ok {
			return Effect{}, false
		}

		if isObject(call.Args, 2) {
			return Effect{Callback: cb, Deps: deps.Descriptor{Kind: deps.Suppressed}}, true
		}

		arr, ok := call.Args[0].(*jsast.ArrayExpr)
		if !ok {
			return Effect{}, false
		}

		return Effect{Callback: cb, Deps: deps.Descriptor{Kind: deps.Explicit, Names: IdentNames(arr)}, Array: arr}, true

	case name != "" && slices.Contains(hooks, name):
		cb, ok := callback(call.Args, 0)
		if !ok {
			return Effect{}, false
		}

		return Effect{Callback: cb, Deps: deps.Descriptor{Kind: deps.Absent}}, true

	default:
		return Effect{}, false
	}
}

// IdentNames returns the names of the identifier elements of arr.
func IdentNames(arr *jsast.ArrayExpr) []string {
	names := make([]string, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if id, ok := el.(*jsast.Ident); ok {
			names = append(names, id.Name)
		}
	}

	return names
}

func callback(args []jsast.Node, i int) (*jsast.FuncLit, bool) {
	if i >= len(args) {
		return nil, false
	}

	fn, ok := args[i].(*jsast.FuncLit)

	return fn, ok && fn.Body != nil
}

func isObject(args []jsast.Node, i int) bool {
	if i >= len(args) {
		return false
	}

	_, ok := args[i].(*jsast.ObjectExpr)

	return ok
}
