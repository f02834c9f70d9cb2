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

package classify

import (
	"strings"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// PiniaStore reports whether call is defineStore and returns its options
// object, which is nil for setup stores.
func PiniaStore(call *jsast.CallExpr) (*jsast.ObjectExpr, bool) {
	if jsast.CalleeName(call) != "defineStore" {
		return nil, false
	}

	for _, arg := range call.Args {
		if obj, ok := arg.(*jsast.ObjectExpr); ok {
			return obj, true
		}
	}

	return nil, true
}

// UntypedState returns the state property of store options when it is a
// function without return type annotation.
func UntypedState(options *jsast.ObjectExpr) *jsast.Property {
	p := jsast.FindProperty(options, "state")
	if p == nil {
		return nil
	}

	if fn, ok := p.Value.(*jsast.FuncLit); ok && fn.ReturnType == nil {
		return p
	}

	return nil
}

// PassThroughGetters returns the getters that only return `this.x` or `state.x`.
func PassThroughGetters(options *jsast.ObjectExpr) []*jsast.Property {
	getters, ok := PropertyValue(options, "getters").(*jsast.ObjectExpr)
	if !ok {
		return nil
	}

	var result []*jsast.Property
	for _, p := range Properties(getters) {
		fn, ok := p.Value.(*jsast.FuncLit)
		if !ok {
			continue
		}

		if m, ok := Returned(fn).(*jsast.MemberExpr); ok && stateAccess(m) {
			result = append(result, p)
		}
	}

	return result
}

func stateAccess(m *jsast.MemberExpr) bool {
	if m.Computed {
		return false
	}

	switch o := m.Object.(type) {
	case *jsast.ThisExpr:
		return true

	case *jsast.Ident:
		return o.Name == "state"

	default:
		return false
	}
}

// StoreAccessor reports whether name follows the `use…Store` convention of store accessors.
func StoreAccessor(name string) bool {
	return len(name) >= len("useStore") && strings.HasPrefix(name, "use") && strings.HasSuffix(name, "Store")
}

// InstanceStore reports whether m is `this.$store`.
func InstanceStore(m *jsast.MemberExpr) bool {
	_, ok := m.Object.(*jsast.ThisExpr)

	return ok && jsast.PropertyName(m) == "$store"
}
