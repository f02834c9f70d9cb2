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

import "fillmore-labs.com/vuesanitizer/jsast"

// MissingInitialValue reports whether call is ref() or reactive() without argument.
func MissingInitialValue(call *jsast.CallExpr) bool {
	switch jsast.CalleeName(call) {
	case "ref", "reactive":
		return len(call.Args) == 0

	default:
		return false
	}
}

// UnnecessaryRef reports whether call wraps a non-empty object literal in ref.
func UnnecessaryRef(call *jsast.CallExpr) bool {
	if jsast.CalleeName(call) != "ref" || len(call.Args) == 0 {
		return false
	}

	obj, ok := call.Args[0].(*jsast.ObjectExpr)

	return ok && len(obj.Properties) > 0
}

// PrimitiveInReactive reports whether call passes a literal or a primitive
// constructor to reactive.
func PrimitiveInReactive(call *jsast.CallExpr) bool {
	if jsast.CalleeName(call) != "reactive" || len(call.Args) == 0 {
		return false
	}

	switch arg := call.Args[0].(type) {
	case *jsast.Literal:
		return true

	case *jsast.Ident:
		switch arg.Name {
		case "String", "Number", "Boolean":
			return true
		}
	}

	return false
}

// NestedRefs returns the ref calls used as property values of the object
// literal passed to reactive.
func NestedRefs(call *jsast.CallExpr) []*jsast.CallExpr {
	if jsast.CalleeName(call) != "reactive" || len(call.Args) == 0 {
		return nil
	}

	obj, ok := call.Args[0].(*jsast.ObjectExpr)
	if !ok {
		return nil
	}

	var refs []*jsast.CallExpr
	for _, n := range obj.Properties {
		p, ok := n.(*jsast.Property)
		if !ok || p.Method {
			continue
		}

		if inner, ok := p.Value.(*jsast.CallExpr); ok && jsast.CalleeName(inner) == "ref" {
			refs = append(refs, inner)
		}
	}

	return refs
}

// Unwrappable reports whether the single argument of a nested ref can
// replace the call without changing what the property holds.
func Unwrappable(ref *jsast.CallExpr) bool {
	if len(ref.Args) != 1 {
		return false
	}

	switch ref.Args[0].(type) {
	case *jsast.Literal, *jsast.ObjectExpr, *jsast.ArrayExpr:
		return true

	default:
		return false
	}
}
