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

// UnsafeAccess returns n when it is a member access chain without any
// optional link.
func UnsafeAccess(n jsast.Node) *jsast.MemberExpr {
	m, ok := n.(*jsast.MemberExpr)
	if !ok {
		return nil
	}

	for cur := jsast.Node(m); ; {
		switch c := cur.(type) {
		case *jsast.MemberExpr:
			if c.Optional {
				return nil
			}

			cur = c.Object

		case *jsast.CallExpr:
			if c.Optional {
				return nil
			}

			cur = c.Callee

		default:
			return m
		}
	}
}

// Complexity scores a condition: one per logical or binary operator and
// two per nested ternary.
func Complexity(n jsast.Node) int {
	switch n := n.(type) {
	case *jsast.LogicalExpr:
		return 1 + Complexity(n.Left) + Complexity(n.Right)

	case *jsast.BinaryExpr:
		return 1 + Complexity(n.Left) + Complexity(n.Right)

	case *jsast.CondExpr:
		return 2 + Complexity(n.Test) + Complexity(n.Consequent) + Complexity(n.Alternate)

	default:
		return 0
	}
}

// MissingKey reports whether a list-rendering element lacks a key binding.
func MissingKey(el *jsast.JSXElement) bool {
	var list, key bool

	for _, a := range el.Attrs {
		switch a.Name {
		case "v-for":
			list = true

		case "key", ":key", "v-bind:key":
			key = true
		}
	}

	return list && !key
}
