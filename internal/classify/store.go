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
	"regexp"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// StoreDefinition returns the options object of a Vuex store definition:
// `createStore({…})`, `new Vuex.Store({…})` or `new Store({…})`.
func StoreDefinition(n jsast.Node) *jsast.ObjectExpr {
	var args []jsast.Node

	switch n := n.(type) {
	case *jsast.CallExpr:
		if jsast.CalleeName(n) != "createStore" {
			return nil
		}

		args = n.Args

	case *jsast.NewExpr:
		switch c := n.Callee.(type) {
		case *jsast.Ident:
			if c.Name != "Store" {
				return nil
			}

		case *jsast.MemberExpr:
			if jsast.PropertyName(c) != "Store" {
				return nil
			}

		default:
			return nil
		}

		args = n.Args

	default:
		return nil
	}

	if len(args) == 0 {
		return nil
	}

	obj, _ := args[0].(*jsast.ObjectExpr)

	return obj
}

// StoreState returns the state property of a store definition and its
// object literal, either given directly or returned from a function.
func StoreState(store *jsast.ObjectExpr) (*jsast.Property, *jsast.ObjectExpr) {
	p := jsast.FindProperty(store, "state")
	if p == nil {
		return nil, nil
	}

	switch v := p.Value.(type) {
	case *jsast.ObjectExpr:
		return p, v

	case *jsast.FuncLit:
		if obj, ok := Returned(v).(*jsast.ObjectExpr); ok {
			return p, obj
		}
	}

	return p, nil
}

// Returned returns the value a function returns when its body is a concise
// arrow expression or a single return statement, or nil.
func Returned(fn *jsast.FuncLit) jsast.Node {
	switch b := fn.Body.(type) {
	case *jsast.BlockStmt:
		if len(b.Body) != 1 {
			return nil
		}

		if ret, ok := b.Body[0].(*jsast.ReturnStmt); ok {
			return ret.Argument
		}

		return nil

	case nil:
		return nil

	default:
		return b
	}
}

// LargeState returns the state property when the store state has more than
// limit properties and the store is not split into modules.
func LargeState(store *jsast.ObjectExpr, limit int) *jsast.Property {
	if jsast.FindProperty(store, "modules") != nil {
		return nil
	}

	p, state := StoreState(store)
	if state == nil || len(state.Properties) <= limit {
		return nil
	}

	return p
}

// RawMutationNames returns the identifier keys of the store mutations that
// match pattern, marking mutations not named by type constants.
func RawMutationNames(store *jsast.ObjectExpr, pattern *regexp.Regexp) []*jsast.Ident {
	mutations, ok := PropertyValue(store, "mutations").(*jsast.ObjectExpr)
	if !ok || pattern == nil {
		return nil
	}

	var keys []*jsast.Ident
	for _, p := range Properties(mutations) {
		if p.Computed {
			continue
		}

		if id, ok := p.Key.(*jsast.Ident); ok && pattern.MatchString(id.Name) {
			keys = append(keys, id)
		}
	}

	return keys
}

// CommitOnlyActions returns the store actions whose whole body is a single commit call.
func CommitOnlyActions(store *jsast.ObjectExpr) []*jsast.Property {
	actions, ok := PropertyValue(store, "actions").(*jsast.ObjectExpr)
	if !ok {
		return nil
	}

	var result []*jsast.Property
	for _, p := range Properties(actions) {
		if fn, ok := p.Value.(*jsast.FuncLit); ok && commitOnly(fn) {
			result = append(result, p)
		}
	}

	return result
}

func commitOnly(fn *jsast.FuncLit) bool {
	var expr jsast.Node

	switch b := fn.Body.(type) {
	case *jsast.BlockStmt:
		if len(b.Body) != 1 {
			return false
		}

		stmt, ok := b.Body[0].(*jsast.ExprStmt)
		if !ok {
			return false
		}

		expr = stmt.X

	default:
		expr = b
	}

	call, ok := expr.(*jsast.CallExpr)
	if !ok {
		return false
	}

	switch c := call.Callee.(type) {
	case *jsast.MemberExpr:
		return jsast.PropertyName(c) == "commit"

	case *jsast.Ident:
		return c.Name == "commit"

	default:
		return false
	}
}

// VuexStateWrite reports whether an assignment target is a member of
// `state` or of `<expr>.state`.
func VuexStateWrite(left jsast.Node) bool {
	m, ok := left.(*jsast.MemberExpr)
	if !ok {
		return false
	}

	switch o := m.Object.(type) {
	case *jsast.Ident:
		return o.Name == "state"

	case *jsast.MemberExpr:
		return jsast.PropertyName(o) == "state"

	default:
		return false
	}
}

// PiniaStateWrite reports whether an assignment target is a member of `<expr>.state`.
func PiniaStateWrite(left jsast.Node) bool {
	m, ok := left.(*jsast.MemberExpr)
	if !ok {
		return false
	}

	o, ok := m.Object.(*jsast.MemberExpr)

	return ok && jsast.PropertyName(o) == "state"
}
