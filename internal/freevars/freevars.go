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

// Package freevars computes the free variables of a syntax subtree.
package freevars

import (
	"fillmore-labs.com/vuesanitizer/internal/scope"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// Extract returns the names referenced in root that are bound neither by
// outer nor by a binder inside root, in first-seen order without duplicates.
//
// Nested functions, blocks, catch clauses and loops layer their own bindings
// on top of the enclosing set for their subtree only. Non-computed member
// properties and object keys are not references.
func Extract(root jsast.Node, outer *scope.Bindings) []string {
	if root == nil {
		return nil
	}

	e := extractor{seen: make(map[string]struct{})}
	e.walk(root, outer)

	return e.names
}

type extractor struct {
	seen  map[string]struct{}
	names []string
}

func (e *extractor) use(name string, b *scope.Bindings) {
	if b.Contains(name) {
		return
	}

	if _, ok := e.seen[name]; ok {
		return
	}

	e.seen[name] = struct{}{}
	e.names = append(e.names, name)
}

func (e *extractor) walk(n jsast.Node, b *scope.Bindings) {
	if n == nil {
		return
	}

	jsast.Inspect(n, func(n jsast.Node) bool {
		if n == nil {
			return false
		}

		return e.visit(n, b)
	})
}

// visit handles one node and reports whether the generic walk should descend.
func (e *extractor) visit(node jsast.Node, b *scope.Bindings) bool {
	switch n := node.(type) {
	case *jsast.Ident:
		e.use(n.Name, b)

	case *jsast.MemberExpr:
		e.walk(n.Object, b)
		if n.Computed {
			e.walk(n.Property, b)
		}

		return false

	case *jsast.Property:
		if n.Computed {
			e.walk(n.Key, b)
		}
		e.walk(n.Value, b)

		return false

	case *jsast.FuncLit:
		inner := b
		if n.Name != nil {
			inner = inner.With(n.Name.Name)
		}
		e.function(n.Params, n.Body, inner)

		return false

	case *jsast.FuncDecl:
		inner := b
		if n.Name != nil {
			inner = inner.With(n.Name.Name)
		}

		var body jsast.Node
		if n.Body != nil {
			body = n.Body
		}
		e.function(n.Params, body, inner)

		return false

	case *jsast.ClassDecl:
		for _, h := range n.Heritage {
			e.walk(h, b)
		}

		inner := b
		if n.Name != nil {
			inner = inner.With(n.Name.Name)
		}

		for _, member := range n.Body {
			e.walk(member, inner)
		}

		return false

	case *jsast.Program:
		inner := b.With(scope.BlockNames(n.Body)...).With(scope.HoistedVars(n)...)
		for _, stmt := range n.Body {
			e.walk(stmt, inner)
		}

		return false

	case *jsast.BlockStmt:
		inner := b.With(scope.BlockNames(n.Body)...)
		for _, stmt := range n.Body {
			e.walk(stmt, inner)
		}

		return false

	case *jsast.VarDeclarator:
		e.pattern(n.ID, b)
		e.walk(n.Init, b)

		return false

	case *jsast.ImportDecl:
		return false

	case *jsast.CatchClause:
		inner := b
		if n.Param != nil {
			inner = inner.With(scope.PatternNames(n.Param)...)
			e.pattern(n.Param, inner)
		}

		if n.Body != nil {
			e.walk(n.Body, inner)
		}

		return false

	case *jsast.ForStmt:
		inner := b
		if decl, ok := n.Init.(*jsast.VarDecl); ok {
			inner = inner.With(scope.BlockNames([]jsast.Node{decl})...)
		}

		e.walk(n.Init, inner)
		e.walk(n.Test, inner)
		e.walk(n.Update, inner)
		e.walk(n.Body, inner)

		return false

	case *jsast.ForInStmt:
		e.walk(n.Right, b)

		inner := b
		if n.Kind != "" {
			inner = inner.With(scope.PatternNames(n.Left)...)
			e.pattern(n.Left, inner)
		} else {
			e.walk(n.Left, b)
		}

		e.walk(n.Body, inner)

		return false
	}

	return true
}

// function walks a function with its parameters and hoisted variables bound.
func (e *extractor) function(params []jsast.Node, body jsast.Node, b *scope.Bindings) {
	inner := b.With(scope.ParamNames(params)...).With(scope.HoistedVars(body)...)

	for _, p := range params {
		e.pattern(p, inner)
	}

	e.walk(body, inner)
}

// pattern walks the default values and computed keys of a binding pattern.
func (e *extractor) pattern(p jsast.Node, b *scope.Bindings) {
	switch p := p.(type) {
	case nil, *jsast.Ident:
		// binding name

	case *jsast.ObjectPattern:
		for _, prop := range p.Properties {
			e.pattern(prop, b)
		}

	case *jsast.Property:
		if p.Computed {
			e.walk(p.Key, b)
		}
		e.pattern(p.Value, b)

	case *jsast.ArrayPattern:
		for _, el := range p.Elements {
			e.pattern(el, b)
		}

	case *jsast.AssignPattern:
		e.pattern(p.Left, b)
		e.walk(p.Right, b)

	case *jsast.RestElement:
		e.pattern(p.Argument, b)

	default:
		e.walk(p, b)
	}
}
