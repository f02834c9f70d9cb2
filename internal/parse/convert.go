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

package parse

import (
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// converter maps tree-sitter nodes of one script block onto [jsast] nodes.
type converter struct {
	src      []byte // block content
	base     int    // file position of the first block byte
	comments []*jsast.Comment
}

func (c *converter) span(n *sitter.Node) jsast.Span {
	return jsast.Span{
		From: token.Pos(c.base + int(n.StartByte())),
		To:   token.Pos(c.base + int(n.EndByte())),
	}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) collectComments(n *sitter.Node) {
	if n.Type() == "comment" {
		c.comments = append(c.comments, &jsast.Comment{Span: c.span(n), Text: c.text(n)})

		return
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			c.collectComments(child)
		}
	}
}

// named returns the named children of n, without comments.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}

	children := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := range int(n.NamedChildCount()) {
		if child := n.NamedChild(i); child != nil && child.Type() != "comment" {
			children = append(children, child)
		}
	}

	return children
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if ch := named(n); len(ch) > 0 {
		return ch[0]
	}

	return nil
}

func field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}

	return n.ChildByFieldName(name)
}

func hasChild(n *sitter.Node, types ...string) bool {
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}

		for _, t := range types {
			if child.Type() == t {
				return true
			}
		}
	}

	return false
}

func (c *converter) list(nodes []*sitter.Node) []jsast.Node {
	result := make([]jsast.Node, 0, len(nodes))
	for _, n := range nodes {
		if node := c.convert(n); node != nil {
			result = append(result, node)
		}
	}

	return result
}

func (c *converter) ident(n *sitter.Node) *jsast.Ident {
	if n == nil {
		return nil
	}

	return &jsast.Ident{Span: c.span(n), Name: c.text(n)}
}

func (c *converter) block(n *sitter.Node) *jsast.BlockStmt {
	if n == nil {
		return nil
	}

	return &jsast.BlockStmt{Span: c.span(n), Body: c.list(named(n))}
}

// convert maps a node and its subtree. It returns nil for nil input and comments.
func (c *converter) convert(n *sitter.Node) jsast.Node {
	if n == nil {
		return nil
	}

	sp := c.span(n)

	switch n.Type() {
	case "comment":
		return nil

	case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
		return c.convert(firstNamed(n))

	case "program":
		return &jsast.Program{Span: sp, Body: c.list(named(n))}

	case "statement_block":
		return c.block(n)

	case "expression_statement":
		return &jsast.ExprStmt{Span: sp, X: c.convert(firstNamed(n))}

	case "return_statement":
		return &jsast.ReturnStmt{Span: sp, Argument: c.convert(firstNamed(n))}

	case "lexical_declaration", "variable_declaration":
		return c.varDecl(n)

	case "variable_declarator":
		return c.declarator(n)

	case "function_declaration", "generator_function_declaration":
		return &jsast.FuncDecl{
			Span:       sp,
			Name:       c.ident(field(n, "name")),
			Params:     c.params(field(n, "parameters")),
			Body:       c.block(field(n, "body")),
			ReturnType: c.convert(field(n, "return_type")),
		}

	case "class_declaration", "class":
		cls := &jsast.ClassDecl{
			Span: sp,
			Name: c.ident(field(n, "name")),
			Body: c.list(named(field(n, "body"))),
		}

		for _, child := range named(n) {
			if child.Type() == "class_heritage" {
				cls.Heritage = append(cls.Heritage, c.list(named(child))...)
			}
		}

		return cls

	case "export_statement":
		decl := field(n, "declaration")
		if decl == nil {
			decl = field(n, "value")
		}

		if decl == nil {
			decl = firstNamed(n)
		}

		return &jsast.ExportDecl{Span: sp, Default: hasChild(n, "default"), Declaration: c.convert(decl)}

	case "import_statement":
		return c.importDecl(n)

	case "catch_clause":
		return &jsast.CatchClause{
			Span:  sp,
			Param: c.convert(field(n, "parameter")),
			Body:  c.block(field(n, "body")),
		}

	case "for_statement":
		return &jsast.ForStmt{
			Span:   sp,
			Init:   c.convert(field(n, "initializer")),
			Test:   c.convert(field(n, "condition")),
			Update: c.convert(field(n, "increment")),
			Body:   c.convert(field(n, "body")),
		}

	case "for_in_statement":
		var kind string
		if k := field(n, "kind"); k != nil {
			kind = c.text(k)
		}

		return &jsast.ForInStmt{
			Span:  sp,
			Kind:  kind,
			Left:  c.convert(field(n, "left")),
			Right: c.convert(field(n, "right")),
			Body:  c.convert(field(n, "body")),
		}

	case "identifier", "undefined":
		return c.ident(n)

	case "this":
		return &jsast.ThisExpr{Span: sp}

	case "true", "false":
		return &jsast.Literal{Span: sp, Kind: jsast.Boolean, Raw: c.text(n)}

	case "null":
		return &jsast.Literal{Span: sp, Kind: jsast.Null, Raw: c.text(n)}

	case "number":
		return &jsast.Literal{Span: sp, Kind: jsast.Number, Raw: c.text(n)}

	case "string":
		return &jsast.Literal{Span: sp, Kind: jsast.String, Raw: c.text(n)}

	case "regex":
		return &jsast.Literal{Span: sp, Kind: jsast.Regexp, Raw: c.text(n)}

	case "template_string":
		var exprs []jsast.Node
		for _, child := range named(n) {
			if child.Type() == "template_substitution" {
				if e := c.convert(firstNamed(child)); e != nil {
					exprs = append(exprs, e)
				}
			}
		}

		return &jsast.TemplateLit{Span: sp, Exprs: exprs}

	case "array":
		return &jsast.ArrayExpr{Span: sp, Elements: c.list(named(n))}

	case "object":
		return c.object(n)

	case "pair", "method_definition":
		return c.property(n)

	case "spread_element":
		return &jsast.SpreadElement{Span: sp, Argument: c.convert(firstNamed(n))}

	case "function_expression", "function", "generator_function":
		return &jsast.FuncLit{
			Span:       sp,
			Name:       c.ident(field(n, "name")),
			Params:     c.params(field(n, "parameters")),
			Body:       c.convert(field(n, "body")),
			ReturnType: c.convert(field(n, "return_type")),
		}

	case "arrow_function":
		var params []jsast.Node
		if p := field(n, "parameter"); p != nil {
			params = []jsast.Node{c.ident(p)}
		} else {
			params = c.params(field(n, "parameters"))
		}

		return &jsast.FuncLit{
			Span:       sp,
			Params:     params,
			Body:       c.convert(field(n, "body")),
			ReturnType: c.convert(field(n, "return_type")),
			Arrow:      true,
		}

	case "call_expression":
		return &jsast.CallExpr{
			Span:     sp,
			Callee:   c.convert(field(n, "function")),
			Args:     c.arguments(field(n, "arguments")),
			Optional: hasChild(n, "optional_chain", "?."),
		}

	case "new_expression":
		return &jsast.NewExpr{
			Span:   sp,
			Callee: c.convert(field(n, "constructor")),
			Args:   c.arguments(field(n, "arguments")),
		}

	case "member_expression":
		m := &jsast.MemberExpr{
			Span:     sp,
			Object:   c.convert(field(n, "object")),
			Optional: hasChild(n, "optional_chain", "?."),
		}
		if p := field(n, "property"); p != nil {
			m.Property = c.ident(p)
		}

		return m

	case "subscript_expression":
		return &jsast.MemberExpr{
			Span:     sp,
			Object:   c.convert(field(n, "object")),
			Property: c.convert(field(n, "index")),
			Computed: true,
			Optional: hasChild(n, "optional_chain", "?."),
		}

	case "assignment_expression":
		return &jsast.AssignExpr{
			Span:  sp,
			Op:    "=",
			Left:  c.convert(field(n, "left")),
			Right: c.convert(field(n, "right")),
		}

	case "augmented_assignment_expression":
		return &jsast.AssignExpr{
			Span:  sp,
			Op:    c.operator(n),
			Left:  c.convert(field(n, "left")),
			Right: c.convert(field(n, "right")),
		}

	case "ternary_expression":
		return &jsast.CondExpr{
			Span:       sp,
			Test:       c.convert(field(n, "condition")),
			Consequent: c.convert(field(n, "consequence")),
			Alternate:  c.convert(field(n, "alternative")),
		}

	case "binary_expression":
		op, left, right := c.operator(n), c.convert(field(n, "left")), c.convert(field(n, "right"))
		switch op {
		case "&&", "||", "??":
			return &jsast.LogicalExpr{Span: sp, Op: op, Left: left, Right: right}

		default:
			return &jsast.BinaryExpr{Span: sp, Op: op, Left: left, Right: right}
		}

	case "unary_expression":
		return &jsast.UnaryExpr{Span: sp, Op: c.operator(n), Argument: c.convert(field(n, "argument"))}

	case "update_expression":
		return &jsast.UpdateExpr{Span: sp, Op: c.operator(n), Argument: c.convert(field(n, "argument"))}

	case "sequence_expression":
		return &jsast.SequenceExpr{Span: sp, Exprs: c.sequence(n, nil)}

	case "object_pattern":
		return c.objectPattern(n)

	case "array_pattern":
		return &jsast.ArrayPattern{Span: sp, Elements: c.list(named(n))}

	case "assignment_pattern":
		return &jsast.AssignPattern{Span: sp, Left: c.convert(field(n, "left")), Right: c.convert(field(n, "right"))}

	case "rest_pattern":
		return &jsast.RestElement{Span: sp, Argument: c.convert(firstNamed(n))}

	case "required_parameter", "optional_parameter":
		return c.parameter(n)

	case "jsx_element", "jsx_self_closing_element":
		return c.jsxElement(n)

	case "jsx_attribute":
		return c.jsxAttr(n)

	case "jsx_expression":
		return c.convert(firstNamed(n))

	case "jsx_text":
		return nil

	default:
		return &jsast.Other{Span: sp, Type: n.Type(), Children: c.list(named(n))}
	}
}

func (c *converter) operator(n *sitter.Node) string {
	if op := field(n, "operator"); op != nil {
		return c.text(op)
	}

	return ""
}

func (c *converter) sequence(n *sitter.Node, exprs []jsast.Node) []jsast.Node {
	for _, child := range named(n) {
		if child.Type() == "sequence_expression" {
			exprs = c.sequence(child, exprs)

			continue
		}

		if e := c.convert(child); e != nil {
			exprs = append(exprs, e)
		}
	}

	return exprs
}

func (c *converter) varDecl(n *sitter.Node) *jsast.VarDecl {
	decl := &jsast.VarDecl{Span: c.span(n), Kind: "var"}

	if n.Type() == "lexical_declaration" {
		if kind := field(n, "kind"); kind != nil {
			decl.Kind = c.text(kind)
		} else if first := n.Child(0); first != nil {
			decl.Kind = c.text(first)
		}
	}

	for _, child := range named(n) {
		if child.Type() == "variable_declarator" {
			decl.Decls = append(decl.Decls, c.declarator(child))
		}
	}

	return decl
}

func (c *converter) declarator(n *sitter.Node) *jsast.VarDeclarator {
	return &jsast.VarDeclarator{
		Span: c.span(n),
		ID:   c.convert(field(n, "name")),
		Init: c.convert(field(n, "value")),
	}
}

func (c *converter) importDecl(n *sitter.Node) *jsast.ImportDecl {
	decl := &jsast.ImportDecl{Span: c.span(n)}

	if src := field(n, "source"); src != nil {
		decl.Source = jsast.Unquote(c.text(src))
	}

	for _, child := range named(n) {
		if child.Type() != "import_clause" {
			continue
		}

		for _, part := range named(child) {
			switch part.Type() {
			case "identifier":
				decl.Names = append(decl.Names, c.ident(part))

			case "namespace_import":
				if id := firstNamed(part); id != nil {
					decl.Names = append(decl.Names, c.ident(id))
				}

			case "named_imports":
				for _, spec := range named(part) {
					local := field(spec, "alias")
					if local == nil {
						local = field(spec, "name")
					}

					if local != nil {
						decl.Names = append(decl.Names, c.ident(local))
					}
				}
			}
		}
	}

	return decl
}

func (c *converter) params(n *sitter.Node) []jsast.Node {
	return c.list(named(n))
}

func (c *converter) parameter(n *sitter.Node) jsast.Node {
	pattern := c.convert(field(n, "pattern"))
	if pattern == nil {
		return &jsast.Other{Span: c.span(n), Type: n.Type()}
	}

	if value := c.convert(field(n, "value")); value != nil {
		return &jsast.AssignPattern{Span: c.span(n), Left: pattern, Right: value}
	}

	return pattern
}

func (c *converter) arguments(n *sitter.Node) []jsast.Node {
	if n == nil {
		return nil
	}

	if n.Type() == "template_string" {
		return []jsast.Node{c.convert(n)}
	}

	return c.list(named(n))
}

func (c *converter) key(n *sitter.Node) (key jsast.Node, computed bool) {
	if n == nil {
		return nil, false
	}

	switch n.Type() {
	case "property_identifier", "identifier", "private_property_identifier":
		return c.ident(n), false

	case "computed_property_name":
		return c.convert(firstNamed(n)), true

	default:
		return c.convert(n), false
	}
}

func (c *converter) object(n *sitter.Node) *jsast.ObjectExpr {
	obj := &jsast.ObjectExpr{Span: c.span(n)}

	for _, child := range named(n) {
		if p := c.objectMember(child); p != nil {
			obj.Properties = append(obj.Properties, p)
		}
	}

	return obj
}

func (c *converter) objectMember(n *sitter.Node) jsast.Node {
	switch n.Type() {
	case "shorthand_property_identifier":
		id := c.ident(n)

		return &jsast.Property{Span: id.Span, Key: id, Value: id, Shorthand: true}

	default:
		return c.convert(n)
	}
}

func (c *converter) property(n *sitter.Node) *jsast.Property {
	if n.Type() == "method_definition" {
		key, computed := c.key(field(n, "name"))

		return &jsast.Property{
			Span: c.span(n),
			Key:  key,
			Value: &jsast.FuncLit{
				Span:       c.span(n),
				Params:     c.params(field(n, "parameters")),
				Body:       c.convert(field(n, "body")),
				ReturnType: c.convert(field(n, "return_type")),
			},
			Computed: computed,
			Method:   true,
		}
	}

	key, computed := c.key(field(n, "key"))

	return &jsast.Property{
		Span:     c.span(n),
		Key:      key,
		Value:    c.convert(field(n, "value")),
		Computed: computed,
	}
}

func (c *converter) objectPattern(n *sitter.Node) *jsast.ObjectPattern {
	pat := &jsast.ObjectPattern{Span: c.span(n)}

	for _, child := range named(n) {
		switch child.Type() {
		case "shorthand_property_identifier_pattern":
			id := c.ident(child)
			pat.Properties = append(pat.Properties, &jsast.Property{Span: id.Span, Key: id, Value: id, Shorthand: true})

		case "pair_pattern":
			key, computed := c.key(field(child, "key"))
			pat.Properties = append(pat.Properties, &jsast.Property{
				Span:     c.span(child),
				Key:      key,
				Value:    c.convert(field(child, "value")),
				Computed: computed,
			})

		case "object_assignment_pattern":
			left := field(child, "left")
			if left == nil {
				continue
			}

			if left.Type() == "shorthand_property_identifier_pattern" {
				id := c.ident(left)
				pat.Properties = append(pat.Properties, &jsast.Property{
					Span:      c.span(child),
					Key:       id,
					Value:     &jsast.AssignPattern{Span: c.span(child), Left: id, Right: c.convert(field(child, "right"))},
					Shorthand: true,
				})

				continue
			}

			pat.Properties = append(pat.Properties, &jsast.AssignPattern{
				Span:  c.span(child),
				Left:  c.convert(left),
				Right: c.convert(field(child, "right")),
			})

		default:
			if p := c.convert(child); p != nil {
				pat.Properties = append(pat.Properties, p)
			}
		}
	}

	return pat
}

func (c *converter) jsxElement(n *sitter.Node) *jsast.JSXElement {
	el := &jsast.JSXElement{Span: c.span(n)}

	open := n
	if n.Type() == "jsx_element" {
		open = field(n, "open_tag")
		if open == nil {
			open = firstNamed(n)
		}
	}

	if name := field(open, "name"); name != nil {
		el.Name = c.text(name)
	}

	for _, child := range named(open) {
		if child.Type() == "jsx_attribute" {
			el.Attrs = append(el.Attrs, c.jsxAttr(child))
		}
	}

	if n.Type() == "jsx_element" {
		for _, child := range named(n) {
			switch child.Type() {
			case "jsx_opening_element", "jsx_closing_element":
				continue
			}

			if node := c.convert(child); node != nil {
				el.Children = append(el.Children, node)
			}
		}
	}

	return el
}

func (c *converter) jsxAttr(n *sitter.Node) *jsast.JSXAttr {
	attr := &jsast.JSXAttr{Span: c.span(n)}

	children := named(n)
	if len(children) > 0 {
		attr.Name = c.text(children[0])
	}

	if len(children) > 1 {
		attr.Value = c.convert(children[1])
	}

	return attr
}
