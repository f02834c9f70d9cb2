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

package jsast

import "go/token"

// Node is implemented by all syntax tree nodes.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Span is the source range of a node. It is embedded in every node type.
type Span struct {
	From, To token.Pos
}

// Pos implements [Node].
func (s Span) Pos() token.Pos { return s.From }

// End implements [Node].
func (s Span) End() token.Pos { return s.To }

// LitKind is the kind of a [Literal].
type LitKind uint8

const (
	String LitKind = iota
	Number
	Boolean
	Null
	Regexp
)

// ----------------------------------------------------------------------------
// Expressions

type (
	// Ident is an identifier reference or binding.
	Ident struct {
		Span
		Name string
	}

	// ThisExpr is the `this` keyword.
	ThisExpr struct {
		Span
	}

	// Literal is a string, number, boolean, null or regular expression literal.
	Literal struct {
		Span
		Kind LitKind
		Raw  string // literal text, including quotes
	}

	// TemplateLit is a template string with its substitutions.
	TemplateLit struct {
		Span
		Exprs []Node
	}

	// ArrayExpr is an array literal.
	ArrayExpr struct {
		Span
		Elements []Node
	}

	// ObjectExpr is an object literal. Properties are *[Property] or *[SpreadElement].
	ObjectExpr struct {
		Span
		Properties []Node
	}

	// Property is a key/value pair in an object literal or object pattern.
	//
	// For shorthand properties Key and Value are the same *[Ident].
	// For methods Value is a *[FuncLit].
	Property struct {
		Span
		Key       Node
		Value     Node
		Computed  bool // [key]: value
		Shorthand bool // { key }
		Method    bool // key() {}
	}

	// SpreadElement is `...argument` in an array, object or argument list.
	SpreadElement struct {
		Span
		Argument Node
	}

	// FuncLit is a function expression or an arrow function.
	FuncLit struct {
		Span
		Name       *Ident // optional, function expressions only
		Params     []Node // patterns
		Body       Node   // *BlockStmt, or an expression for concise arrow bodies
		ReturnType Node   // optional type annotation
		Arrow      bool
	}

	// CallExpr is a function call.
	CallExpr struct {
		Span
		Callee   Node
		Args     []Node
		Optional bool // callee?.()
	}

	// NewExpr is a constructor call.
	NewExpr struct {
		Span
		Callee Node
		Args   []Node
	}

	// MemberExpr is a property access `object.property` or `object[property]`.
	MemberExpr struct {
		Span
		Object   Node
		Property Node
		Computed bool // object[property]
		Optional bool // object?.property
	}

	// AssignExpr is an assignment, including compound assignments.
	AssignExpr struct {
		Span
		Op    string
		Left  Node // *Ident, *MemberExpr or a pattern
		Right Node
	}

	// CondExpr is a ternary `test ? consequent : alternate`.
	CondExpr struct {
		Span
		Test       Node
		Consequent Node
		Alternate  Node
	}

	// LogicalExpr is a short-circuit operation: &&, || or ??.
	LogicalExpr struct {
		Span
		Op          string
		Left, Right Node
	}

	// BinaryExpr is a binary operation other than the logical ones.
	BinaryExpr struct {
		Span
		Op          string
		Left, Right Node
	}

	// UnaryExpr is a prefix operation such as !x, typeof x or -x.
	UnaryExpr struct {
		Span
		Op       string
		Argument Node
	}

	// UpdateExpr is ++ or -- applied to an argument.
	UpdateExpr struct {
		Span
		Op       string
		Argument Node
	}

	// SequenceExpr is a comma-separated list of expressions.
	SequenceExpr struct {
		Span
		Exprs []Node
	}
)

// ----------------------------------------------------------------------------
// Patterns

type (
	// ObjectPattern is a destructuring object pattern. Properties are *[Property] or *[RestElement].
	ObjectPattern struct {
		Span
		Properties []Node
	}

	// ArrayPattern is a destructuring array pattern.
	ArrayPattern struct {
		Span
		Elements []Node
	}

	// AssignPattern is a pattern with a default value.
	AssignPattern struct {
		Span
		Left  Node
		Right Node
	}

	// RestElement is `...argument` in a pattern or parameter list.
	RestElement struct {
		Span
		Argument Node
	}
)

// ----------------------------------------------------------------------------
// Statements and declarations

type (
	// Program is the root of a script.
	Program struct {
		Span
		Body []Node
	}

	// BlockStmt is a braced statement list.
	BlockStmt struct {
		Span
		Body []Node
	}

	// ExprStmt is an expression used as a statement.
	ExprStmt struct {
		Span
		X Node
	}

	// ReturnStmt is a return statement with an optional argument.
	ReturnStmt struct {
		Span
		Argument Node
	}

	// VarDecl is a var, let or const declaration.
	VarDecl struct {
		Span
		Kind  string // "var", "let" or "const"
		Decls []*VarDeclarator
	}

	// VarDeclarator binds a pattern to an optional initializer.
	VarDeclarator struct {
		Span
		ID   Node
		Init Node
	}

	// FuncDecl is a function declaration.
	FuncDecl struct {
		Span
		Name       *Ident
		Params     []Node
		Body       *BlockStmt
		ReturnType Node
	}

	// ClassDecl is a class declaration or class expression; the class body is kept as unstructured nodes.
	ClassDecl struct {
		Span
		Name     *Ident // optional for class expressions
		Heritage []Node // extends and implements clauses
		Body     []Node
	}

	// ExportDecl is an export statement carrying a declaration or a default value.
	ExportDecl struct {
		Span
		Default     bool
		Declaration Node
	}

	// ImportDecl is an import statement with its local bindings.
	ImportDecl struct {
		Span
		Names  []*Ident
		Source string
	}

	// CatchClause is the catch part of a try statement.
	CatchClause struct {
		Span
		Param Node // optional
		Body  *BlockStmt
	}

	// ForStmt is a C-style for loop.
	ForStmt struct {
		Span
		Init, Test, Update Node
		Body               Node
	}

	// ForInStmt is a for-in or for-of loop.
	ForInStmt struct {
		Span
		Kind  string // declaration kind, empty when Left is an existing target
		Left  Node
		Right Node
		Body  Node
	}
)

// ----------------------------------------------------------------------------
// JSX

type (
	// JSXElement is a JSX element with its attributes and children.
	JSXElement struct {
		Span
		Name     string
		Attrs    []*JSXAttr
		Children []Node
	}

	// JSXAttr is a JSX attribute. Value is nil for boolean attributes.
	JSXAttr struct {
		Span
		Name  string
		Value Node
	}
)

// Other is any construct outside the closed node set, kept with its converted children.
type Other struct {
	Span
	Type     string
	Children []Node
}
