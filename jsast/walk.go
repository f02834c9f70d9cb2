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

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by [Walk].
// If the result visitor w is not nil, [Walk] visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a syntax tree in depth-first order. It starts by calling
// v.Visit(node); node must not be nil.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Ident, *ThisExpr, *Literal:
		// nothing to do

	case *TemplateLit:
		walkList(v, n.Exprs)

	case *ArrayExpr:
		walkList(v, n.Elements)

	case *ObjectExpr:
		walkList(v, n.Properties)

	case *Property:
		if !n.Shorthand {
			walkOpt(v, n.Key)
		}
		walkOpt(v, n.Value)

	case *SpreadElement:
		walkOpt(v, n.Argument)

	case *FuncLit:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkList(v, n.Params)
		walkOpt(v, n.ReturnType)
		walkOpt(v, n.Body)

	case *CallExpr:
		walkOpt(v, n.Callee)
		walkList(v, n.Args)

	case *NewExpr:
		walkOpt(v, n.Callee)
		walkList(v, n.Args)

	case *MemberExpr:
		walkOpt(v, n.Object)
		walkOpt(v, n.Property)

	case *AssignExpr:
		walkOpt(v, n.Left)
		walkOpt(v, n.Right)

	case *CondExpr:
		walkOpt(v, n.Test)
		walkOpt(v, n.Consequent)
		walkOpt(v, n.Alternate)

	case *LogicalExpr:
		walkOpt(v, n.Left)
		walkOpt(v, n.Right)

	case *BinaryExpr:
		walkOpt(v, n.Left)
		walkOpt(v, n.Right)

	case *UnaryExpr:
		walkOpt(v, n.Argument)

	case *UpdateExpr:
		walkOpt(v, n.Argument)

	case *SequenceExpr:
		walkList(v, n.Exprs)

	case *ObjectPattern:
		walkList(v, n.Properties)

	case *ArrayPattern:
		walkList(v, n.Elements)

	case *AssignPattern:
		walkOpt(v, n.Left)
		walkOpt(v, n.Right)

	case *RestElement:
		walkOpt(v, n.Argument)

	case *Program:
		walkList(v, n.Body)

	case *BlockStmt:
		walkList(v, n.Body)

	case *ExprStmt:
		walkOpt(v, n.X)

	case *ReturnStmt:
		walkOpt(v, n.Argument)

	case *VarDecl:
		for _, d := range n.Decls {
			Walk(v, d)
		}

	case *VarDeclarator:
		walkOpt(v, n.ID)
		walkOpt(v, n.Init)

	case *FuncDecl:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkList(v, n.Params)
		walkOpt(v, n.ReturnType)
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *ClassDecl:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkList(v, n.Heritage)
		walkList(v, n.Body)

	case *ExportDecl:
		walkOpt(v, n.Declaration)

	case *ImportDecl:
		for _, id := range n.Names {
			Walk(v, id)
		}

	case *CatchClause:
		walkOpt(v, n.Param)
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *ForStmt:
		walkOpt(v, n.Init)
		walkOpt(v, n.Test)
		walkOpt(v, n.Update)
		walkOpt(v, n.Body)

	case *ForInStmt:
		walkOpt(v, n.Left)
		walkOpt(v, n.Right)
		walkOpt(v, n.Body)

	case *JSXElement:
		for _, a := range n.Attrs {
			Walk(v, a)
		}
		walkList(v, n.Children)

	case *JSXAttr:
		walkOpt(v, n.Value)

	case *Other:
		walkList(v, n.Children)

	default:
		panic(fmt.Sprintf("jsast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkOpt(v Visitor, node Node) {
	if node != nil {
		Walk(v, node)
	}
}

func walkList(v Visitor, list []Node) {
	for _, node := range list {
		walkOpt(v, node)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}

	return nil
}

// Inspect traverses a syntax tree in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
