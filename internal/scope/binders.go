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

package scope

import "fillmore-labs.com/vuesanitizer/jsast"

// PatternNames returns the names bound by a binding pattern.
func PatternNames(pattern jsast.Node) []string {
	return appendPatternNames(nil, pattern)
}

func appendPatternNames(names []string, pattern jsast.Node) []string {
	switch p := pattern.(type) {
	case *jsast.Ident:
		names = append(names, p.Name)

	case *jsast.ObjectPattern:
		for _, prop := range p.Properties {
			names = appendPatternNames(names, prop)
		}

	case *jsast.Property:
		names = appendPatternNames(names, p.Value)

	case *jsast.ArrayPattern:
		for _, el := range p.Elements {
			names = appendPatternNames(names, el)
		}

	case *jsast.AssignPattern:
		names = appendPatternNames(names, p.Left)

	case *jsast.RestElement:
		names = appendPatternNames(names, p.Argument)
	}

	return names
}

// ParamNames returns the names bound by a parameter list.
func ParamNames(params []jsast.Node) []string {
	var names []string
	for _, p := range params {
		names = appendPatternNames(names, p)
	}

	return names
}

// BlockNames returns the names declared directly in a statement list.
func BlockNames(body []jsast.Node) []string {
	var names []string
	for _, stmt := range body {
		names = appendDeclNames(names, stmt)
	}

	return names
}

func appendDeclNames(names []string, stmt jsast.Node) []string {
	switch s := stmt.(type) {
	case *jsast.VarDecl:
		for _, d := range s.Decls {
			names = appendPatternNames(names, d.ID)
		}

	case *jsast.FuncDecl:
		if s.Name != nil {
			names = append(names, s.Name.Name)
		}

	case *jsast.ClassDecl:
		if s.Name != nil {
			names = append(names, s.Name.Name)
		}

	case *jsast.ImportDecl:
		for _, id := range s.Names {
			names = append(names, id.Name)
		}

	case *jsast.ExportDecl:
		if s.Declaration != nil {
			names = appendDeclNames(names, s.Declaration)
		}
	}

	return names
}

// HoistedVars returns the names of var declarations inside body that are
// scoped to the enclosing function, excluding those of nested functions.
func HoistedVars(body jsast.Node) []string {
	if body == nil {
		return nil
	}

	var names []string
	jsast.Inspect(body, func(n jsast.Node) bool {
		switch n := n.(type) {
		case *jsast.FuncLit, *jsast.FuncDecl, *jsast.ClassDecl:
			return false

		case *jsast.VarDecl:
			if n.Kind == "var" {
				for _, d := range n.Decls {
					names = appendPatternNames(names, d.ID)
				}
			}
		}

		return true
	})

	return names
}
