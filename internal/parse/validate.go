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
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// Validator checks replacement texts against a grammar.
type Validator struct {
	Lang Language
}

// ValidatorFor returns a [Validator] using the grammar of filename.
// Single-file components are validated as JavaScript.
func ValidatorFor(filename string) Validator {
	lang, _ := LanguageOf(filename)

	return Validator{Lang: lang}
}

// ValidExpression reports whether text parses as exactly one expression.
//
// The text is wrapped in parentheses, so a valid result can replace any
// expression without changing the surrounding parse.
func (v Validator) ValidExpression(text string) bool {
	src := []byte("(" + text + ");")

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(v.Lang.grammar())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() || root.NamedChildCount() != 1 {
		return false
	}

	stmt := root.NamedChild(0)
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
		return false
	}

	// the parenthesized wrapper must span the whole text
	paren := stmt.NamedChild(0)

	return paren.Type() == "parenthesized_expression" && int(paren.EndByte()) == len(src)-1
}
