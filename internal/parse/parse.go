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

// Package parse turns JavaScript, TypeScript and single-file component
// sources into [jsast] syntax trees using tree-sitter grammars.
package parse

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// ErrUnsupportedLanguage is returned for files without a known grammar.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects a tree-sitter grammar.
type Language uint8

const (
	// JavaScript is the JavaScript grammar, including JSX.
	JavaScript Language = iota
	// TypeScript is the TypeScript grammar.
	TypeScript
	// TSX is the TypeScript grammar with JSX.
	TSX
)

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()

	case TSX:
		return tsx.GetLanguage()

	default:
		return javascript.GetLanguage()
	}
}

// LanguageOf returns the grammar for a script file name. Single-file
// components are not scripts; see [Supported].
func LanguageOf(filename string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".js", ".mjs", ".cjs", ".jsx":
		return JavaScript, true

	case ".ts", ".mts", ".cts":
		return TypeScript, true

	case ".tsx":
		return TSX, true

	default:
		return JavaScript, false
	}
}

// Supported reports whether [ParseFile] can handle the file name.
func Supported(filename string) bool {
	if _, ok := LanguageOf(filename); ok {
		return true
	}

	return isComponent(filename)
}

func isComponent(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".vue")
}

// ParseFile parses src and registers it in fset under filename.
//
// Syntax errors do not fail the parse: the tree contains what the grammar
// could recover and [jsast.File.HasErrors] is set.
func ParseFile(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*jsast.File, error) {
	var blocks []scriptBlock

	switch lang, ok := LanguageOf(filename); {
	case ok:
		blocks = []scriptBlock{{lang: lang, start: 0, end: len(src)}}

	case isComponent(filename):
		blocks = scriptBlocks(src)

	default:
		return nil, fmt.Errorf("can't parse %s: %w", filename, ErrUnsupportedLanguage)
	}

	handle := fset.AddFile(filename, -1, len(src))
	handle.SetLinesForContent(src)

	f := &jsast.File{
		Name:   filename,
		Src:    src,
		Handle: handle,
	}

	parser := sitter.NewParser()
	defer parser.Close()

	for _, b := range blocks {
		parser.SetLanguage(b.lang.grammar())

		content := src[b.start:b.end]

		tree, err := parser.ParseCtx(ctx, nil, content)
		if err != nil {
			return nil, fmt.Errorf("can't parse %s: %w", filename, err)
		}

		root := tree.RootNode()

		c := converter{src: content, base: handle.Base() + b.start}
		c.collectComments(root)

		if prog, ok := c.convert(root).(*jsast.Program); ok {
			f.Programs = append(f.Programs, prog)
		}

		f.Comments = append(f.Comments, c.comments...)
		f.HasErrors = f.HasErrors || root.HasError()

		tree.Close()
	}

	slices.SortFunc(f.Comments, func(a, b *jsast.Comment) int { return int(a.Pos() - b.Pos()) })

	return f, nil
}
