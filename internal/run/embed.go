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

package run

import (
	"errors"
	"go/ast"
	"go/token"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"fillmore-labs.com/vuesanitizer/internal/parse"
)

// embedDirective is the prefix of embed comments.
const embedDirective = "//go:embed"

var errBadPattern = errors.New("invalid quoted pattern")

// source is an embedded frontend file and the directive embedding it.
type source struct {
	path      string
	directive token.Pos
}

// embeddedSources returns the supported frontend sources embedded by files,
// in directive order without duplicates.
func embeddedSources(fset *token.FileSet, files []*ast.File) ([]source, error) {
	var (
		sources []source
		errs    []error
		seen    = make(map[string]struct{})
	)

	for _, file := range files {
		handle := fset.File(file.FileStart)
		if handle == nil {
			continue
		}

		dir := filepath.Dir(handle.Name())

		for _, group := range file.Comments {
			for _, comment := range group.List {
				args, ok := strings.CutPrefix(comment.Text, embedDirective)
				if !ok || args == "" || !unicode.IsSpace(rune(args[0])) {
					continue
				}

				patterns, err := embedPatterns(args)
				if err != nil {
					errs = append(errs, err)

					continue
				}

				for _, pattern := range patterns {
					paths, err := resolvePattern(dir, pattern)
					if err != nil {
						errs = append(errs, err)
					}

					for _, path := range paths {
						if _, ok := seen[path]; ok {
							continue
						}

						seen[path] = struct{}{}
						sources = append(sources, source{path: path, directive: comment.Pos()})
					}
				}
			}
		}
	}

	return sources, errors.Join(errs...)
}

// embedPatterns splits the arguments of an embed directive, honoring Go string quoting.
func embedPatterns(args string) ([]string, error) {
	var patterns []string

	for {
		args = strings.TrimLeftFunc(args, unicode.IsSpace)
		if args == "" {
			return patterns, nil
		}

		switch args[0] {
		case '"', '`':
			quoted, err := strconv.QuotedPrefix(args)
			if err != nil {
				return patterns, errBadPattern
			}

			pattern, err := strconv.Unquote(quoted)
			if err != nil {
				return patterns, errBadPattern
			}

			patterns = append(patterns, pattern)
			args = args[len(quoted):]

		default:
			end := strings.IndexFunc(args, unicode.IsSpace)
			if end < 0 {
				end = len(args)
			}

			patterns = append(patterns, args[:end])
			args = args[end:]
		}
	}
}

// resolvePattern matches an embed pattern relative to dir. Directories are
// walked recursively, skipping names starting with '.' or '_' unless the
// pattern has the "all:" prefix.
func resolvePattern(dir, pattern string) ([]string, error) {
	pattern, all := strings.CutPrefix(pattern, "all:")

	matches, err := filepath.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, err
	}

	var paths []string

	for _, match := range matches {
		err := filepath.WalkDir(match, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != match && !all && hidden(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.IsDir() && parse.Supported(path) {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return paths, err
		}
	}

	slices.Sort(paths)

	return paths, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
