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

// Package testsource provides utilities for parsing script fragments in tests.
package testsource

import (
	"go/token"
	"testing"

	"fillmore-labs.com/vuesanitizer/internal/parse"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// Parse parses a source fragment as a file named filename.
// The language is selected by the file extension.
func Parse(tb testing.TB, filename, src string) *jsast.File {
	tb.Helper()

	f, err := parse.ParseFile(tb.Context(), token.NewFileSet(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if f.HasErrors {
		tb.Fatalf("Syntax error in source %q", src)
	}

	return f
}

// JS parses a JavaScript fragment.
func JS(tb testing.TB, src string) *jsast.File {
	tb.Helper()

	return Parse(tb, "test.js", src)
}

// FirstCall returns the first call to callee in document order.
func FirstCall(tb testing.TB, f *jsast.File, callee string) *jsast.CallExpr {
	tb.Helper()

	var found *jsast.CallExpr
	for _, prog := range f.Programs {
		jsast.Inspect(prog, func(n jsast.Node) bool {
			if found != nil {
				return false
			}

			if call, ok := n.(*jsast.CallExpr); ok && jsast.CalleeName(call) == callee {
				found = call

				return false
			}

			return true
		})
	}

	if found == nil {
		tb.Fatalf("No call to %s", callee)
	}

	return found
}

// First returns the first node of type T in document order.
func First[T jsast.Node](tb testing.TB, f *jsast.File) T {
	tb.Helper()

	var (
		found T
		ok    bool
	)

	for _, prog := range f.Programs {
		jsast.Inspect(prog, func(n jsast.Node) bool {
			if ok {
				return false
			}

			found, ok = n.(T)

			return !ok
		})
	}

	if !ok {
		tb.Fatalf("No node of type %T", found)
	}

	return found
}
