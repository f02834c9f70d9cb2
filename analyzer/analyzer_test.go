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

package analyzer_test

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/vuesanitizer/analyzer"
	"fillmore-labs.com/vuesanitizer/internal/config"
)

type result struct {
	File, Category string
	Line           int
	Fix            bool
}

// runPass runs a on the Go package in dir and returns the reported diagnostics.
func runPass(t *testing.T, a *analysis.Analyzer, dir string) (*token.FileSet, []analysis.Diagnostic) {
	t.Helper()

	fset := token.NewFileSet()

	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		t.Fatal(err)
	}

	files := make([]*ast.File, 0, len(matches))
	for _, m := range matches {
		f, err := parser.ParseFile(fset, m, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			t.Fatalf("Can't parse %s: %v", m, err)
		}

		files = append(files, f)
	}

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Analyzer: a,
		Fset:     fset,
		Files:    files,
		ResultOf: map[*analysis.Analyzer]any{inspect.Analyzer: inspector.New(files)},
		Report:   func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	if _, err := a.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	return fset, diagnostics
}

func results(fset *token.FileSet, diagnostics []analysis.Diagnostic) []result {
	rs := make([]result, 0, len(diagnostics))
	for _, d := range diagnostics {
		pos := fset.Position(d.Pos)
		rs = append(rs, result{
			File:     filepath.ToSlash(filepath.Base(pos.Filename)),
			Category: d.Category,
			Line:     pos.Line,
			Fix:      len(d.SuggestedFixes) > 0,
		})
	}

	return rs
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    []result
	}{
		{
			name: "Default",
			want: []result{
				{"App.vue", "reactive-refs", 6, true},
				{"App.vue", "effect-deps", 7, true},
				{"index.js", "vuex-store-structure", 4, false},
				{"Old.vue", "prop-validation", 2, true},
			},
		},
		{
			name:    "Rules",
			options: WithRules(config.EffectDeps, config.PropValidation),
			want: []result{
				{"App.vue", "effect-deps", 7, true},
				{"Old.vue", "prop-validation", 2, true},
			},
		},
		{
			name: "NoFix",
			options: Options{
				WithRule(config.VuexStoreStructure, false),
				WithRule(config.ReactiveRefs, false),
				WithSuggestFixes(false),
			},
			want: []result{
				{"App.vue", "effect-deps", 7, false},
				{"Old.vue", "prop-validation", 2, false},
			},
		},
		{
			name:    "Globals",
			options: Options{WithRules(config.EffectDeps), WithGlobals("step")},
			want:    []result{},
		},
		{
			name:    "MutationName",
			options: Options{WithRules(config.VuexStoreStructure), WithMutationNamePattern(nil)},
			want:    []result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, diagnostics := runPass(t, New(tt.options), filepath.Join("testdata", "app"))

			if diff := cmp.Diff(tt.want, results(fset, diagnostics)); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSuggestedFix(t *testing.T) {
	t.Parallel()

	fset, diagnostics := runPass(t, New(WithRules(config.EffectDeps)), filepath.Join("testdata", "app"))
	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	d := diagnostics[0]
	if !strings.Contains(d.Message, "step") {
		t.Errorf("Got message %q, want mention of step", d.Message)
	}

	edits := d.SuggestedFixes[0].TextEdits
	if len(edits) != 1 {
		t.Fatalf("Got %d edits, want 1", len(edits))
	}

	start, end := fset.Position(edits[0].Pos), fset.Position(edits[0].End)
	if start.Line != 7 || end.Line != 7 {
		t.Errorf("Got edit lines %d-%d, want 7", start.Line, end.Line)
	}

	if got, want := string(edits[0].NewText), "[count, step]"; got != want {
		t.Errorf("Got new text %q, want %q", got, want)
	}
}

func TestUnreadableSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	const src = "package app\n\nimport _ \"embed\"\n\n//go:embed web/broken.js\nvar broken string\n\n//go:embed \"web/x.js\n"
	if err := os.WriteFile(filepath.Join(dir, "app.go"), []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.Mkdir(filepath.Join(dir, "web"), 0o755); err != nil {
		t.Fatal(err)
	}

	// a dangling link is matched, but can't be read
	if err := os.Symlink(filepath.Join(dir, "missing.js"), filepath.Join(dir, "web", "broken.js")); err != nil {
		t.Skipf("Can't create symlink: %v", err)
	}

	_, diagnostics := runPass(t, New(), dir)

	if len(diagnostics) != 2 {
		t.Fatalf("Got %d diagnostics, want 2", len(diagnostics))
	}

	for _, d := range diagnostics {
		if d.Category != "vuesanitizer" || !strings.HasPrefix(d.Message, "Internal Error: ") {
			t.Errorf("Got diagnostic %q (%s), want internal error", d.Message, d.Category)
		}
	}
}

func TestResultMissing(t *testing.T) {
	t.Parallel()

	a := New()

	_, err := a.Run(&analysis.Pass{Analyzer: a, Fset: token.NewFileSet(), ResultOf: map[*analysis.Analyzer]any{}})
	if !errors.Is(err, ErrResultMissing) {
		t.Errorf("Got error %v, want %v", err, ErrResultMissing)
	}
}
