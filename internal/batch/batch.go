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

// Package batch lints many frontend source files in parallel.
package batch

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/vuesanitizer/internal/astutil"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/internal/parse"
	"fillmore-labs.com/vuesanitizer/internal/run"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// Result is the outcome of linting one file.
type Result struct {
	Path     string
	File     *jsast.File // nil when Err is set
	Findings []finding.Finding
	Err      error
}

// Linter runs the rules over a set of files.
type Linter struct {
	// Options configure the rules.
	Options *run.Options

	// Parallel is the maximum number of files processed at once.
	// Values below one use the number of CPUs.
	Parallel int

	// Logger receives per-file progress; nil discards it.
	Logger *slog.Logger
}

// Lint parses and lints paths, registering them in fset. Per-file failures
// are recorded in the results and do not stop the run. The results are in
// the order of paths. An error is only returned when ctx is canceled.
func (l Linter) Lint(ctx context.Context, fset *token.FileSet, paths []string) ([]Result, error) {
	ctx, task := trace.NewTask(ctx, "Batch")
	defer task.End()

	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	limit := l.Parallel
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = l.lintFile(ctx, logger, fset, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (l Linter) lintFile(ctx context.Context, logger *slog.Logger, fset *token.FileSet, path string) Result {
	defer trace.StartRegion(ctx, "File").End()

	content, err := os.ReadFile(path)
	if err != nil {
		logger.WarnContext(ctx, "Can't read file", slog.String("path", path), slog.Any("error", err))

		return Result{Path: path, Err: fmt.Errorf("can't read %s: %w", path, err)}
	}

	file, err := parse.ParseFile(ctx, fset, path, content)
	if err != nil {
		logger.WarnContext(ctx, "Can't parse file", slog.String("path", path), slog.Any("error", err))

		return Result{Path: path, Err: err}
	}

	if file.HasErrors {
		logger.WarnContext(ctx, "Syntax errors in file", slog.String("path", path))
	}

	findings := l.Options.Lint(ctx, astutil.NewCurrentFile(file), parse.ValidatorFor(path))

	logger.DebugContext(ctx, "Linted file", slog.String("path", path), slog.Int("findings", len(findings)))

	return Result{Path: path, File: file, Findings: findings}
}
