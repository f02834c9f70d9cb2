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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/vuesanitizer/internal/astutil"
	"fillmore-labs.com/vuesanitizer/internal/parse"
	"fillmore-labs.com/vuesanitizer/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the vuesanitizer analyzer's pipeline on the frontend sources
// embedded into the package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("vuesanitizer: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "VueSanitizer")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	var files []*ast.File
	for f := range in.Root().Children() {
		if file, ok := f.Node().(*ast.File); ok {
			files = append(files, file)
		}
	}

	sources, err := embeddedSources(p.Fset, files)
	if err != nil && len(files) > 0 {
		astutil.InternalError(p, files[0].Package, "Can't resolve embedded files: %v", err)
	}

	for _, src := range sources {
		content, err := os.ReadFile(src.path)
		if err != nil {
			astutil.InternalError(p, src.directive, "Can't read %s: %v", src.path, err)

			continue
		}

		file, err := parse.ParseFile(ctx, p.Fset, src.path, content)
		if err != nil {
			astutil.InternalError(p, src.directive, "Can't parse %s: %v", src.path, err)

			continue
		}

		findings := o.Lint(ctx, astutil.NewCurrentFile(file), parse.ValidatorFor(src.path))

		// Generate diagnostics with suggested fixes
		report.Diagnostics(ctx, p, findings)
	}

	return nil, nil
}
