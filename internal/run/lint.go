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
	"runtime/trace"

	"fillmore-labs.com/vuesanitizer/internal/astutil"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/internal/rewrite"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// Lint runs the enabled rules over one file and returns the findings in
// traversal order, followed by the file-level findings.
//
// Generated files are skipped unless enabled, findings on lines with a
// nolint comment are dropped and edits are removed when fixes are disabled.
func (o *Options) Lint(ctx context.Context, file astutil.CurrentFile, v rewrite.Validator) []finding.Finding {
	if !file.Valid() || file.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		return nil
	}

	defer trace.StartRegion(ctx, "Lint").End()

	w := newWalker(o, file.File(), v)
	for _, prog := range file.File().Programs {
		jsast.Walk(w, prog)
	}

	w.finish()

	fixes := o.Behavior.Enabled(config.SuggestFixes)

	findings := w.findings[:0]
	for _, f := range w.findings {
		if file.NoLintComment(f.Pos) {
			continue
		}

		if !fixes {
			f.Edit = nil
		}

		findings = append(findings, f)
	}

	return findings
}
