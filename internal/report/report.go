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

// Package report turns findings into analysis diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/vuesanitizer/internal/finding"
)

// Diagnostics reports findings on p.
func Diagnostics(ctx context.Context, p *analysis.Pass, findings []finding.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		p.Report(Diagnostic(f))
	}
}

// Diagnostic converts a finding into an [analysis.Diagnostic] categorized
// by its rule, carrying the edit as suggested fix.
func Diagnostic(f finding.Finding) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Rule.String(),
		Message:  Message(f),
	}

	if f.Edit != nil {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   FixMessage(f),
			TextEdits: []analysis.TextEdit{{Pos: f.Edit.Pos, End: f.Edit.End, NewText: []byte(f.Edit.NewText)}},
		}}
	}

	return diagnostic
}
