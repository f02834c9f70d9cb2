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
	"fillmore-labs.com/vuesanitizer/internal/classify"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/jsast"
)

func (w *walker) componentProps(n jsast.Node) {
	if !w.enabled(config.PropValidation) {
		return
	}

	props := classify.ComponentProps(n)
	if props == nil {
		return
	}

	for _, p := range classify.Properties(props) {
		w.prop(p)
	}
}

// prop checks one prop declaration, reporting each missing facet.
func (w *walker) prop(p *jsast.Property) {
	name := jsast.KeyName(p)
	if name == "" {
		name = w.file.Text(p.Key)
	}

	missingType := func(shape string) finding.Finding {
		return finding.At(config.PropValidation, finding.MissingType, p).
			With("prop", name).
			With("shape", shape)
	}

	switch classify.ShapeOf(p.Value) {
	case classify.Bare:
		f := missingType("bare")
		if !p.Shorthand {
			f = f.WithEdit(w.rewrite.WrapDescriptor(p.Value))
		}

		w.report(f)

	case classify.Empty:
		w.report(missingType("empty"))

	case classify.Untyped:
		w.report(missingType("untyped"))

	case classify.Described:
		d := classify.DescriptorOf(p.Value.(*jsast.ObjectExpr))

		if !d.Default && !d.Required {
			w.report(finding.At(config.PropValidation, finding.MissingRequired, p).With("prop", name))
		}

		if d.ComplexType() && !d.Validator {
			w.report(finding.At(config.PropValidation, finding.MissingValidator, p).With("prop", name))
		}
	}
}
