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

package freevars_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/vuesanitizer/internal/freevars"
	"fillmore-labs.com/vuesanitizer/internal/scope"
	"fillmore-labs.com/vuesanitizer/internal/testsource"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "member base only",
			src:  `watch(() => { console.log(x, y.z) })`,
			want: []string{"x", "y"},
		},
		{
			name: "computed member",
			src:  `watch(() => a[b].c)`,
			want: []string{"a", "b"},
		},
		{
			name: "parameters",
			src:  `watch((v, { w }) => v + w + u)`,
			want: []string{"u"},
		},
		{
			name: "local declarations",
			src:  `watch(() => { const a = b; let { c, d: [e] } = a; return c + e + f })`,
			want: []string{"b", "f"},
		},
		{
			name: "nested function shadows",
			src:  `watch(() => { items.forEach(item => total += item.price) })`,
			want: []string{"items", "total"},
		},
		{
			name: "sibling bindings do not leak",
			src:  `watch(() => { (function (a) { return a })(1); (b => a)(2) })`,
			want: []string{"a"},
		},
		{
			name: "hoisted var",
			src:  `watch(function () { if (c) { var v = 1 } return v })`,
			want: []string{"c"},
		},
		{
			name: "block scoped let",
			src:  `watch(() => { if (c) { let v = 1 } return v })`,
			want: []string{"c", "v"},
		},
		{
			name: "class expression name",
			src:  `watch(() => { const C = class K extends Base { m() { return K } }; return C })`,
			want: []string{"Base"},
		},
		{
			name: "catch parameter",
			src:  `watch(() => { try { run() } catch (err) { report(err) } })`,
			want: []string{"run", "report"},
		},
		{
			name: "for of binding",
			src:  `watch(() => { for (const item of list) use(item) })`,
			want: []string{"list", "use"},
		},
		{
			name: "for loop binding",
			src:  `watch(() => { for (let i = 0; i < n; i++) sum += i })`,
			want: []string{"n", "sum"},
		},
		{
			name: "object keys",
			src:  `watch(() => ({ key: value, short, [dyn]: 1 }))`,
			want: []string{"value", "short", "dyn"},
		},
		{
			name: "default values",
			src:  `watch((a = fallback) => a)`,
			want: []string{"fallback"},
		},
		{
			name: "globals",
			src:  `watch(() => { setTimeout(() => window.scrollTo(0, y), 10) })`,
			want: []string{"y"},
		},
		{
			name: "named function expression",
			src:  `watch(function loop(n) { return n ? loop(n - 1) : m })`,
			want: []string{"m"},
		},
		{
			name: "assignment target",
			src:  `watch(() => { count = count + 1 })`,
			want: []string{"count"},
		},
		{
			name: "empty",
			src:  `watch(() => {})`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.JS(t, tt.src)
			call := testsource.FirstCall(t, f, "watch")

			got := Extract(call.Args[0], scope.Globals())

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestExtractNil(t *testing.T) {
	t.Parallel()

	if got := Extract(nil, nil); got != nil {
		t.Errorf("Got %v, want nil", got)
	}
}

func TestExtractProgram(t *testing.T) {
	t.Parallel()

	f := testsource.JS(t, `import { ref } from 'vue'
const count = ref(0)
function inc() { count.value++ }
export default { setup() { return { count, inc, store } } }`)

	got := Extract(f.Programs[0], scope.Globals())

	if diff := cmp.Diff([]string{"store"}, got); diff != "" {
		t.Errorf("Program free variables mismatch (-want +got):\n%s", diff)
	}
}
