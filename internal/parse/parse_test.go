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

package parse_test

import (
	"errors"
	"go/token"
	"testing"

	"fillmore-labs.com/vuesanitizer/jsast"
	. "fillmore-labs.com/vuesanitizer/internal/parse"
)

func parseSource(t *testing.T, filename, src string) *jsast.File {
	t.Helper()

	f, err := ParseFile(t.Context(), token.NewFileSet(), filename, []byte(src))
	if err != nil {
		t.Fatalf("Can't parse %s: %v", filename, err)
	}

	if len(f.Programs) == 0 {
		t.Fatalf("No programs in %s", filename)
	}

	return f
}

func firstExpr(t *testing.T, f *jsast.File) jsast.Node {
	t.Helper()

	body := f.Programs[0].Body
	if len(body) == 0 {
		t.Fatal("Empty program")
	}

	stmt, ok := body[0].(*jsast.ExprStmt)
	if !ok {
		t.Fatalf("Got statement %T, want *jsast.ExprStmt", body[0])
	}

	return stmt.X
}

func TestWatchCall(t *testing.T) {
	t.Parallel()

	f := parseSource(t, "effect.js", `watch([a], () => { console.log(b.c) })`)

	call, ok := firstExpr(t, f).(*jsast.CallExpr)
	if !ok {
		t.Fatalf("Got %T, want *jsast.CallExpr", firstExpr(t, f))
	}

	if got := jsast.CalleeName(call); got != "watch" {
		t.Errorf("Got callee %q, want %q", got, "watch")
	}

	if len(call.Args) != 2 {
		t.Fatalf("Got %d arguments, want 2", len(call.Args))
	}

	if arr, ok := call.Args[0].(*jsast.ArrayExpr); !ok || len(arr.Elements) != 1 {
		t.Errorf("Got dependency argument %#v, want one element array", call.Args[0])
	}

	fn, ok := call.Args[1].(*jsast.FuncLit)
	if !ok || !fn.Arrow {
		t.Fatalf("Got callback %T, want arrow function", call.Args[1])
	}

	if _, ok := fn.Body.(*jsast.BlockStmt); !ok {
		t.Errorf("Got callback body %T, want *jsast.BlockStmt", fn.Body)
	}

	if got, want := f.Text(call.Args[0]), "[a]"; got != want {
		t.Errorf("Got text %q, want %q", got, want)
	}
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		check func(jsast.Node) bool
	}{
		{"optional member", `a?.b`, func(n jsast.Node) bool {
			m, ok := n.(*jsast.MemberExpr)

			return ok && m.Optional && !m.Computed
		}},
		{"computed member", `a[b]`, func(n jsast.Node) bool {
			m, ok := n.(*jsast.MemberExpr)

			return ok && m.Computed && !m.Optional
		}},
		{"logical", `a && b`, func(n jsast.Node) bool {
			l, ok := n.(*jsast.LogicalExpr)

			return ok && l.Op == "&&"
		}},
		{"nullish", `a ?? b`, func(n jsast.Node) bool {
			l, ok := n.(*jsast.LogicalExpr)

			return ok && l.Op == "??"
		}},
		{"binary", `a + b`, func(n jsast.Node) bool {
			b, ok := n.(*jsast.BinaryExpr)

			return ok && b.Op == "+"
		}},
		{"ternary", `a.b ? c : d`, func(n jsast.Node) bool {
			c, ok := n.(*jsast.CondExpr)
			if !ok {
				return false
			}
			_, ok = c.Test.(*jsast.MemberExpr)

			return ok
		}},
		{"parenthesized", `(a)`, func(n jsast.Node) bool {
			_, ok := n.(*jsast.Ident)

			return ok
		}},
		{"assignment", `this.state.count = 1`, func(n jsast.Node) bool {
			a, ok := n.(*jsast.AssignExpr)

			return ok && a.Op == "="
		}},
		{"new", `new Vuex.Store({})`, func(n jsast.Node) bool {
			ne, ok := n.(*jsast.NewExpr)

			return ok && len(ne.Args) == 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parseSource(t, "expr.js", tt.src)
			if n := firstExpr(t, f); !tt.check(n) {
				t.Errorf("Unexpected conversion of %q: %#v", tt.src, n)
			}
		})
	}
}

func TestObjectLiteral(t *testing.T) {
	t.Parallel()

	f := parseSource(t, "obj.js", `x = { a, b: 1, [c]: 2, d() {}, ...e }`)

	assign, ok := firstExpr(t, f).(*jsast.AssignExpr)
	if !ok {
		t.Fatalf("Got %T, want *jsast.AssignExpr", firstExpr(t, f))
	}

	obj, ok := assign.Right.(*jsast.ObjectExpr)
	if !ok {
		t.Fatalf("Got %T, want *jsast.ObjectExpr", assign.Right)
	}

	if len(obj.Properties) != 5 {
		t.Fatalf("Got %d properties, want 5", len(obj.Properties))
	}

	if p, ok := obj.Properties[0].(*jsast.Property); !ok || !p.Shorthand {
		t.Errorf("Got %#v, want shorthand property", obj.Properties[0])
	}

	if p, ok := obj.Properties[2].(*jsast.Property); !ok || !p.Computed {
		t.Errorf("Got %#v, want computed property", obj.Properties[2])
	}

	if p, ok := obj.Properties[3].(*jsast.Property); !ok || !p.Method || jsast.KeyName(p) != "d" {
		t.Errorf("Got %#v, want method d", obj.Properties[3])
	}

	if _, ok := obj.Properties[4].(*jsast.SpreadElement); !ok {
		t.Errorf("Got %T, want *jsast.SpreadElement", obj.Properties[4])
	}
}

func TestTypeScript(t *testing.T) {
	t.Parallel()

	f := parseSource(t, "store.ts", `const s = defineStore('main', { state: (): State => ({ n: 1 }) })`)

	decl, ok := f.Programs[0].Body[0].(*jsast.VarDecl)
	if !ok || decl.Kind != "const" || len(decl.Decls) != 1 {
		t.Fatalf("Got %#v, want const declaration", f.Programs[0].Body[0])
	}

	call, ok := decl.Decls[0].Init.(*jsast.CallExpr)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("Got %#v, want defineStore call", decl.Decls[0].Init)
	}

	state := jsast.FindProperty(call.Args[1].(*jsast.ObjectExpr), "state")
	if state == nil {
		t.Fatal("No state property")
	}

	fn, ok := state.Value.(*jsast.FuncLit)
	if !ok {
		t.Fatalf("Got %T, want *jsast.FuncLit", state.Value)
	}

	if fn.ReturnType == nil {
		t.Error("Missing return type")
	}

	if _, ok := fn.Body.(*jsast.ObjectExpr); !ok {
		t.Errorf("Got arrow body %T, want *jsast.ObjectExpr", fn.Body)
	}
}

func TestComponent(t *testing.T) {
	t.Parallel()

	const src = `<template>
  <div>{{ count }}</div>
</template>

<script setup lang="ts">
// setup block
const count = ref()
</script>
`

	f := parseSource(t, "Counter.vue", src)

	decl, ok := f.Programs[0].Body[0].(*jsast.VarDecl)
	if !ok {
		t.Fatalf("Got %T, want *jsast.VarDecl", f.Programs[0].Body[0])
	}

	if got, want := f.Text(decl.Decls[0].Init), "ref()"; got != want {
		t.Errorf("Got text %q, want %q", got, want)
	}

	if got, want := f.Line(decl.Pos()), 7; got != want {
		t.Errorf("Got line %d, want %d", got, want)
	}

	if len(f.Comments) != 1 || f.Comments[0].Text != "// setup block" {
		t.Errorf("Got comments %#v, want one setup comment", f.Comments)
	}
}

func TestComponentBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		texts []string
	}{
		{"commented out", `<template>
  <!-- <script>watch([a], () => b)</script> -->
  <div />
</template>
<script setup>
const n = 1
</script>
`, []string{"const n = 1"}},
		{"nested in template", `<template>
  <template v-if="ok"><script>x()</script></template>
  <br>
</template>
<script>y()</script>
`, []string{"y()"}},
		{"two blocks", `<script>a()</script>
<script setup lang="TS">b()</script>
<style>.c { d: e }</style>
`, []string{"a()", "b()"}},
		{"empty", `<template><p>{{ a < b }}</p></template><script></script>`, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f, err := ParseFile(t.Context(), token.NewFileSet(), "C.vue", []byte(tc.src))
			if err != nil {
				t.Fatalf("Can't parse: %v", err)
			}

			if got, want := len(f.Programs), len(tc.texts); got != want {
				t.Fatalf("Got %d programs, want %d", got, want)
			}

			for i, p := range f.Programs {
				if len(p.Body) == 0 {
					t.Fatalf("Empty program %d", i)
				}

				if got, want := f.Text(p.Body[0]), tc.texts[i]; got != want {
					t.Errorf("Got program %d text %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestJSX(t *testing.T) {
	t.Parallel()

	f := parseSource(t, "list.jsx", `x = <ul><li v-for="i in items">{i}</li></ul>`)

	assign := firstExpr(t, f).(*jsast.AssignExpr)

	ul, ok := assign.Right.(*jsast.JSXElement)
	if !ok {
		t.Fatalf("Got %T, want *jsast.JSXElement", assign.Right)
	}

	if len(ul.Children) != 1 {
		t.Fatalf("Got %d children, want 1", len(ul.Children))
	}

	li, ok := ul.Children[0].(*jsast.JSXElement)
	if !ok || li.Name != "li" {
		t.Fatalf("Got %#v, want li element", ul.Children[0])
	}

	if len(li.Attrs) != 1 || li.Attrs[0].Name != "v-for" {
		t.Errorf("Got attributes %#v, want v-for", li.Attrs)
	}
}

func TestUnsupported(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(t.Context(), token.NewFileSet(), "style.css", []byte("a {}"))
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Got error %v, want %v", err, ErrUnsupportedLanguage)
	}
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	f := parseSource(t, "broken.js", "const = ;")
	if !f.HasErrors {
		t.Error("Expected HasErrors")
	}
}

func TestValidExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"user.address?.city", true},
		{"{ type: String }", true},
		{"[a, b]", true},
		{"item", true},
		{"a), (b", false},
		{"a) + (b", false},
		{"{ type: ", false},
		{"", false},
	}

	v := ValidatorFor("x.js")

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			if got := v.ValidExpression(tt.text); got != tt.want {
				t.Errorf("Got ValidExpression(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
