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

package run_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/vuesanitizer/internal/astutil"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/internal/parse"
	. "fillmore-labs.com/vuesanitizer/internal/run"
	"fillmore-labs.com/vuesanitizer/internal/testsource"
	"fillmore-labs.com/vuesanitizer/jsast"
)

func lint(t *testing.T, o *Options, filename, src string) (*jsast.File, []finding.Finding) {
	t.Helper()

	f := testsource.Parse(t, filename, src)

	return f, o.Lint(t.Context(), astutil.NewCurrentFile(f), parse.ValidatorFor(filename))
}

func only(rule config.Rule) *Options {
	o := DefaultOptions()
	o.Rules = config.NewBitMask(rule.Flag())

	return o
}

func kinds(findings []finding.Finding) []finding.MessageKind {
	ks := make([]finding.MessageKind, 0, len(findings))
	for _, f := range findings {
		ks = append(ks, f.Message)
	}

	return ks
}

func apply(t *testing.T, f *jsast.File, e *finding.Edit) string {
	t.Helper()

	if e == nil {
		t.Fatal("Expected edit")
	}

	from, to, ok := f.Offsets(e.Pos, e.End)
	if !ok {
		t.Fatalf("Edit %+v outside file", e)
	}

	return string(f.Src[:from]) + e.NewText + string(f.Src[to:])
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule config.Rule
		file string
		src  string
		want []finding.MessageKind
	}{
		{"watchEffect absent", config.EffectDeps, "a.js",
			`watchEffect(() => { console.log(count.value) })`,
			[]finding.MessageKind{finding.MissingDeps}},
		{"watchEffect suppressed", config.EffectDeps, "a.js",
			`watchEffect(() => { console.log(count.value) }, { flush: 'post' })`,
			[]finding.MessageKind{}},
		{"watch complete", config.EffectDeps, "a.js",
			`watch([count], (value) => { console.log(count.value, value) })`,
			[]finding.MessageKind{}},
		{"watch missing and unnecessary", config.EffectDeps, "a.js",
			`watch([a, b], () => c)`,
			[]finding.MessageKind{finding.MissingDeps, finding.UnnecessaryDeps}},
		{"hook", config.EffectDeps, "a.js",
			`onMounted(() => { load(id) })`,
			[]finding.MessageKind{finding.MissingDeps}},
		{"hook without free variables", config.EffectDeps, "a.js",
			`onMounted(() => { console.log('ready') })`,
			[]finding.MessageKind{}},

		{"reactive refs", config.ReactiveRefs, "a.js", `
const a = ref()
const b = reactive()
const c = ref({ x: 1 })
const d = reactive(1)
const e = reactive({ x: ref(1), y: ref(z) })
const f = ref(0)
`, []finding.MessageKind{
			finding.MissingValue, finding.MissingValue, finding.UnnecessaryRef,
			finding.PrimitiveInReactive, finding.RefInReactive, finding.RefInReactive,
		}},

		{"conditional", config.ConditionalRendering, "a.jsx", `
const a = user.address ? user.address.city : ''
const b = this.visible ? 1 : 2
const c = items.length && items[0]
const d = a > 1 && b < 2 || c ? 1 : 2
const e = <ul>{list.map(i => <li v-for="i in list">{i}</li>)}</ul>
`, []finding.MessageKind{
			finding.UnsafeConditional, finding.UnsafeConditional, finding.UnsafeConditional,
			finding.ComplexCondition, finding.MissingKey,
		}},

		{"props", config.PropValidation, "a.js", `
export default {
  props: {
    a: String,
    b: {},
    c: { default: 1 },
    d: { type: Number },
    e: { type: Object, required: true },
    f: { type: Array, default: () => [], validator: v => v.length > 0 },
  },
}
`, []finding.MessageKind{
			finding.MissingType, finding.MissingType, finding.MissingType,
			finding.MissingRequired, finding.MissingValidator,
		}},

		{"vuex store", config.VuexStoreStructure, "store.js", `
export default createStore({
  state: { a: 1, b: 2, c: 3 },
  mutations: {
    increment(state) { state.count = state.count + 1 },
    [RESET](state) { state.count = 0 },
  },
  actions: {
    increment({ commit }) { commit('increment') },
    reset(ctx) { ctx.state.count = 0 },
  },
})
`, []finding.MessageKind{
			finding.MissingTypes, finding.UnnecessaryActions, finding.DirectStateChange,
		}},

		{"vuex helpers", config.VuexHelpersUsage, "a.js", `
export default {
  computed: {
    ...mapState(['count']),
    ...mapGetters('cart', ['total', 'items']),
  },
  methods: {
    ...mapActions({ add: cartModule.add }),
  },
  setup() { const store = useStore() },
}
`, []finding.MessageKind{
			finding.UnnecessaryArray, finding.MapperMissingNamespace,
			finding.InconsistentMappers, finding.RedundantMappers,
		}},

		{"pinia", config.PiniaStoreUsage, "store.ts", `
export const useCounter = defineStore('counter', {
  state: () => ({ count: 0 }),
  getters: {
    current: (state) => state.count,
    double: (state) => state.count * 2,
  },
  actions: {
    reset() { this.state.count = 0 },
  },
})

defineStore('loose', {})

function touch(store) { store.state.count = 1 }
`, []finding.MessageKind{
			finding.MissingTypeDefinition, finding.UnnecessaryGetters,
			finding.MissingStoreSetup, finding.DirectStateChange,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, findings := lint(t, only(tt.rule), tt.file, tt.src)

			if diff := cmp.Diff(tt.want, kinds(findings)); diff != "" {
				t.Errorf("Findings mismatch (-want +got):\n%s", diff)
			}

			for _, f := range findings {
				if f.Rule != tt.rule {
					t.Errorf("Got rule %v, want %v", f.Rule, tt.rule)
				}
			}
		})
	}
}

func TestMissingDependency(t *testing.T) {
	t.Parallel()

	const src = `watch([x], () => { console.log(x, y.z) })`

	f, findings := lint(t, only(config.EffectDeps), "a.js", src)
	if len(findings) != 1 {
		t.Fatalf("Got %d findings, want 1", len(findings))
	}

	got := findings[0]
	if got.Message != finding.MissingDeps || got.Data["deps"] != "y" {
		t.Errorf("Got %v %v, want missingDeps of y", got.Message, got.Data)
	}

	fixed := apply(t, f, got.Edit)
	if want := `watch([x, y], () => { console.log(x, y.z) })`; fixed != want {
		t.Errorf("Got fixed source %q, want %q", fixed, want)
	}

	// the fixed source reports nothing for the same call
	if _, again := lint(t, only(config.EffectDeps), "a.js", fixed); len(again) != 0 {
		t.Errorf("Got findings %v after fix, want none", kinds(again))
	}
}

func TestUnnecessaryDependency(t *testing.T) {
	t.Parallel()

	f, findings := lint(t, only(config.EffectDeps), "a.js", `watch([a, b], () => a)`)
	if len(findings) != 1 || findings[0].Message != finding.UnnecessaryDeps {
		t.Fatalf("Got %v, want one unnecessaryDeps", kinds(findings))
	}

	if got, want := apply(t, f, findings[0].Edit), `watch([a], () => a)`; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestCombinedDependencyEdit(t *testing.T) {
	t.Parallel()

	f, findings := lint(t, only(config.EffectDeps), "a.js", `watch([a, b], () => c)`)
	if len(findings) != 2 {
		t.Fatalf("Got %d findings, want 2", len(findings))
	}

	if got, want := apply(t, f, findings[0].Edit), `watch([c], () => c)`; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if findings[1].Edit != nil {
		t.Errorf("Got second edit %+v, want none", findings[1].Edit)
	}
}

func TestBareProp(t *testing.T) {
	t.Parallel()

	f, findings := lint(t, only(config.PropValidation), "a.js", `defineProps({ title: String })`)
	if len(findings) != 1 || findings[0].Message != finding.MissingType {
		t.Fatalf("Got %v, want one missingType", kinds(findings))
	}

	if got, want := apply(t, f, findings[0].Edit), `defineProps({ title: { type: String } })`; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestStateChangeOutsideContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule config.Rule
		src  string
		want int
	}{
		{"vuex outside", config.VuexStoreStructure, `target.state.count = 1`, 1},
		{"pinia outside", config.PiniaStoreUsage, `target.state.count = 1`, 1},
		{"vuex in mutation", config.VuexStoreStructure, `x = { mutations: { set(state) { state.count = 1 } } }`, 0},
		{"pinia in action", config.PiniaStoreUsage, `x = { actions: { set() { this.state.count = 1 } } }`, 0},
		{"vuex in action", config.VuexStoreStructure, `x = { actions: { set(ctx) { ctx.state.count = 1 } } }`, 1},
		{"string key", config.VuexStoreStructure, `x = { mutations: { 'set': function (state) { state.count = 1 } } }`, 0},
		{"computed key", config.VuexStoreStructure, `x = { mutations: { [SET](state) { state.count = 1 } } }`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, findings := lint(t, only(tt.rule), "a.js", tt.src)
			if len(findings) != tt.want {
				t.Fatalf("Got %v, want %d findings", kinds(findings), tt.want)
			}

			for _, f := range findings {
				if f.Message != finding.DirectStateChange || f.Edit != nil {
					t.Errorf("Got %v with edit %v, want directStateChange without edit", f.Message, f.Edit)
				}
			}
		})
	}
}

func TestUnsafeConditionalEdit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, src, want string
	}{
		{
			"nested chain",
			`const label = user.address.city ? user.address.city : 'none'`,
			`const label = user.address?.city ? user.address.city : 'none'`,
		},
		{
			"component member",
			`const b = this.visible ? 1 : 2`,
			`const b = this?.visible ? 1 : 2`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f, findings := lint(t, only(config.ConditionalRendering), "a.js", tc.src)
			if len(findings) != 1 {
				t.Fatalf("Got %v, want one finding", kinds(findings))
			}

			if got := apply(t, f, findings[0].Edit); got != tc.want {
				t.Errorf("Got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCollapseMapperArray(t *testing.T) {
	t.Parallel()

	f, findings := lint(t, only(config.VuexHelpersUsage), "a.js", `x = { ...mapState([item]) }`)
	if len(findings) != 1 || findings[0].Message != finding.UnnecessaryArray {
		t.Fatalf("Got %v, want one unnecessaryArray", kinds(findings))
	}

	if got, want := apply(t, f, findings[0].Edit), `x = { ...mapState(item) }`; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestInconsistentStoreUsage(t *testing.T) {
	t.Parallel()

	const src = `const cart = useCartStore()
export default {
  computed: {
    total() { return this.$store.state.total },
    items() { return this.$store.state.items },
  },
  methods: {
    load() { return useUserStore().load() },
  },
}
`

	f, findings := lint(t, only(config.PiniaStoreUsage), "a.js", src)
	if diff := cmp.Diff([]finding.MessageKind{finding.InconsistentStoreUsage}, kinds(findings)); diff != "" {
		t.Fatalf("Findings mismatch (-want +got):\n%s", diff)
	}

	if got := findings[0]; got.Pos != f.Start() || f.Line(got.Pos) != 1 {
		t.Errorf("Got anchor %v, want file start %v", got.Pos, f.Start())
	}
}

func TestHelperStyle(t *testing.T) {
	t.Parallel()

	const src = `const counter = mapState(useCounter, ['count'])
const store = useCounterStore()
x = counter.count
`

	_, findings := lint(t, only(config.PiniaStoreUsage), "a.js", src)
	if diff := cmp.Diff([]finding.MessageKind{finding.InconsistentStoreUsage}, kinds(findings)); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingValueEdit(t *testing.T) {
	t.Parallel()

	f, findings := lint(t, only(config.ReactiveRefs), "a.js", `const state = reactive()`)
	if len(findings) != 1 {
		t.Fatalf("Got %v, want one finding", kinds(findings))
	}

	if got, want := apply(t, f, findings[0].Edit), `const state = reactive({})`; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestThresholds(t *testing.T) {
	t.Parallel()

	o := only(config.VuexStoreStructure)
	o.Thresholds.LargeStore = 1
	o.Thresholds.MutationName = regexp.MustCompile(`^set`)

	const src = `createStore({
  state: { a: 1, b: 2 },
  mutations: { setA(state, v) {}, reset(state) {} },
})`

	_, findings := lint(t, o, "a.js", src)

	want := []finding.MessageKind{finding.StoreMissingModules, finding.MissingTypes}
	if diff := cmp.Diff(want, kinds(findings)); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}
}

func TestNoLint(t *testing.T) {
	t.Parallel()

	const src = `watchEffect(() => a) // nolint:vuesanitizer
watchEffect(() => b) /* nolint:all */
watchEffect(() => c) // nolint:other
`

	_, findings := lint(t, only(config.EffectDeps), "a.js", src)
	if len(findings) != 1 || findings[0].Data["deps"] != "c" {
		t.Errorf("Got %v, want one finding for c", findings)
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by bundler. DO NOT EDIT.
watchEffect(() => a)
`

	if _, findings := lint(t, only(config.EffectDeps), "a.js", src); len(findings) != 0 {
		t.Errorf("Got %v, want none in generated file", kinds(findings))
	}

	o := only(config.EffectDeps)
	o.Behavior.Enable(config.IncludeGenerated)

	if _, findings := lint(t, o, "a.js", src); len(findings) != 1 {
		t.Errorf("Got %v, want one finding", kinds(findings))
	}
}

func TestWithoutFixes(t *testing.T) {
	t.Parallel()

	o := only(config.ReactiveRefs)
	o.Behavior.Disable(config.SuggestFixes)

	_, findings := lint(t, o, "a.js", `const a = ref()`)
	if len(findings) != 1 || findings[0].Edit != nil {
		t.Errorf("Got %+v, want one finding without edit", findings)
	}
}

func TestDisabledRules(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Rules = config.Rules{}

	if _, findings := lint(t, o, "a.js", `watchEffect(() => a); const r = ref()`); len(findings) != 0 {
		t.Errorf("Got %v, want none", kinds(findings))
	}
}

func TestComponent(t *testing.T) {
	t.Parallel()

	const src = `<template>
  <div>{{ count }}</div>
</template>

<script setup lang="ts">
const count = ref()
watchEffect(() => console.log(count.value))
</script>
`

	f, findings := lint(t, DefaultOptions(), "Counter.vue", src)

	want := []finding.MessageKind{finding.MissingValue, finding.MissingDeps}
	if diff := cmp.Diff(want, kinds(findings)); diff != "" {
		t.Fatalf("Findings mismatch (-want +got):\n%s", diff)
	}

	if got := f.Line(findings[0].Pos); got != 6 {
		t.Errorf("Got line %d, want 6", got)
	}

	if got, want := apply(t, f, findings[0].Edit), "ref(undefined)"; !containsLine(got, "const count = "+want) {
		t.Errorf("Got %q, want line with %q", got, want)
	}
}

func containsLine(src, line string) bool {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(line) + `$`).MatchString(src)
}
