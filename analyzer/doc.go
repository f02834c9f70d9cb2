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

// Package analyzer implements the vuesanitizer static analysis pass.
//
// # Overview
//
// VueSanitizer checks Vue components, Vuex stores and Pinia stores that a Go
// package embeds with //go:embed. Every .js, .mjs, .cjs, .jsx, .ts, .tsx and
// .vue file matched by an embed pattern is parsed and checked by seven rules:
//
//   - effect-deps: free variables of watch, watchEffect and lifecycle callbacks
//     compared with their declared dependencies
//   - reactive-refs: ref and reactive wrappers
//   - conditional-rendering: unsafe property access in conditions, condition
//     complexity and list items without key
//   - prop-validation: component prop declarations
//   - vuex-store-structure: Vuex store definitions and state writes
//   - vuex-helpers-usage: Vuex mapping helpers
//   - pinia-store-usage: Pinia store definitions and access styles
//
// # Example
//
// Before:
//
//	watch([x], () => { console.log(x, y.z) })
//
// After applying vuesanitizer's suggested fix:
//
//	watch([x, y], () => { console.log(x, y.z) })
//
// # Suppression
//
// A "// nolint:vuesanitizer" comment on the reported line suppresses the finding.
package analyzer
