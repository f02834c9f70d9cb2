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

package config_test

import (
	"testing"

	. "fillmore-labs.com/vuesanitizer/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated)

	if !b.Enabled(IncludeGenerated) {
		t.Error("Expected IncludeGenerated enabled")
	}

	b.Set(SuggestFixes, true)
	b.Set(IncludeGenerated, false)

	if b.Enabled(IncludeGenerated) || !b.Enabled(SuggestFixes) {
		t.Errorf("Got %+v, want only SuggestFixes", b)
	}

	b.Disable(SuggestFixes)

	if !b.Empty() {
		t.Errorf("Got %+v, want empty", b)
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	var n int
	for r := range AllRules() {
		n++

		if !rules.Enabled(r.Flag()) {
			t.Errorf("Rule %s not enabled by default", r)
		}

		got, ok := ParseRule(r.String())
		if !ok || got != r {
			t.Errorf("Got ParseRule(%q) = %v, %v, want %v", r.String(), got, ok, r)
		}
	}

	if n != 7 {
		t.Errorf("Got %d rules, want 7", n)
	}

	if _, ok := ParseRule("no-such-rule"); ok {
		t.Error("Expected unknown rule")
	}

	if got, want := PiniaStoreUsage.String(), "pinia-store-usage"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestDefaultThresholds(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()

	if th.Complexity != 3 || th.LargeStore != 10 || th.MapperProximity != 2 {
		t.Errorf("Got thresholds %+v", th)
	}

	for _, tt := range []struct {
		name string
		want bool
	}{
		{"increment", true},
		{"INCREMENT", false},
		{"SetCount", false},
	} {
		if got := th.MutationName.MatchString(tt.name); got != tt.want {
			t.Errorf("Got MutationName.MatchString(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
