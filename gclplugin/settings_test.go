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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	vuesanitizer "fillmore-labs.com/vuesanitizer/analyzer"
	. "fillmore-labs.com/vuesanitizer/gclplugin"
)

const allSettings = `{
	"effect-deps": true,
	"reactive-refs": true,
	"conditional-rendering": false,
	"prop-validation": true,
	"vuex-store-structure": true,
	"vuex-helpers-usage": false,
	"pinia-store-usage": true,
	"generated": false,
	"suggest-fixes": true,
	"complexity": 4,
	"large-store": 20,
	"mapper-proximity": 3,
	"mutation-name": "^[a-z]",
	"globals": ["google"],
	"effect-hooks": ["onMounted"]
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty pattern", `{"mutation-name": ""}`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			got, err := s.Options()
			if err != nil {
				t.Fatalf("Can't convert settings: %v", err)
			}

			if len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), vuesanitizer.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestInvalidPattern(t *testing.T) {
	t.Parallel()

	pattern := "("
	if _, err := (Settings{MutationName: &pattern}).Options(); err == nil {
		t.Error("Expected error for invalid mutation-name")
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"pinia-store-usage": false, "complexity": 5})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("Can't build analyzers: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "vuesanitizer" {
		t.Fatalf("Got analyzers %v, want vuesanitizer", analyzers)
	}

	flags := &analyzers[0].Flags
	for name, want := range map[string]string{"pinia-store-usage": "false", "complexity": "5", "generated": "true"} {
		if got := flags.Lookup(name).Value.String(); got != want {
			t.Errorf("Got flag %s = %q, want %q", name, got, want)
		}
	}
}
