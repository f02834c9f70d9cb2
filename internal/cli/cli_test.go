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

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	. "fillmore-labs.com/vuesanitizer/internal/cli"
)

const source = "const a = ref()\n"

type output struct {
	Findings []struct {
		File     string `json:"file"     yaml:"file"`
		Line     int    `json:"line"     yaml:"line"`
		Column   int    `json:"column"   yaml:"column"`
		Rule     string `json:"rule"     yaml:"rule"`
		Severity string `json:"severity" yaml:"severity"`
		Fixable  bool   `json:"fixable"  yaml:"fixable"`
	} `json:"findings" yaml:"findings"`
	Failures []struct {
		File string `json:"file" yaml:"file"`
	} `json:"failures" yaml:"failures"`
}

func project(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(t.Context(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestCheckText(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"src/a.js": source, "node_modules/x/b.js": source})

	code, stdout, _ := execute(t, "check", dir)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, filepath.Join(dir, "src", "a.js")+":1:11: warn: ")
	assert.Contains(t, stdout, "(reactive-refs)")
	assert.NotContains(t, stdout, "node_modules")
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
}

func TestCheckFormats(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"a.js": source, "b.ts": "watchEffect(() => n)\n"})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := execute(t, "check", "--format", "json", dir)
		require.Equal(t, 0, code)
		assert.True(t, strings.HasPrefix(stdout, "{\n  \"findings\": [\n"), "Got unindented output %q", stdout)

		var out output
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		require.Len(t, out.Findings, 2)
		assert.Empty(t, out.Failures)

		assert.Equal(t, "reactive-refs", out.Findings[0].Rule)
		assert.Equal(t, 1, out.Findings[0].Line)
		assert.Equal(t, 11, out.Findings[0].Column)
		assert.True(t, out.Findings[0].Fixable)
		assert.Equal(t, "effect-deps", out.Findings[1].Rule)
		assert.False(t, out.Findings[1].Fixable)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := execute(t, "check", "-f", "yaml", dir)
		require.Equal(t, 0, code)

		var out output
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
		require.Len(t, out.Findings, 2)
		assert.Equal(t, "warn", out.Findings[1].Severity)
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := execute(t, "check", "--format=table", dir)
		require.Equal(t, 0, code)

		assert.Contains(t, stdout, "LOCATION")
		assert.Contains(t, stdout, "effect-deps")
		assert.Contains(t, stdout, "FINDINGS 2")
	})
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	const config = `rules:
  reactive-refs: error
  effect-deps: off
thresholds:
  complexity: 0
`

	dir := project(t, map[string]string{"a.js": source, "b.js": "watchEffect(() => n)\n", "config.yaml": config})

	code, stdout, _ := execute(t, "check", "--config", filepath.Join(dir, "config.yaml"), dir)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, ": error: ")
	assert.NotContains(t, stdout, "effect-deps")
}

func TestCheckEnvironment(t *testing.T) {
	t.Setenv("VUESANITIZER_RULES_REACTIVE_REFS", "off")

	dir := project(t, map[string]string{"a.js": source})

	code, stdout, _ := execute(t, "check", dir)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestCheckFix(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"a.js": source})

	code, stdout, stderr := execute(t, "check", "--fix", dir)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Applied 1 fixes")

	fixed, err := os.ReadFile(filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "const a = ref(undefined)\n", string(fixed))
}

func TestCheckLogFile(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"a.js": source})
	logFile := filepath.Join(t.TempDir(), "check.log")

	code, _, stderr := execute(t, "check", "--verbose", "--log-file", logFile, dir)
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Linted file")
	assert.Contains(t, string(content), "Check done")
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"a.js": source})

	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"check", "--format", "xml", dir}},
		{"missing path", []string{"check", filepath.Join(dir, "missing")}},
		{"missing config", []string{"check", "--config", filepath.Join(dir, "missing.yaml"), dir}},
		{"unknown flag", []string{"check", "--unknown", dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := execute(t, tt.args...)

			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "rules")
	require.Equal(t, 0, code)

	for _, rule := range []string{
		"effect-deps", "reactive-refs", "conditional-rendering", "prop-validation",
		"vuex-store-structure", "vuex-helpers-usage", "pinia-store-usage",
	} {
		assert.Contains(t, stdout, rule)
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "VUESANITIZER_")
	assert.Contains(t, stdout, "check")
}
