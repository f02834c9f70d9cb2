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

package cli

import (
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/vuesanitizer/analyzer/level"
	"fillmore-labs.com/vuesanitizer/internal/batch"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/report"
)

// format selects the output encoding of findings.
type format uint8

const (
	formatText format = iota
	formatJSON
	formatYAML
	formatTable
)

var formatNames = [...]string{"text", "json", "yaml", "table"}

// String implements [fmt.Stringer].
func (f format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return "format(" + strconv.Itoa(int(f)) + ")"
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *format) UnmarshalText(text []byte) error {
	for i, name := range formatNames {
		if strings.EqualFold(name, string(text)) {
			*f = format(i)

			return nil
		}
	}

	return fmt.Errorf("unknown format %q, want one of %s", string(text), strings.Join(formatNames[:], ", "))
}

// record is one finding as printed.
type record struct {
	File     string `json:"file"     yaml:"file"`
	Line     int    `json:"line"     yaml:"line"`
	Column   int    `json:"column"   yaml:"column"`
	Rule     string `json:"rule"     yaml:"rule"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message"  yaml:"message"`
	Fixable  bool   `json:"fixable"  yaml:"fixable"`
}

// failure is a file that could not be checked.
type failure struct {
	File  string `json:"file"  yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// summary is the complete output of a check run.
type summary struct {
	Findings []record  `json:"findings" yaml:"findings"`
	Failures []failure `json:"failures" yaml:"failures"`
}

// summarize converts batch results into printable records.
func summarize(fset *token.FileSet, results []batch.Result, severities [config.NumRules]level.Severity) summary {
	s := summary{Findings: []record{}, Failures: []failure{}}

	for _, r := range results {
		if r.Err != nil {
			s.Failures = append(s.Failures, failure{File: r.Path, Error: r.Err.Error()})

			continue
		}

		for _, f := range r.Findings {
			pos := fset.Position(f.Pos)
			s.Findings = append(s.Findings, record{
				File:     pos.Filename,
				Line:     pos.Line,
				Column:   pos.Column,
				Rule:     f.Rule.String(),
				Severity: severities[f.Rule].String(),
				Message:  report.Message(f),
				Fixable:  f.Edit != nil,
			})
		}
	}

	return s
}

// failed reports whether any finding has error severity or any file failed.
func (s summary) failed() bool {
	if len(s.Failures) > 0 {
		return true
	}

	for _, r := range s.Findings {
		if r.Severity == level.SeverityError.String() {
			return true
		}
	}

	return false
}

// write prints s to w in format f.
func (s summary) write(w io.Writer, f format) error {
	switch f {
	case formatJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()

	case formatTable:
		return s.writeTable(w)

	default:
		return s.writeText(w)
	}
}

func (s summary) writeText(w io.Writer) error {
	for _, r := range s.Findings {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s (%s)\n", r.File, r.Line, r.Column, r.Severity, r.Message, r.Rule); err != nil {
			return err
		}
	}

	for _, f := range s.Failures {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.File, f.Error); err != nil {
			return err
		}
	}

	return nil
}

func (s summary) writeTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Location", "Severity", "Rule", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, r := range s.Findings {
		location := r.File + ":" + strconv.Itoa(r.Line) + ":" + strconv.Itoa(r.Column)
		table.Append([]string{location, r.Severity, r.Rule, r.Message})
	}

	for _, f := range s.Failures {
		table.Append([]string{f.File, "failed", "", f.Error})
	}

	table.SetFooter([]string{fmt.Sprintf("Findings %d", len(s.Findings)), "", "", fmt.Sprintf("Failures %d", len(s.Failures))})
	table.Render()

	return nil
}
