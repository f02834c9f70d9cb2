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
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/vuesanitizer/internal/batch"
)

const checkLongDescription = `Check the frontend sources in the given files and directories
(default: the current directory).

Directories are walked recursively, skipping node_modules, dist, vendor and
hidden directories. Supported files are .js, .mjs, .cjs, .jsx, .ts, .tsx and .vue.`

func (a *app) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check frontend sources",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			return a.check(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.IntP("parallel", "p", 0, "number of files checked in parallel (default number of CPUs)")
	flags.Bool("fix", false, "apply suggested fixes")
	flags.StringP("format", "f", defaultFormat, "output format: text, json, yaml or table")
	flags.Bool("generated", false, "check generated files")
	a.bindFlag(flags, "parallel", parallelKey)
	a.bindFlag(flags, "fix", fixKey)
	a.bindFlag(flags, "format", formatKey)
	a.bindFlag(flags, "generated", generatedKey)

	return cmd
}

func (a *app) check(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, closer := newLogger(a.v, a.stderr)
	defer closer.Close()

	s, err := loadSettings(a.v)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "Starting check", slog.Any("settings", s), slog.Any("paths", args))

	paths, err := batch.Discover(args)
	if err != nil {
		return err
	}

	l := batch.Linter{Options: s.Options, Parallel: s.Parallel, Logger: logger}

	fset := token.NewFileSet()

	results, err := l.Lint(ctx, fset, paths)
	if err != nil {
		return err
	}

	if s.Fix {
		fixed, err := applyFixes(logger, results)
		if err != nil {
			return err
		}

		if fixed > 0 {
			// report what is left
			fset = token.NewFileSet()
			if results, err = l.Lint(ctx, fset, paths); err != nil {
				return err
			}
		}

		fmt.Fprintf(a.stderr, "Applied %d fixes\n", fixed)
	}

	sum := summarize(fset, results, s.Severities)
	if err := sum.write(a.stdout, s.Format); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Check done",
		slog.Int("files", len(paths)), slog.Int("findings", len(sum.Findings)), slog.Int("failures", len(sum.Failures)))

	if sum.failed() {
		return ErrFailed
	}

	return nil
}

func applyFixes(logger *slog.Logger, results []batch.Result) (int, error) {
	total := 0

	for _, r := range results {
		n, err := r.WriteFixes()
		if err != nil {
			return total, fmt.Errorf("can't fix %s: %w", r.Path, err)
		}

		if n > 0 {
			logger.Debug("Fixed file", slog.String("path", r.Path), slog.Int("fixes", n))
		}

		total += n
	}

	return total, nil
}
