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

// Package cli implements the stand-alone vuesanitizer command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrFailed is returned when a check finds errors or can't check a file.
var ErrFailed = errors.New("check failed")

const rootLongDescription = `vuesanitizer checks Vue components, Vuex stores and Pinia stores.

Configuration is read from ` + configFileName + ` in the current directory
and from ` + envPrefix + `_* environment variables, for example
` + envPrefix + `_RULES_PINIA_STORE_USAGE=off or ` + envPrefix + `_THRESHOLDS_COMPLEXITY=4.`

// app carries the state shared by the commands.
type app struct {
	v              *viper.Viper
	stdout, stderr io.Writer
	configFile     string
}

// NewRootCommand creates the vuesanitizer command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: newViper(), stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "vuesanitizer",
		Short:         "Semantic lint checks for Vue, Vuex and Pinia",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return readConfig(a.v, a.configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default "+configFileName+")")
	flags.BoolP("verbose", "v", false, "log at debug level")
	flags.String("log-file", "", "rotating log file (default stderr)")
	a.bindFlag(flags, "verbose", logVerboseKey)
	a.bindFlag(flags, "log-file", logFilenameKey)

	cmd.AddCommand(a.checkCommand(), a.rulesCommand())

	return cmd
}

// bindFlag wires a flag to a configuration key so config and environment values feed the flag.
func (a *app) bindFlag(flags *pflag.FlagSet, name, key string) {
	flag := flags.Lookup(name)
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))

		return
	}

	cobra.CheckErr(a.v.BindPFlag(key, flag))
}

// Execute runs the command line args and returns the process exit code:
// 0 on success, 1 when the check failed and 2 on usage or configuration errors.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return 0

	case errors.Is(err, ErrFailed):
		return 1

	default:
		fmt.Fprintln(stderr, "Error:", err)

		return 2
	}
}
