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
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"fillmore-labs.com/vuesanitizer/internal/config"
)

var ruleDocs = [config.NumRules]string{
	config.EffectDeps:           "dependencies of watch, watchEffect and lifecycle callbacks",
	config.ReactiveRefs:         "initial values and nesting of ref and reactive",
	config.ConditionalRendering: "null safety and complexity of conditions, list keys",
	config.PropValidation:       "types, defaults and validators of component props",
	config.VuexStoreStructure:   "modules, mutation types, actions and state writes of Vuex stores",
	config.VuexHelpersUsage:     "namespaces and consistency of Vuex mapping helpers",
	config.PiniaStoreUsage:      "setup, typing, getters and access style of Pinia stores",
}

func (a *app) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules with their configured severity",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s, err := loadSettings(a.v)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(a.stdout)
			table.SetHeader([]string{"Rule", "Severity", "Checks"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetAutoWrapText(false)

			for r := range config.AllRules() {
				table.Append([]string{r.String(), s.Severities[r].String(), ruleDocs[r]})
			}

			table.Render()

			return nil
		},
	}
}
