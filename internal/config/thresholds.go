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

package config

import "regexp"

// Thresholds holds the heuristic cutoffs of the rules.
type Thresholds struct {
	// Complexity is the highest condition weight that is not reported.
	Complexity int

	// LargeStore is the highest number of state properties of a store without modules.
	LargeStore int

	// MapperProximity is the maximum line distance of two mergeable mapping helper calls.
	MapperProximity int

	// MutationName matches mutation names that should be constants.
	MutationName *regexp.Regexp
}

// DefaultMutationName is the default pattern of [Thresholds.MutationName].
const DefaultMutationName = `^[a-z]`

// DefaultThresholds returns the default [Thresholds].
func DefaultThresholds() Thresholds {
	return Thresholds{
		Complexity:      3,
		LargeStore:      10,
		MapperProximity: 2,
		MutationName:    regexp.MustCompile(DefaultMutationName),
	}
}
