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

package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/vuesanitizer/internal/parse"
)

// skipped are directory names never descended into.
var skipped = []string{"node_modules", "dist", "vendor"}

// Discover returns the supported source files below roots, sorted and
// without duplicates. A root naming a file is taken as is when supported.
func Discover(roots []string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if parse.Supported(root) {
				paths = append(paths, filepath.Clean(root))
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if parse.Supported(path) && !strings.HasSuffix(path, ".d.ts") {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(paths)

	return slices.Compact(paths), nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipped, name)
}
