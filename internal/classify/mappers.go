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

package classify

import (
	"strings"

	"fillmore-labs.com/vuesanitizer/jsast"
)

// Mapper is the category of a Vuex mapping helper.
type Mapper uint8

const (
	NoMapper Mapper = iota
	MapState
	MapGetters
	MapMutations
	MapActions
)

// MapperOf returns the mapping helper category of call.
func MapperOf(call *jsast.CallExpr) Mapper {
	switch jsast.CalleeName(call) {
	case "mapState":
		return MapState

	case "mapGetters":
		return MapGetters

	case "mapMutations":
		return MapMutations

	case "mapActions":
		return MapActions

	default:
		return NoMapper
	}
}

// ObjectForm reports whether a mapping helper is called with an object as first argument.
func ObjectForm(call *jsast.CallExpr) bool {
	return isObject(call.Args, 0)
}

// SingleElementArray returns the last argument of call when it is an array
// literal with exactly one element.
func SingleElementArray(call *jsast.CallExpr) *jsast.ArrayExpr {
	if len(call.Args) == 0 {
		return nil
	}

	arr, ok := call.Args[len(call.Args)-1].(*jsast.ArrayExpr)
	if !ok || len(arr.Elements) != 1 {
		return nil
	}

	if _, spread := arr.Elements[0].(*jsast.SpreadElement); spread {
		return nil
	}

	return arr
}

// NamespaceHint reports whether an unresolved name suggests a namespaced module is in scope.
func NamespaceHint(name string) bool {
	return name == "namespace" || strings.Contains(name, "Module")
}
