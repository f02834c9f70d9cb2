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

package finding

// MessageKind selects the message of a [Finding].
type MessageKind uint8

//go:generate go tool stringer -type MessageKind -linecomment
const (
	MissingDeps     MessageKind = iota // missingDeps
	UnnecessaryDeps                    // unnecessaryDeps

	MissingValue        // missingValue
	UnnecessaryRef      // unnecessaryRef
	PrimitiveInReactive // primitiveInReactive
	RefInReactive       // refInReactive

	UnsafeConditional // unsafeConditional
	ComplexCondition  // complexCondition
	MissingKey        // missingKey

	MissingType      // missingType
	MissingRequired  // missingRequired
	MissingValidator // missingValidator

	DirectStateChange   // directStateChange
	StoreMissingModules // missingNamespace
	MissingTypes        // missingTypes
	UnnecessaryActions  // unnecessaryActions

	MapperMissingNamespace // missingNamespace
	UnnecessaryArray       // unnecessaryArray
	InconsistentMappers    // inconsistentMappers
	RedundantMappers       // redundantMappers

	MissingTypeDefinition  // missingTypeDefinition
	UnnecessaryGetters     // unnecessaryGetters
	InconsistentStoreUsage // inconsistentStoreUsage
	MissingStoreSetup      // missingStoreSetup
)
