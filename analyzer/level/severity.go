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

package level

import (
	"fmt"
	"strings"
)

// Severity specifies how findings of a rule are treated.
type Severity uint8

const (
	// SeverityWarn reports findings without failing the run.
	SeverityWarn Severity = iota

	// SeverityError reports findings and fails the run.
	SeverityError

	// SeverityOff disables the rule.
	SeverityOff
)

// Enabled reports whether the rule runs at all.
func (s Severity) Enabled() bool {
	return s != SeverityOff
}

// String implements [fmt.Stringer].
func (s Severity) String() string {
	text, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("Severity(%d)", s)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityWarn:
		return []byte("warn"), nil

	case SeverityError:
		return []byte("error"), nil

	case SeverityOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "warn", "warning":
		*s = SeverityWarn

	case "error":
		*s = SeverityError

	case "off", "false":
		*s = SeverityOff

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}
