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

package jsast

// KeyName returns the static name of a property key: an identifier or a
// string literal. Computed keys and other expressions have no name.
func KeyName(p *Property) string {
	if p == nil || p.Computed {
		return ""
	}

	switch k := p.Key.(type) {
	case *Ident:
		return k.Name

	case *Literal:
		if k.Kind == String {
			return Unquote(k.Raw)
		}

		return ""
	}

	return ""
}

// PropertyName returns the name of a non-computed member property.
func PropertyName(m *MemberExpr) string {
	if m == nil || m.Computed {
		return ""
	}

	if id, ok := m.Property.(*Ident); ok {
		return id.Name
	}

	return ""
}

// CalleeName returns the callee identifier name of a call, or the empty string.
func CalleeName(call *CallExpr) string {
	if call == nil {
		return ""
	}

	if id, ok := call.Callee.(*Ident); ok {
		return id.Name
	}

	return ""
}

// FindProperty returns the first property named name in an object literal.
func FindProperty(obj *ObjectExpr, name string) *Property {
	if obj == nil {
		return nil
	}

	for _, n := range obj.Properties {
		if p, ok := n.(*Property); ok && KeyName(p) == name {
			return p
		}
	}

	return nil
}

// Unquote strips matching single, double or back quotes.
func Unquote(raw string) string {
	if len(raw) >= 2 {
		if q := raw[0]; (q == '"' || q == '\'' || q == '`') && raw[len(raw)-1] == q {
			return raw[1 : len(raw)-1]
		}
	}

	return raw
}
