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

import "fillmore-labs.com/vuesanitizer/jsast"

// PropShape describes how a prop declares its type.
type PropShape uint8

const (
	// Described is a descriptor object with a type.
	Described PropShape = iota
	// Bare is a constructor or an array of constructors without descriptor.
	Bare
	// Empty is an empty descriptor object.
	Empty
	// Untyped is a descriptor object without type.
	Untyped
	// Unknown is any other value, for example a variable holding a descriptor.
	Unknown
)

// PropDescriptor lists the facets a prop descriptor declares.
type PropDescriptor struct {
	Type                         *jsast.Property
	Default, Required, Validator bool
}

// ComplexType reports whether the declared type is Object or Array, alone or in a type list.
func (d PropDescriptor) ComplexType() bool {
	if d.Type == nil {
		return false
	}

	switch t := d.Type.Value.(type) {
	case *jsast.Ident:
		return complexConstructor(t)

	case *jsast.ArrayExpr:
		for _, el := range t.Elements {
			if id, ok := el.(*jsast.Ident); ok && complexConstructor(id) {
				return true
			}
		}
	}

	return false
}

func complexConstructor(id *jsast.Ident) bool {
	return id.Name == "Object" || id.Name == "Array"
}

// ComponentProps returns the props object of a component definition:
// `export default { props: {…} }`, `defineComponent({ props: {…} })` or `defineProps({…})`.
func ComponentProps(n jsast.Node) *jsast.ObjectExpr {
	var options jsast.Node

	switch n := n.(type) {
	case *jsast.ExportDecl:
		if !n.Default {
			return nil
		}

		options = n.Declaration

	case *jsast.CallExpr:
		if len(n.Args) == 0 {
			return nil
		}

		switch jsast.CalleeName(n) {
		case "defineProps":
			obj, _ := n.Args[0].(*jsast.ObjectExpr)

			return obj

		case "defineComponent":
			options = n.Args[0]

		default:
			return nil
		}

	default:
		return nil
	}

	obj, ok := options.(*jsast.ObjectExpr)
	if !ok {
		return nil
	}

	props, _ := PropertyValue(obj, "props").(*jsast.ObjectExpr)

	return props
}

// ShapeOf classifies the value of a prop declaration.
func ShapeOf(value jsast.Node) PropShape {
	switch v := value.(type) {
	case *jsast.Ident:
		return Bare

	case *jsast.ArrayExpr:
		if len(v.Elements) == 0 {
			return Unknown
		}

		for _, el := range v.Elements {
			if _, ok := el.(*jsast.Ident); !ok {
				return Unknown
			}
		}

		return Bare

	case *jsast.ObjectExpr:
		switch {
		case len(v.Properties) == 0:
			return Empty

		case jsast.FindProperty(v, "type") == nil:
			return Untyped

		default:
			return Described
		}

	default:
		return Unknown
	}
}

// DescriptorOf lists the facets of a prop descriptor object.
func DescriptorOf(obj *jsast.ObjectExpr) PropDescriptor {
	return PropDescriptor{
		Type:      jsast.FindProperty(obj, "type"),
		Default:   jsast.FindProperty(obj, "default") != nil,
		Required:  jsast.FindProperty(obj, "required") != nil,
		Validator: jsast.FindProperty(obj, "validator") != nil,
	}
}

// PropertyValue returns the value of the property named name, or nil.
func PropertyValue(obj *jsast.ObjectExpr, name string) jsast.Node {
	if p := jsast.FindProperty(obj, name); p != nil {
		return p.Value
	}

	return nil
}

// Properties returns the properties of an object literal, skipping spreads.
func Properties(obj *jsast.ObjectExpr) []*jsast.Property {
	if obj == nil {
		return nil
	}

	props := make([]*jsast.Property, 0, len(obj.Properties))
	for _, n := range obj.Properties {
		if p, ok := n.(*jsast.Property); ok {
			props = append(props, p)
		}
	}

	return props
}
