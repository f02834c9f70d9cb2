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

package run

import (
	"fillmore-labs.com/vuesanitizer/internal/aggregate"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/finding"
	"fillmore-labs.com/vuesanitizer/internal/freevars"
	"fillmore-labs.com/vuesanitizer/internal/rewrite"
	"fillmore-labs.com/vuesanitizer/internal/scope"
	"fillmore-labs.com/vuesanitizer/jsast"
)

// container is the kind of object literal an ancestor property belongs to.
type container uint8

const (
	noContainer container = iota
	mutationsContainer
	actionsContainer
	exportDefault
	numContainers
)

func containerKind(key string) container {
	switch key {
	case "mutations":
		return mutationsContainer

	case "actions":
		return actionsContainer

	default:
		return noContainer
	}
}

type frame struct {
	node jsast.Node
	kind container
}

// walker runs all enabled rules in one pre-order traversal of a file.
type walker struct {
	*Options
	file    *jsast.File
	rewrite rewrite.Synthesizer
	globals *scope.Bindings
	index   *scope.Index

	stack      []frame
	depth      [numContainers]int
	containers map[*jsast.ObjectExpr]container

	piniaStyles aggregate.Styles
	vuexStyles  aggregate.Styles
	mappers     aggregate.MapperCalls

	findings []finding.Finding
}

func newWalker(o *Options, f *jsast.File, v rewrite.Validator) *walker {
	w := &walker{
		Options:    o,
		file:       f,
		rewrite:    rewrite.New(f, v),
		globals:    scope.Globals(o.Globals...),
		containers: make(map[*jsast.ObjectExpr]container),
	}

	if w.enabled(config.VuexHelpersUsage) || w.enabled(config.PiniaStoreUsage) {
		var unresolved []string
		for _, prog := range f.Programs {
			unresolved = append(unresolved, freevars.Extract(prog, w.globals)...)
		}

		w.index = scope.NewIndex(f, unresolved)
	}

	return w
}

func (w *walker) enabled(r config.Rule) bool {
	return w.Rules.Enabled(r.Flag())
}

func (w *walker) report(f finding.Finding) {
	w.findings = append(w.findings, f)
}

// fileStart is the anchor of findings about the file as a whole.
func (w *walker) fileStart() jsast.Span {
	return jsast.Span{From: w.file.Start(), To: w.file.Start()}
}

// parent returns the parent of the node currently visited.
func (w *walker) parent() jsast.Node {
	if len(w.stack) == 0 {
		return nil
	}

	return w.stack[len(w.stack)-1].node
}

// inside reports whether the node currently visited is nested in a container.
func (w *walker) inside(kind container) bool {
	return w.depth[kind] > 0
}

// Visit implements [jsast.Visitor].
func (w *walker) Visit(n jsast.Node) jsast.Visitor {
	if n == nil {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.depth[top.kind]--

		return nil
	}

	w.visit(n)

	kind := w.containerOf(n)
	w.stack = append(w.stack, frame{node: n, kind: kind})
	w.depth[kind]++

	return w
}

// containerOf returns the container n opens for its descendants.
func (w *walker) containerOf(n jsast.Node) container {
	switch n := n.(type) {
	case *jsast.ExportDecl:
		if n.Default {
			return exportDefault
		}

	case *jsast.Property:
		if obj, ok := n.Value.(*jsast.ObjectExpr); ok {
			if kind := containerKind(jsast.KeyName(n)); kind != noContainer {
				w.containers[obj] = kind
			}
		}

		// a member of a mutations or actions object
		if obj, ok := w.parent().(*jsast.ObjectExpr); ok {
			return w.containers[obj]
		}
	}

	return noContainer
}

func (w *walker) visit(n jsast.Node) {
	switch n := n.(type) {
	case *jsast.CallExpr:
		w.effectDeps(n)
		w.reactiveRefs(n)
		w.componentProps(n)
		w.vuexStore(n)
		w.vuexHelpers(n)
		w.piniaCall(n)

	case *jsast.NewExpr:
		w.vuexStore(n)

	case *jsast.ExportDecl:
		w.componentProps(n)

	case *jsast.AssignExpr:
		w.vuexStateChange(n)
		w.piniaStateChange(n)

	case *jsast.CondExpr:
		w.conditional(n)

	case *jsast.LogicalExpr:
		w.logical(n)

	case *jsast.JSXElement:
		w.listKey(n)

	case *jsast.MemberExpr:
		w.piniaAccess(n)
	}
}

// finish runs the end-of-traversal checks.
func (w *walker) finish() {
	w.vuexHelpersFinish()
	w.piniaFinish()
}
