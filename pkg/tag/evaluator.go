// Copyright 2025 Tom Barlow
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

package tag

import (
	"fmt"
	"slices"

	"github.com/tombee/tagscope/pkg/errors"
)

// eval walks an expression tree and computes its result set. active is
// the chain of composite tag names currently being resolved, outermost
// first; it is how indirect self-references are caught before they can
// recurse forever.
func (s *Scope[T]) eval(n node, active []string) (Set[T], error) {
	switch n := n.(type) {
	case *tagRef:
		return s.resolve(n.name, active)
	case *binaryOp:
		left, err := s.eval(n.left, active)
		if err != nil {
			return nil, err
		}
		right, err := s.eval(n.right, active)
		if err != nil {
			return nil, err
		}
		switch n.op {
		case '&':
			return left.Intersect(right), nil
		case '|':
			return left.Union(right), nil
		case '-':
			return left.Difference(right), nil
		case '^':
			return left.SymmetricDifference(right), nil
		}
	}
	// The parser only produces the node kinds and operators above.
	panic(fmt.Sprintf("tag: unexpected expression node %T", n))
}

// resolve looks up a leaf tag reference and returns its member set.
// Composite definitions are re-parsed and evaluated against the same
// scope, never cached, so redefinitions of referenced tags take effect
// immediately.
func (s *Scope[T]) resolve(name string, active []string) (Set[T], error) {
	if name == DefaultTagName {
		return s.AllObjects(), nil
	}
	def, ok := s.defs[name]
	if !ok {
		return nil, &errors.UndefinedTagError{Name: name}
	}
	if !def.composite() {
		return def.members.Clone(), nil
	}
	if slices.Contains(active, name) {
		return nil, &errors.RecursionError{
			Name:  name,
			Chain: append(slices.Clone(active), name),
		}
	}
	root, err := parse(def.expr)
	if err != nil {
		return nil, err
	}
	return s.eval(root, append(active, name))
}
