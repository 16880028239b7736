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
	"strings"
	"unicode"
)

// Tag is a handle to a tag in a Scope. Handles returned by Define and
// DefineExpr are named; handles produced by composition (Union,
// Intersect, ...) are anonymous and carry only the composed expression.
//
// A handle holds no objects itself. Objects always evaluates through
// the owning Scope, so redefinitions of this tag or of tags it
// references are visible without any invalidation step.
type Tag[T comparable] struct {
	scope *Scope[T]
	name  string
	expr  string
}

// Name returns the tag's name, or "" for an anonymous composite.
func (t *Tag[T]) Name() string {
	return t.name
}

// Expression returns the expression a composite tag evaluates, or ""
// for an extensional tag.
func (t *Tag[T]) Expression() string {
	if t.name == "" {
		return t.expr
	}
	if def, ok := t.scope.defs[t.name]; ok && def.composite() {
		return def.expr
	}
	return ""
}

// Objects evaluates the tag against its Scope and returns the matching
// objects in deterministic natural order.
func (t *Tag[T]) Objects() ([]T, error) {
	return t.scope.Evaluate(t.reference())
}

// ObjectsRaw evaluates the tag against its Scope and returns the
// matching objects as an unordered Set.
func (t *Tag[T]) ObjectsRaw() (Set[T], error) {
	return t.scope.EvaluateRaw(t.reference())
}

// Union composes a tag matching objects in either tag.
func (t *Tag[T]) Union(other *Tag[T]) *Tag[T] {
	return t.compose('|', other)
}

// Intersect composes a tag matching objects in both tags.
func (t *Tag[T]) Intersect(other *Tag[T]) *Tag[T] {
	return t.compose('&', other)
}

// Difference composes a tag matching objects in t but not in other.
func (t *Tag[T]) Difference(other *Tag[T]) *Tag[T] {
	return t.compose('-', other)
}

// SymmetricDifference composes a tag matching objects in exactly one of
// the two tags.
func (t *Tag[T]) SymmetricDifference(other *Tag[T]) *Tag[T] {
	return t.compose('^', other)
}

// compose builds an anonymous composite from two handles. Compound
// operands are parenthesised so that the single-precedence,
// left-associative grammar preserves the order the handles were
// combined in.
func (t *Tag[T]) compose(op byte, other *Tag[T]) *Tag[T] {
	return &Tag[T]{
		scope: t.scope,
		expr:  fmt.Sprintf("%s %c %s", t.operand(), op, other.operand()),
	}
}

// reference returns the expression string that evaluates this handle.
func (t *Tag[T]) reference() string {
	if t.name != "" {
		return t.name
	}
	return t.expr
}

// operand returns the handle's reference, parenthesised when embedding
// it bare into a larger expression would change the grouping.
func (t *Tag[T]) operand() string {
	ref := t.reference()
	if t.name != "" || !compound(ref) {
		return ref
	}
	if strings.HasPrefix(ref, "(") && strings.HasSuffix(ref, ")") {
		return ref
	}
	return "(" + ref + ")"
}

func compound(expr string) bool {
	return strings.ContainsFunc(expr, func(r rune) bool {
		return isOperator(r) || r == '(' || r == ')' || unicode.IsSpace(r)
	})
}
