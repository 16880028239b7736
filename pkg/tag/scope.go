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
	"log/slog"
	"slices"
	"unicode"

	"github.com/tombee/tagscope/pkg/errors"
)

// DefaultTagName is the reserved name of the automatic tag that matches
// every tagged object. It cannot be defined explicitly: it is computed
// fresh from the registry on every evaluation.
const DefaultTagName = "all"

// definition is the value side of the registry. Exactly one of the two
// fields is set: members for extensional tags, expr for composite tags.
type definition[T comparable] struct {
	members Set[T]
	expr    string
}

func (d definition[T]) composite() bool {
	return d.members == nil
}

// Scope is a registry of tag definitions and the context against which
// tag expressions are evaluated.
//
// A Scope performs no internal locking: concurrent Define and Evaluate
// calls must be serialized by the caller.
type Scope[T comparable] struct {
	defs   map[string]definition[T]
	logger *slog.Logger
}

// Option configures a Scope.
type Option[T comparable] func(*Scope[T])

// WithLogger sets the logger used for debug output. Defaults to
// slog.Default().
func WithLogger[T comparable](logger *slog.Logger) Option[T] {
	return func(s *Scope[T]) {
		s.logger = logger
	}
}

// New creates an empty Scope.
func New[T comparable](opts ...Option[T]) *Scope[T] {
	s := &Scope[T]{
		defs:   make(map[string]definition[T]),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateName rejects names that could never be referenced by an
// expression. Failed validation leaves the registry untouched.
func validateName(name string) error {
	if name == "" {
		return &errors.NameError{Reason: "name must not be empty"}
	}
	if name == DefaultTagName {
		return &errors.NameError{
			Name:   name,
			Reason: "reserved for the automatic union of all tagged objects",
		}
	}
	for _, r := range name {
		if isOperator(r) || r == '(' || r == ')' || unicode.IsSpace(r) {
			return &errors.NameError{
				Name:   name,
				Reason: "name must not contain operators, parentheses or whitespace",
			}
		}
	}
	return nil
}

// Define associates a tag name with an explicit set of member objects.
// The members are deduplicated; redefining a name replaces its previous
// definition. Returns a handle to the defined tag.
func (s *Scope[T]) Define(name string, members ...T) (*Tag[T], error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	set := NewSet(members...)
	s.defs[name] = definition[T]{members: set}
	s.logger.Debug("defined tag", "tag", name, "objects", set.Len())
	return &Tag[T]{scope: s, name: name}, nil
}

// DefineExpr associates a tag name with an expression over other tags.
// The expression is stored as-is and evaluated lazily each time the tag
// is queried, so forward references are allowed and redefinitions of
// referenced tags are visible immediately. Syntax and reference errors
// surface only on evaluation.
func (s *Scope[T]) DefineExpr(name, expression string) (*Tag[T], error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	s.defs[name] = definition[T]{expr: expression}
	s.logger.Debug("defined composite tag", "tag", name, "expression", expression)
	return &Tag[T]{scope: s, name: name}, nil
}

// Add associates a single object with each of the named tags, creating
// empty extensional tags on first use. Adding to a composite tag fails
// with a NameError; no tag is modified when any name is invalid.
func (s *Scope[T]) Add(value T, tags ...string) error {
	for _, name := range tags {
		if err := validateName(name); err != nil {
			return err
		}
		if def, ok := s.defs[name]; ok && def.composite() {
			return &errors.NameError{Name: name, Reason: "cannot add objects to a composite tag"}
		}
	}
	for _, name := range tags {
		def, ok := s.defs[name]
		if !ok {
			s.logger.Debug("creating tag on first use", "tag", name)
			def = definition[T]{members: NewSet[T]()}
		}
		def.members.Add(value)
		s.defs[name] = def
	}
	return nil
}

// Evaluate parses and evaluates a tag expression against this Scope and
// returns the matching objects in deterministic natural order.
func (s *Scope[T]) Evaluate(expression string) ([]T, error) {
	result, err := s.EvaluateRaw(expression)
	if err != nil {
		return nil, err
	}
	return s.Sorted(result), nil
}

// EvaluateRaw is Evaluate without the ordering pass: it returns the
// matching objects as an unordered Set.
func (s *Scope[T]) EvaluateRaw(expression string) (Set[T], error) {
	s.logger.Debug("evaluating expression", "expression", expression)
	root, err := parse(expression)
	if err != nil {
		return nil, err
	}
	result, err := s.eval(root, nil)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("expression evaluated", "expression", expression, "objects", result.Len())
	return result, nil
}

// AllObjects returns the union of every object in every extensional tag.
// Composite tags are skipped: evaluating them cannot produce objects
// that are not already tagged extensionally. The result is computed
// fresh on every call so it always reflects the latest definitions.
func (s *Scope[T]) AllObjects() Set[T] {
	all := make(Set[T])
	for _, def := range s.defs {
		if def.composite() {
			continue
		}
		for v := range def.members {
			all[v] = struct{}{}
		}
	}
	return all
}

// Names returns the names of all defined tags in sorted order. The
// reserved "all" tag is not included.
func (s *Scope[T]) Names() []string {
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
