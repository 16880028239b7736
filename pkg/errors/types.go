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

package errors

import (
	"fmt"
	"strings"
)

// NameError represents tag naming constraint violations.
// Use this for attempts to define the reserved "all" tag, empty or
// unreferenceable names, or adding objects to a composite tag.
type NameError struct {
	// Name is the tag name that failed validation
	Name string

	// Reason explains what's wrong with the name
	Reason string
}

// Error implements the error interface.
func (e *NameError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid tag name %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid tag name: %s", e.Reason)
}

// ErrorType implements ErrorClassifier.
func (e *NameError) ErrorType() string { return "name" }

// SyntaxError represents a tag expression that cannot be parsed.
// Use this for unbalanced parentheses, missing operands, or
// unrecognized operator tokens.
type SyntaxError struct {
	// Expression is the full expression that failed to parse
	Expression string

	// Position is the byte offset of the offending token,
	// or -1 when the expression as a whole is at fault
	Position int

	// Message is the human-readable error description
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("syntax error at position %d in %q: %s", e.Position, e.Expression, e.Message)
	}
	return fmt.Sprintf("syntax error in %q: %s", e.Expression, e.Message)
}

// ErrorType implements ErrorClassifier.
func (e *SyntaxError) ErrorType() string { return "syntax" }

// UndefinedTagError represents a reference to a tag that has no
// definition in the scope being evaluated.
type UndefinedTagError struct {
	// Name is the tag name that was not found
	Name string
}

// Error implements the error interface.
func (e *UndefinedTagError) Error() string {
	return fmt.Sprintf("undefined tag: %s", e.Name)
}

// ErrorType implements ErrorClassifier.
func (e *UndefinedTagError) ErrorType() string { return "undefined_tag" }

// RecursionError represents a composite tag whose resolution re-entered
// a tag already being resolved on the active call chain.
type RecursionError struct {
	// Name is the tag that was re-entered
	Name string

	// Chain is the resolution chain that was active when the
	// cycle was detected, outermost first
	Chain []string
}

// Error implements the error interface.
func (e *RecursionError) Error() string {
	if len(e.Chain) > 0 {
		return fmt.Sprintf("recursive tag definition: %s (via %s)", e.Name, strings.Join(e.Chain, " -> "))
	}
	return fmt.Sprintf("recursive tag definition: %s", e.Name)
}

// ErrorType implements ErrorClassifier.
func (e *RecursionError) ErrorType() string { return "recursion" }
