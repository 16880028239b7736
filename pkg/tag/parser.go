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
	"unicode/utf8"

	"github.com/tombee/tagscope/pkg/errors"
)

// Expression grammar:
//
//	expr    := term (OP term)*
//	term    := TAGNAME | '(' expr ')'
//	OP      := '&' | '|' | '-' | '^'
//	TAGNAME := one or more non-operator, non-parenthesis, non-space characters
//
// All four operators share a single precedence level and associate to the
// left; parentheses override. Whitespace between tokens is insignificant.

// node is a transient expression tree node. Trees are built per evaluation
// and discarded with the call; nothing is cached across calls.
type node interface {
	isNode()
}

// tagRef is a leaf node referencing a tag by name.
type tagRef struct {
	name string
	pos  int
}

// binaryOp combines the result sets of two child nodes.
type binaryOp struct {
	op    byte
	left  node
	right node
}

func (*tagRef) isNode()   {}
func (*binaryOp) isNode() {}

type tokenKind int

const (
	tokenTag tokenKind = iota
	tokenOp
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isOperator(r rune) bool {
	return r == '&' || r == '|' || r == '-' || r == '^'
}

// tokenize splits an expression into tokens. It cannot fail: every
// character that is not an operator, parenthesis or whitespace is part
// of a tag name.
func tokenize(expression string) []token {
	var tokens []token
	i := 0
	for i < len(expression) {
		r, size := utf8.DecodeRuneInString(expression[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", pos: i})
			i += size
		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", pos: i})
			i += size
		case isOperator(r):
			tokens = append(tokens, token{kind: tokenOp, text: string(r), pos: i})
			i += size
		default:
			start := i
			for i < len(expression) {
				r, size := utf8.DecodeRuneInString(expression[i:])
				if unicode.IsSpace(r) || r == '(' || r == ')' || isOperator(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, token{kind: tokenTag, text: expression[start:i], pos: start})
		}
	}
	return append(tokens, token{kind: tokenEOF, pos: len(expression)})
}

// parser is a single-pass recursive-descent parser over the token stream.
type parser struct {
	expression string
	tokens     []token
	pos        int
}

// parse turns an expression string into an expression tree.
func parse(expression string) (node, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &errors.SyntaxError{
			Expression: expression,
			Position:   -1,
			Message:    "empty expression",
		}
	}
	p := &parser{expression: expression, tokens: tokenize(expression)}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, p.errorf(tok, "unexpected %s, expected operator or end of expression", describe(tok))
	}
	return root, nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenOp {
		op := p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &binaryOp{op: op.text[0], left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenTag:
		return &tagRef{name: tok.text, pos: tok.pos}, nil
	case tokenLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, p.errorf(closing, "unbalanced parentheses: expected ')', got %s", describe(closing))
		}
		return inner, nil
	default:
		return nil, p.errorf(tok, "expected tag name or '(', got %s", describe(tok))
	}
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &errors.SyntaxError{
		Expression: p.expression,
		Position:   tok.pos,
		Message:    fmt.Sprintf(format, args...),
	}
}

func describe(tok token) string {
	switch tok.kind {
	case tokenEOF:
		return "end of expression"
	case tokenOp:
		return fmt.Sprintf("operator %q", tok.text)
	default:
		return fmt.Sprintf("%q", tok.text)
	}
}
