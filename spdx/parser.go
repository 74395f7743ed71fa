package spdx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyExpression marks a blank or whitespace-only license field.
var ErrEmptyExpression = errors.New("empty license expression")

// ParseKind separates parse failure cases for diagnostics.
type ParseKind int

const (
	UnexpectedToken ParseKind = iota
	UnbalancedParenthesis
	MissingException
	TrailingInput
)

func (it ParseKind) String() string {
	switch it {
	case UnexpectedToken:
		return "unexpected token"
	case UnbalancedParenthesis:
		return "unbalanced parenthesis"
	case MissingException:
		return "missing exception identifier"
	case TrailingInput:
		return "trailing input after expression"
	}
	return "parse failure"
}

// ParseError reports why and where an expression stopped parsing.
type ParseError struct {
	Kind   ParseKind
	Offset int
	Found  string
}

func (it *ParseError) Error() string {
	if len(it.Found) > 0 {
		return fmt.Sprintf("%v at offset %d: %q", it.Kind, it.Offset, it.Found)
	}
	return fmt.Sprintf("%v at offset %d", it.Kind, it.Offset)
}

type parser struct {
	tokens *Tokenizer
	head   Token
}

// Parse turns one raw license expression into an expression tree.
// The grammar is LL(1) after precedence stratification:
//
//	Expr     := OrExpr
//	OrExpr   := AndExpr (OR AndExpr)*
//	AndExpr  := WithExpr (AND WithExpr)*
//	WithExpr := Atom (WITH Identifier)?
//	Atom     := Identifier | '(' Expr ')'
//
// One left-to-right pass, one token of lookahead, no backtracking.
func Parse(source string) (Expr, error) {
	if len(strings.TrimSpace(source)) == 0 {
		return nil, ErrEmptyExpression
	}
	it := &parser{tokens: NewTokenizer(source)}
	err := it.advance()
	if err != nil {
		return nil, err
	}
	root, err := it.parseOr()
	if err != nil {
		return nil, err
	}
	if it.head.Type != END {
		return nil, &ParseError{Kind: TrailingInput, Offset: it.head.Offset, Found: it.head.Text}
	}
	return root, nil
}

func (it *parser) advance() error {
	token, err := it.tokens.Next()
	if err != nil {
		return err
	}
	it.head = token
	return nil
}

func (it *parser) parseOr() (Expr, error) {
	left, err := it.parseAnd()
	if err != nil {
		return nil, err
	}
	for it.head.Type == OR {
		err = it.advance()
		if err != nil {
			return nil, err
		}
		right, err := it.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (it *parser) parseAnd() (Expr, error) {
	left, err := it.parseWith()
	if err != nil {
		return nil, err
	}
	for it.head.Type == AND {
		err = it.advance()
		if err != nil {
			return nil, err
		}
		right, err := it.parseWith()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (it *parser) parseWith() (Expr, error) {
	atom, err := it.parseAtom()
	if err != nil {
		return nil, err
	}
	if it.head.Type != WITH {
		return atom, nil
	}
	err = it.advance()
	if err != nil {
		return nil, err
	}
	if it.head.Type != IDENT {
		return nil, &ParseError{Kind: MissingException, Offset: it.head.Offset, Found: it.head.Text}
	}
	result := &WithException{License: atom, Exception: it.head.Text}
	err = it.advance()
	if err != nil {
		return nil, err
	}
	// Chained WITH on one atom is never valid.
	if it.head.Type == WITH {
		return nil, &ParseError{Kind: UnexpectedToken, Offset: it.head.Offset, Found: it.head.Text}
	}
	return result, nil
}

func (it *parser) parseAtom() (Expr, error) {
	switch it.head.Type {
	case IDENT:
		result := &License{ID: it.head.Text}
		err := it.advance()
		if err != nil {
			return nil, err
		}
		return result, nil
	case LROUND:
		opened := it.head.Offset
		err := it.advance()
		if err != nil {
			return nil, err
		}
		inner, err := it.parseOr()
		if err != nil {
			return nil, err
		}
		if it.head.Type != RROUND {
			return nil, &ParseError{Kind: UnbalancedParenthesis, Offset: opened, Found: "("}
		}
		err = it.advance()
		if err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, &ParseError{Kind: UnexpectedToken, Offset: it.head.Offset, Found: it.head.Text}
}
