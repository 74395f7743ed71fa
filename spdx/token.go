package spdx

import (
	"fmt"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	END TokenType = iota
	IDENT
	AND
	OR
	WITH
	LROUND
	RROUND
)

func (it TokenType) String() string {
	switch it {
	case END:
		return "end of expression"
	case IDENT:
		return "identifier"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case WITH:
		return "WITH"
	case LROUND:
		return "("
	case RROUND:
		return ")"
	}
	return "unknown"
}

// Token is a lexical token with its byte offset in the expression.
type Token struct {
	Type   TokenType
	Text   string
	Offset int
}

// LexError reports a character that cannot appear in any SPDX
// license expression.
type LexError struct {
	Offset int
	Found  rune
}

func (it *LexError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", it.Found, it.Offset)
}

const documentRefPrefix = "DocumentRef-"

// Tokenizer turns a license expression into a lazy token stream.
// The stream is consumed once, terminated by an END token, and is
// not restartable.
type Tokenizer struct {
	source string
	at     int
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{source: source}
}

func identRune(candidate rune) bool {
	switch {
	case candidate >= 'a' && candidate <= 'z':
		return true
	case candidate >= 'A' && candidate <= 'Z':
		return true
	case candidate >= '0' && candidate <= '9':
		return true
	case candidate == '.' || candidate == '-' || candidate == '+':
		return true
	}
	return false
}

// Next gives the next token from the stream. After the first error,
// or after END, behavior is undefined; callers stop at either.
func (it *Tokenizer) Next() (Token, error) {
	for it.at < len(it.source) {
		head := rune(it.source[it.at])
		if head == ' ' || head == '\t' || head == '\n' || head == '\r' {
			it.at += 1
			continue
		}
		break
	}
	if it.at >= len(it.source) {
		return Token{Type: END, Offset: it.at}, nil
	}
	start := it.at
	head := rune(it.source[it.at])
	switch head {
	case '(':
		it.at += 1
		return Token{Type: LROUND, Text: "(", Offset: start}, nil
	case ')':
		it.at += 1
		return Token{Type: RROUND, Text: ")", Offset: start}, nil
	}
	if !identRune(head) && head != ':' {
		return Token{}, &LexError{Offset: start, Found: head}
	}
	for it.at < len(it.source) {
		candidate := rune(it.source[it.at])
		if identRune(candidate) {
			it.at += 1
			continue
		}
		// Colon only joins "DocumentRef-X:LicenseRef-Y" compounds.
		if candidate == ':' && strings.HasPrefix(it.source[start:it.at], documentRefPrefix) {
			it.at += 1
			continue
		}
		break
	}
	if it.at == start {
		return Token{}, &LexError{Offset: start, Found: head}
	}
	text := it.source[start:it.at]
	// Keywords are uppercase only. Other all-caps words stay
	// identifiers, since license ids can be fully uppercase.
	switch text {
	case "AND":
		return Token{Type: AND, Text: text, Offset: start}, nil
	case "OR":
		return Token{Type: OR, Text: text, Offset: start}, nil
	case "WITH":
		return Token{Type: WITH, Text: text, Offset: start}, nil
	}
	return Token{Type: IDENT, Text: text, Offset: start}, nil
}
