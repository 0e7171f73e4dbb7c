package lexer

import (
	"errors"
	"strconv"
	"strings"
)

var errNumberSyntax = errors.New("lexer: unsupported number syntax")

// Scanner splits an RPN expression into tokens. Fields are separated by
// single spaces; runs of spaces produce no empty tokens.
type Scanner struct {
	source string
	cursor int
	err    error
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.err = nil
}

// Next returns the next token from the source. A field that is neither an
// operator nor a number yields KindError; Err reports why.
func (s *Scanner) Next() Token {
	s.skipSpaces()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: uint32(s.cursor)}
	}

	start := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != ' ' {
		s.cursor++
	}
	field := s.source[start:s.cursor]
	tok := Token{Offset: uint32(start), Length: uint32(s.cursor - start)}

	if op, ok := lookupOp(field); ok {
		tok.Kind = KindOperator
		tok.Op = op
		return tok
	}

	if !isDecimal(field) {
		s.err = errNumberSyntax
		tok.Kind = KindError
		return tok
	}

	v, err := strconv.ParseFloat(field, 32)
	// Out of range literals saturate to +/-Inf or 0 instead of failing.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.err = err
		tok.Kind = KindError
		return tok
	}
	tok.Kind = KindNumber
	tok.Num = float32(v)
	return tok
}

// Literal returns the source text a token was scanned from.
func (s *Scanner) Literal(tok Token) string {
	end := int(tok.Offset + tok.Length)
	if end > len(s.source) {
		return ""
	}
	return s.source[tok.Offset:end]
}

// Err returns the parse failure behind the last KindError token, if any.
func (s *Scanner) Err() error {
	return s.err
}

// isDecimal rejects the Go-only literal forms ParseFloat would accept:
// digit separators and hexadecimal mantissas.
func isDecimal(field string) bool {
	if strings.IndexByte(field, '_') >= 0 {
		return false
	}
	if field[0] == '+' || field[0] == '-' {
		field = field[1:]
	}
	return !(len(field) >= 2 && field[0] == '0' && (field[1] == 'x' || field[1] == 'X'))
}

func (s *Scanner) skipSpaces() {
	for s.cursor < len(s.source) && s.source[s.cursor] == ' ' {
		s.cursor++
	}
}
