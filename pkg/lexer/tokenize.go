package lexer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedToken = errors.New("lexer: malformed token")

// SyntaxError describes a field that is neither an operator nor a number.
type SyntaxError struct {
	Literal string
	Offset  int
	Err     error // underlying strconv failure
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lexer: malformed token %q at offset %d", e.Literal, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedToken
}

// Tokenize converts an expression into its token sequence. Blank input
// yields the single token Number(0).
func Tokenize(input string) ([]Token, error) {
	if strings.TrimSpace(input) == "" {
		return []Token{Number(0)}, nil
	}

	s := NewScanner(input)
	tokens := make([]Token, 0, strings.Count(input, " ")+1)
	for {
		tok := s.Next()
		switch tok.Kind {
		case KindEOF:
			return tokens, nil
		case KindError:
			return nil, &SyntaxError{
				Literal: s.Literal(tok),
				Offset:  int(tok.Offset),
				Err:     s.Err(),
			}
		}
		tokens = append(tokens, tok)
	}
}
