package lexer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/clonidine/polish-calc/pkg/lexer"
)

// same compares kinds, operators and values, ignoring source positions.
func same(a, b []lexer.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
		switch a[i].Kind {
		case lexer.KindNumber:
			if a[i].Num != b[i].Num {
				return false
			}
		case lexer.KindOperator:
			if a[i].Op != b[i].Op {
				return false
			}
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexer.Token
	}{
		{"Empty", "", []lexer.Token{lexer.Number(0)}},
		{"Blank", "   ", []lexer.Token{lexer.Number(0)}},
		{"Numbers", "1 2 3", []lexer.Token{lexer.Number(1), lexer.Number(2), lexer.Number(3)}},
		{"Float", "3.5", []lexer.Token{lexer.Number(3.5)}},
		{"Negative", "-2 +4", []lexer.Token{lexer.Number(-2), lexer.Number(4)}},
		{"Exponent", "1e3", []lexer.Token{lexer.Number(1000)}},
		{"Operators", "+ - * /", []lexer.Token{
			lexer.Operator(lexer.OpAdd),
			lexer.Operator(lexer.OpSub),
			lexer.Operator(lexer.OpMul),
			lexer.Operator(lexer.OpDiv),
		}},
		{"Expression", "1 3 +", []lexer.Token{lexer.Number(1), lexer.Number(3), lexer.Operator(lexer.OpAdd)}},
		{"RepeatedSpaces", "  4  2 / ", []lexer.Token{lexer.Number(4), lexer.Number(2), lexer.Operator(lexer.OpDiv)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lexer.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !same(got, tt.want) {
				t.Errorf("Tokenize(%q) =\n%swant\n%s", tt.input, spew.Sdump(got), spew.Sdump(tt.want))
			}
		})
	}
}

func TestTokenizeSaturates(t *testing.T) {
	got, err := lexer.Tokenize("1e40 -1e40")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || !math.IsInf(float64(got[0].Num), 1) || !math.IsInf(float64(got[1].Num), -1) {
		t.Errorf("expected +Inf and -Inf, got %s", spew.Sdump(got))
	}
}

func TestTokenizeMalformed(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		offset  int
	}{
		{"1 2 %", "%", 4},
		{"abc", "abc", 0},
		{"1 ++", "++", 2},
		{"1\t2", "1\t2", 0},
		{"1 2,5", "2,5", 2},
		{"1_000", "1_000", 0},
		{"0x1p3", "0x1p3", 0},
		{"2 -0X10p0 *", "-0X10p0", 2},
	}

	for _, tt := range tests {
		toks, err := lexer.Tokenize(tt.input)
		if err == nil {
			t.Errorf("Tokenize(%q): expected error, got %s", tt.input, spew.Sdump(toks))
			continue
		}
		if !errors.Is(err, lexer.ErrMalformedToken) {
			t.Errorf("Tokenize(%q): expected ErrMalformedToken, got %v", tt.input, err)
		}
		var se *lexer.SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("Tokenize(%q): expected *SyntaxError, got %T", tt.input, err)
		}
		if se.Literal != tt.literal || se.Offset != tt.offset {
			t.Errorf("Tokenize(%q): got literal %q at %d, want %q at %d", tt.input, se.Literal, se.Offset, tt.literal, tt.offset)
		}
		if se.Err == nil {
			t.Errorf("Tokenize(%q): missing underlying error", tt.input)
		}
	}
}
