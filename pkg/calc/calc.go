// Package calc evaluates Reverse Polish Notation expressions.
//
// An expression is a single-space separated list of numbers and the
// operators + - * /. Operators pop two values and push their result;
// the value left on top of the stack is the answer:
//
//	calc.Evaluate("1 1 + 2 *") // 4
//
// Arithmetic is done in float32. Dividing by zero gives +Inf, -Inf or NaN
// rather than an error.
package calc

import (
	"strings"

	"github.com/clonidine/polish-calc/pkg/lexer"
	"github.com/clonidine/polish-calc/pkg/vm"
)

// Samples are the expressions printed by the demonstration driver.
var Samples = sampleExpressions()

func sampleExpressions() []string {
	out := []string{"1 2 +", "4 2 /", "1 1 + 2 +"}
	for n := 1; n <= 8; n++ {
		out = append(out, "1 1 +"+strings.Repeat(" 1 +", n))
	}
	return out
}

// Evaluate tokenizes and reduces expression. Blank input evaluates to 0.
// If the expression leaves several values on the stack the topmost wins.
func Evaluate(expression string) (float32, error) {
	return evaluate(expression, &vm.Machine{})
}

// EvaluateStrict is like Evaluate but fails with vm.ErrUnbalanced when
// more than one value is left on the stack.
func EvaluateStrict(expression string) (float32, error) {
	return evaluate(expression, &vm.Machine{Strict: true})
}

// EvaluateWith runs expression on m, so callers can set Strict or Trace.
// m is reset first. A nil m behaves like Evaluate.
func EvaluateWith(m *vm.Machine, expression string) (float32, error) {
	if m == nil {
		m = &vm.Machine{}
	}
	m.Reset()
	return evaluate(expression, m)
}

// MustEvaluate is like Evaluate but panics on error.
func MustEvaluate(expression string) float32 {
	v, err := Evaluate(expression)
	if err != nil {
		panic(err)
	}
	return v
}

func evaluate(expression string, m *vm.Machine) (float32, error) {
	tokens, err := lexer.Tokenize(expression)
	if err != nil {
		return 0, err
	}
	return m.Reduce(tokens)
}
