package vm

import (
	"errors"
	"fmt"

	"github.com/edwingeng/deque"

	"github.com/clonidine/polish-calc/pkg/lexer"
)

var (
	ErrStackUnderflow = errors.New("vm: stack underflow")
	ErrEmptyResult    = errors.New("vm: empty result")
	ErrInvalidToken   = errors.New("vm: invalid token")
	ErrUnbalanced     = errors.New("vm: unbalanced expression")
)

// Step describes the machine state right after a token was applied.
type Step struct {
	Index int
	Token lexer.Token
	Depth int
	Top   float32
}

// Machine reduces a token sequence on a single LIFO value stack.
// The zero value is ready to use. A Machine is not safe for concurrent use.
type Machine struct {
	// Strict rejects expressions that leave more than one value behind.
	Strict bool

	// Trace, when set, is called after every applied token.
	Trace func(Step)

	stack deque.Deque
}

// NewMachine returns an empty machine.
func NewMachine() *Machine {
	return &Machine{stack: deque.NewDeque()}
}

// Reset clears the stack for reuse. Strict and Trace are kept.
func (m *Machine) Reset() {
	m.stack = deque.NewDeque()
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int {
	if m.stack == nil {
		return 0
	}
	return m.stack.Len()
}

// Push adds a value to the stack.
func (m *Machine) Push(v float32) {
	if m.stack == nil {
		m.stack = deque.NewDeque()
	}
	m.stack.PushBack(v)
}

// Pop removes and returns the top value from the stack.
func (m *Machine) Pop() (float32, error) {
	if m.Depth() == 0 {
		return 0, ErrStackUnderflow
	}
	return m.stack.PopBack().(float32), nil
}

// Top returns the top value without removing it.
func (m *Machine) Top() (float32, error) {
	if m.Depth() == 0 {
		return 0, ErrEmptyResult
	}
	return m.stack.Back().(float32), nil
}

// Stack returns a copy of the stack, bottom first.
func (m *Machine) Stack() []float32 {
	n := m.Depth()
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = m.stack.Peek(i).(float32)
	}
	return out
}

// Apply executes a single token. On error the stack is left untouched.
func (m *Machine) Apply(tok lexer.Token) error {
	switch tok.Kind {
	case lexer.KindNumber:
		m.Push(tok.Num)
		return nil

	case lexer.KindOperator:
		if tok.Op > lexer.OpDiv {
			return fmt.Errorf("%w: unknown operator %d", ErrInvalidToken, tok.Op)
		}
		if depth := m.Depth(); depth < 2 {
			return fmt.Errorf("%w: %q needs 2 operands, have %d", ErrStackUnderflow, tok.Op.Symbol(), depth)
		}
		right, _ := m.Pop()
		left, _ := m.Pop()
		m.Push(BinaryOp{Op: tok.Op, Left: left, Right: right}.Eval())
		return nil
	}
	return fmt.Errorf("%w: kind %v", ErrInvalidToken, tok.Kind)
}

// Reduce applies every token in order and returns the value left on top.
// Values below the top are ignored unless Strict is set.
func (m *Machine) Reduce(tokens []lexer.Token) (float32, error) {
	for i, tok := range tokens {
		if err := m.Apply(tok); err != nil {
			return 0, fmt.Errorf("token %d: %w", i, err)
		}
		if m.Trace != nil {
			top, _ := m.Top()
			m.Trace(Step{Index: i, Token: tok, Depth: m.Depth(), Top: top})
		}
	}

	result, err := m.Top()
	if err != nil {
		return 0, err
	}
	if m.Strict && m.Depth() > 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrUnbalanced, m.Depth())
	}
	return result, nil
}

// Reduce evaluates tokens on a fresh machine.
func Reduce(tokens []lexer.Token) (float32, error) {
	return NewMachine().Reduce(tokens)
}
