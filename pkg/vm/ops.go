package vm

import "github.com/clonidine/polish-calc/pkg/lexer"

// BinaryOp is one operator applied to the two values popped for it.
// Left was second from the top, Right was the top.
type BinaryOp struct {
	Op    lexer.Op
	Left  float32
	Right float32
}

// Eval computes the result in single precision. Division by zero follows
// IEEE-754 and yields +Inf, -Inf or NaN.
func (b BinaryOp) Eval() float32 {
	switch b.Op {
	case lexer.OpAdd:
		return b.Left + b.Right
	case lexer.OpSub:
		return b.Left - b.Right
	case lexer.OpMul:
		return b.Left * b.Right
	case lexer.OpDiv:
		return b.Left / b.Right
	}
	panic("vm: unknown operator " + b.Op.String())
}
