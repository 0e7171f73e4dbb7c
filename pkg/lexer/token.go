package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindNumber
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindError:
		return "ERROR"
	case KindNumber:
		return "NUMBER"
	case KindOperator:
		return "OPERATOR"
	}
	return "UNKNOWN"
}

// Op identifies one of the four binary operators.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the source spelling of the operator.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

func (o Op) String() string { return o.Symbol() }

// lookupOp maps a raw field to an operator. Only single-byte fields match.
func lookupOp(field string) (Op, bool) {
	if len(field) != 1 {
		return 0, false
	}
	switch field[0] {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	}
	return 0, false
}

// Token is a lexical unit pointing back to the source.
// Num is only meaningful for KindNumber, Op only for KindOperator.
type Token struct {
	Kind   Kind
	Op     Op
	Num    float32
	Offset uint32
	Length uint32
}

// Number returns a number token with no source position.
func Number(v float32) Token {
	return Token{Kind: KindNumber, Num: v}
}

// Operator returns an operator token with no source position.
func Operator(op Op) Token {
	return Token{Kind: KindOperator, Op: op, Length: 1}
}
