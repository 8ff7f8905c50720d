package types

// Operator is a binary arithmetic operator.
type Operator string

const (
	OpNone Operator = ""
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
)

// String returns the ASCII form of the operator.
func (o Operator) String() string { return string(o) }

// Symbol returns the form shown on the keypad.
func (o Operator) Symbol() string {
	switch o {
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return string(o)
	}
}

// Valid reports whether o is one of the four binary operators.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// ParseOperator maps ASCII and keypad symbols to an Operator.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSub, true
	case "*", "×", "x":
		return OpMul, true
	case "/", "÷":
		return OpDiv, true
	}
	return OpNone, false
}

// State is the controller's position in the expression state machine.
type State int

const (
	StateFirstOperand State = iota
	StateOperatorPending
	StateSecondOperand
	StateResult
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateFirstOperand:
		return "entering_first_operand"
	case StateOperatorPending:
		return "operator_pending"
	case StateSecondOperand:
		return "entering_second_operand"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}
