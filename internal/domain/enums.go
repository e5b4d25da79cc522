package domain

// Operator is one of the four binary arithmetic operators.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Operators lists all operators in enumeration order.
var Operators = [4]Operator{OpAdd, OpSub, OpMul, OpDiv}

// Symbol returns the infix symbol used in rendered solutions.
func (o Operator) Symbol() string {
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

// Deck selects the value range hands are drawn from.
type Deck int

const (
	SingleDigit Deck = iota // cards 1-9
	DoubleDigit             // cards 1-24
)

// Max returns the largest card value in the deck. Draws are uniform on [1, Max].
func (d Deck) Max() int {
	if d == DoubleDigit {
		return 24
	}
	return 9
}
