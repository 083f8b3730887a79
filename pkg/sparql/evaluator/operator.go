package evaluator

import (
	"strings"

	"github.com/pkg/errors"
)

// Operator identifies an operation for Evaluator.Apply.
type Operator int

const (
	OpBound Operator = iota
	OpNot
	OpAnd
	OpOr
	OpIsURI
	OpIsBlank
	OpIsLiteral
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNegate
	OpPlus
	OpLangMatches
	OpEqual
	OpNotEqual
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	opCount
)

var operatorNames = [opCount]string{
	OpBound:       "bound",
	OpNot:         "not",
	OpAnd:         "and",
	OpOr:          "or",
	OpIsURI:       "isuri",
	OpIsBlank:     "isblank",
	OpIsLiteral:   "isliteral",
	OpAdd:         "add",
	OpSubtract:    "sub",
	OpMultiply:    "mul",
	OpDivide:      "div",
	OpNegate:      "neg",
	OpPlus:        "pos",
	OpLangMatches: "langmatches",
	OpEqual:       "eq",
	OpNotEqual:    "ne",
	OpLess:        "lt",
	OpLessEq:      "le",
	OpGreater:     "gt",
	OpGreaterEq:   "ge",
}

var operatorSymbols = map[string]Operator{
	"!":  OpNot,
	"&&": OpAnd,
	"||": OpOr,
	"+":  OpAdd,
	"-":  OpSubtract,
	"*":  OpMultiply,
	"/":  OpDivide,
	"=":  OpEqual,
	"!=": OpNotEqual,
	"<":  OpLess,
	"<=": OpLessEq,
	">":  OpGreater,
	">=": OpGreaterEq,
}

func (op Operator) String() string {
	if op < 0 || op >= opCount {
		return "unknown"
	}
	return operatorNames[op]
}

// Arity returns the number of operands op takes.
func (op Operator) Arity() int {
	switch op {
	case OpBound, OpNot, OpIsURI, OpIsBlank, OpIsLiteral, OpNegate, OpPlus:
		return 1
	default:
		return 2
	}
}

// ParseOperator looks up an operator by name ("add", "langMatches") or
// symbol ("+", "<="). Names are case-insensitive.
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorSymbols[s]; ok {
		return op, nil
	}
	name := strings.ToLower(s)
	for op, n := range operatorNames {
		if n == name {
			return Operator(op), nil
		}
	}
	return 0, errors.Errorf("unknown operator %q", s)
}

// Operators returns all operators in declaration order.
func Operators() []Operator {
	ops := make([]Operator, opCount)
	for i := range ops {
		ops[i] = Operator(i)
	}
	return ops
}
