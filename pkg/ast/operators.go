package ast

// Operator identifies a binary operator. The names match the wire format's
// "op" field.
type Operator string

const (
	OpAdd Operator = "Add"
	OpSub Operator = "Sub"
	OpMul Operator = "Mul"
	OpDiv Operator = "Div"
	OpRem Operator = "Rem"
	OpEq  Operator = "Eq"
	OpNeq Operator = "Neq"
	OpLt  Operator = "Lt"
	OpGt  Operator = "Gt"
	OpLte Operator = "Lte"
	OpGte Operator = "Gte"
	OpAnd Operator = "And"
	OpOr  Operator = "Or"
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpRem: "%",
	OpEq:  "==",
	OpNeq: "!=",
	OpLt:  "<",
	OpGt:  ">",
	OpLte: "<=",
	OpGte: ">=",
	OpAnd: "&&",
	OpOr:  "||",
}

// Valid reports whether op is one of the defined operators.
func (op Operator) Valid() bool {
	_, ok := operatorSymbols[op]
	return ok
}

// Symbol returns the source-level spelling of the operator, for diagnostics.
func (op Operator) Symbol() string {
	if sym, ok := operatorSymbols[op]; ok {
		return sym
	}
	return string(op)
}
