package ast

// PrefixOp is a unary operator written before its operand.
type PrefixOp uint8

const (
	Negate    PrefixOp = iota // -
	Not                       // !
	Invert                    // ~
	Size                      // #
	PreInc                    // ++
	PreDec                    // --
	Reference                 // &
)

var prefixOpNames = [...]string{
	Negate:    "-",
	Not:       "!",
	Invert:    "~",
	Size:      "#",
	PreInc:    "++",
	PreDec:    "--",
	Reference: "&",
}

func (op PrefixOp) String() string { return prefixOpNames[op] }

// PostfixOp is a unary operator written after its operand.
type PostfixOp uint8

const (
	PostInc PostfixOp = iota // ++
	PostDec                  // --
)

var postfixOpNames = [...]string{
	PostInc: "++",
	PostDec: "--",
}

func (op PostfixOp) String() string { return postfixOpNames[op] }

// BinaryOp is an infix operator. Values are grouped by precedence tier,
// loosest first.
type BinaryOp uint8

const (
	Or BinaryOp = iota
	And
	BitOr
	BitXor
	BitAnd
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	In
	NotIn
	Is
	NotIs
	RangeInclusive
	RangeExclusive
	ShiftLeft
	ShiftRight
	UnsignedShiftRight
	Add
	Subtract
	Multiply
	Divide
	Modulo
	As
)

var binaryOpNames = [...]string{
	Or:                 "||",
	And:                "&&",
	BitOr:              "|",
	BitXor:             "^",
	BitAnd:             "&",
	Equal:              "==",
	NotEqual:           "!=",
	Less:               "<",
	LessEqual:          "<=",
	Greater:            ">",
	GreaterEqual:       ">=",
	In:                 "in",
	NotIn:              "!in",
	Is:                 "is",
	NotIs:              "!is",
	RangeInclusive:     "..",
	RangeExclusive:     "...",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	UnsignedShiftRight: ">>>",
	Add:                "+",
	Subtract:           "-",
	Multiply:           "*",
	Divide:             "/",
	Modulo:             "%",
	As:                 "as",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }
