package pscalc

type code struct {
	op opcode
	v  float64
}

type opcode int

const (
	oppush opcode = iota
	opjump
	opjumpifzero

	// arithmetic
	opabs
	opadd
	opatan
	opceiling
	opcos
	opcvi
	opcvr
	opdiv
	opexp
	opfloor
	opidiv
	opln
	oplog
	opmod
	opmul
	opneg
	opround
	opsin
	opsqrt
	opsub
	optruncate

	// relational, boolean and bitwise
	opand
	opbitshift
	opeq
	opfalse
	opge
	opgt
	ople
	oplt
	opne
	opnot
	opor
	optrue
	opxor

	// stack
	opcopy
	opdup
	opexch
	opindex
	oppop
	oproll
)

func (op opcode) String() string {
	switch op {
	case oppush:
		return "push"
	case opjump:
		return "j"
	case opjumpifzero:
		return "jz"
	case opabs:
		return "abs"
	case opadd:
		return "add"
	case opatan:
		return "atan"
	case opceiling:
		return "ceiling"
	case opcos:
		return "cos"
	case opcvi:
		return "cvi"
	case opcvr:
		return "cvr"
	case opdiv:
		return "div"
	case opexp:
		return "exp"
	case opfloor:
		return "floor"
	case opidiv:
		return "idiv"
	case opln:
		return "ln"
	case oplog:
		return "log"
	case opmod:
		return "mod"
	case opmul:
		return "mul"
	case opneg:
		return "neg"
	case opround:
		return "round"
	case opsin:
		return "sin"
	case opsqrt:
		return "sqrt"
	case opsub:
		return "sub"
	case optruncate:
		return "truncate"
	case opand:
		return "and"
	case opbitshift:
		return "bitshift"
	case opeq:
		return "eq"
	case opfalse:
		return "false"
	case opge:
		return "ge"
	case opgt:
		return "gt"
	case ople:
		return "le"
	case oplt:
		return "lt"
	case opne:
		return "ne"
	case opnot:
		return "not"
	case opor:
		return "or"
	case optrue:
		return "true"
	case opxor:
		return "xor"
	case opcopy:
		return "copy"
	case opdup:
		return "dup"
	case opexch:
		return "exch"
	case opindex:
		return "index"
	case oppop:
		return "pop"
	case oproll:
		return "roll"
	default:
		panic(op)
	}
}
