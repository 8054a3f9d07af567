package pscalc

import "math"

var operatorMap = map[string]opcode{
	"abs":      opabs,
	"add":      opadd,
	"atan":     opatan,
	"ceiling":  opceiling,
	"cos":      opcos,
	"cvi":      opcvi,
	"cvr":      opcvr,
	"div":      opdiv,
	"exp":      opexp,
	"floor":    opfloor,
	"idiv":     opidiv,
	"ln":       opln,
	"log":      oplog,
	"mod":      opmod,
	"mul":      opmul,
	"neg":      opneg,
	"round":    opround,
	"sin":      opsin,
	"sqrt":     opsqrt,
	"sub":      opsub,
	"truncate": optruncate,
	"and":      opand,
	"bitshift": opbitshift,
	"eq":       opeq,
	"false":    opfalse,
	"ge":       opge,
	"gt":       opgt,
	"le":       ople,
	"lt":       oplt,
	"ne":       opne,
	"not":      opnot,
	"or":       opor,
	"true":     optrue,
	"xor":      opxor,
	"copy":     opcopy,
	"dup":      opdup,
	"exch":     opexch,
	"index":    opindex,
	"pop":      oppop,
	"roll":     oproll,

	"j":            opjump,
	"jump":         opjump,
	"jz":           opjumpifzero,
	"jump-if-zero": opjumpifzero,
}

// Boolean results are encoded as these two values.
const (
	valueTrue  = 1.0
	valueFalse = 0.0
)

func boolValue(b bool) float64 {
	if b {
		return valueTrue
	}
	return valueFalse
}

func isInteger(x float64) bool {
	return x == math.Trunc(x) && !math.IsInf(x, 0)
}

// toInt32 wraps an integral value into the signed 32-bit range.
func toInt32(x float64) int32 {
	return int32(uint32(int64(math.Mod(math.Trunc(x), 1<<32))))
}

func checkFinite(op opcode, v float64, operands ...float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DomainError{op.String(), operands}
	}
	return v, nil
}

func applyUnary(op opcode, x float64) (float64, error) {
	var v float64
	switch op {
	case opabs:
		v = math.Abs(x)
	case opceiling:
		v = math.Ceil(x)
	case opcos:
		v = math.Cos(x * math.Pi / 180)
	case opcvi, optruncate:
		v = math.Trunc(x)
	case opcvr:
		v = x
	case opfloor:
		v = math.Floor(x)
	case opln:
		if x <= 0 {
			return 0, &DomainError{op.String(), []float64{x}}
		}
		v = math.Log(x)
	case oplog:
		if x <= 0 {
			return 0, &DomainError{op.String(), []float64{x}}
		}
		v = math.Log10(x)
	case opneg:
		v = -x
	case opnot:
		v = funcOpNot(x)
	case opround:
		v = funcOpRound(x)
	case opsin:
		v = math.Sin(x * math.Pi / 180)
	case opsqrt:
		if x < 0 {
			return 0, &DomainError{op.String(), []float64{x}}
		}
		v = math.Sqrt(x)
	default:
		panic(op)
	}
	return checkFinite(op, v, x)
}

func applyBinary(op opcode, l, r float64) (float64, error) {
	var v float64
	switch op {
	case opadd:
		v = l + r
	case opsub:
		v = l - r
	case opmul:
		v = l * r
	case opdiv:
		if r == 0 {
			return 0, &DomainError{op.String(), []float64{l, r}}
		}
		v = l / r
	case opidiv:
		if r == 0 {
			return 0, &DomainError{op.String(), []float64{l, r}}
		}
		v = math.Trunc(l / r)
	case opmod:
		if r == 0 {
			return 0, &DomainError{op.String(), []float64{l, r}}
		}
		v = math.Mod(l, r)
	case opexp:
		v = math.Pow(l, r)
	case opatan:
		if l == 0 && r == 0 {
			return 0, &DomainError{op.String(), []float64{l, r}}
		}
		if v = math.Atan2(l, r) * 180 / math.Pi; v < 0 {
			v += 360
		}
	case opeq:
		v = boolValue(l == r)
	case opne:
		v = boolValue(l != r)
	case opgt:
		v = boolValue(l > r)
	case opge:
		v = boolValue(l >= r)
	case oplt:
		v = boolValue(l < r)
	case ople:
		v = boolValue(l <= r)
	case opand, opor, opxor:
		v = funcOpLogical(op, l, r)
	case opbitshift:
		v = funcOpBitshift(l, r)
	default:
		panic(op)
	}
	return checkFinite(op, v, l, r)
}

// funcOpRound rounds halves up, so -2.5 becomes -2.
func funcOpRound(x float64) float64 {
	v := math.Floor(x)
	if x-v >= 0.5 {
		v++
	}
	return v
}

func funcOpNot(x float64) float64 {
	switch {
	case x == valueFalse:
		return valueTrue
	case x == valueTrue:
		return valueFalse
	case isInteger(x):
		return float64(^toInt32(x))
	default:
		return boolValue(x == 0)
	}
}

func funcOpLogical(op opcode, l, r float64) float64 {
	if isInteger(l) && isInteger(r) {
		x, y := toInt32(l), toInt32(r)
		switch op {
		case opand:
			return float64(x & y)
		case opor:
			return float64(x | y)
		default:
			return float64(x ^ y)
		}
	}
	x, y := l != 0, r != 0
	switch op {
	case opand:
		return boolValue(x && y)
	case opor:
		return boolValue(x || y)
	default:
		return boolValue(x != y)
	}
}

func funcOpBitshift(l, r float64) float64 {
	x, s := toInt32(l), int64(toInt32(r))
	if s >= 0 {
		return float64(x << uint64(s))
	}
	return float64(x >> uint64(-s))
}
