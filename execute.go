package pscalc

import "math"

func (env *env) execute(c *Code) ([]float64, error) {
	env.codes = c.codes
	env.debugCodes()
	var err error
	pc, hasCtx := 0, env.ctx != nil
	defer func() { env.pc = pc }()
loop:
	for ; pc < len(env.codes); pc++ {
		env.debugState(pc)
		code := env.codes[pc]
		if env.steps++; env.limit > 0 && env.steps > env.limit {
			err = &StepLimitError{env.limit}
			break loop
		}
		if hasCtx {
			select {
			case <-env.ctx.Done():
				err = env.ctx.Err()
				break loop
			default:
			}
		}
		switch code.op {
		case oppush:
			err = env.stack.Push(code.v)
		case opjump:
			if err = env.stack.require(1); err != nil {
				break loop
			}
			if pc, err = env.target(env.stack.top(1)[0]); err != nil {
				break loop
			}
			env.stack.drop(1)
			goto loop
		case opjumpifzero:
			if err = env.stack.require(2); err != nil {
				break loop
			}
			xs := env.stack.top(2)
			var target int
			if target, err = env.target(xs[1]); err != nil {
				break loop
			}
			env.stack.drop(2)
			if xs[0] == 0 {
				pc = target
				goto loop
			}
		case opabs, opceiling, opcos, opcvi, opcvr, opfloor, opln, oplog,
			opneg, opnot, opround, opsin, opsqrt, optruncate:
			if err = env.stack.require(1); err != nil {
				break loop
			}
			xs := env.stack.top(1)
			var v float64
			if v, err = applyUnary(code.op, xs[0]); err != nil {
				break loop
			}
			xs[0] = v
		case opadd, opatan, opdiv, opexp, opidiv, opmod, opmul, opsub,
			opand, opbitshift, opeq, opge, opgt, ople, oplt, opne, opor, opxor:
			if err = env.stack.require(2); err != nil {
				break loop
			}
			xs := env.stack.top(2)
			var v float64
			if v, err = applyBinary(code.op, xs[0], xs[1]); err != nil {
				break loop
			}
			env.stack.drop(1)
			xs[0] = v
		case optrue:
			err = env.stack.Push(valueTrue)
		case opfalse:
			err = env.stack.Push(valueFalse)
		case opdup:
			err = env.stack.Copy(1)
		case oppop:
			_, err = env.stack.Pop()
		case opexch:
			err = env.stack.Exch()
		case opcopy, opindex:
			if err = env.stack.require(1); err != nil {
				break loop
			}
			x := env.stack.top(1)[0]
			var n int
			if n, err = env.count(code.op, x); err != nil {
				break loop
			}
			env.stack.drop(1)
			if code.op == opcopy {
				err = env.stack.Copy(n)
			} else {
				err = env.stack.Index(n)
			}
			if err != nil {
				env.stack.data = append(env.stack.data, x)
			}
		case oproll:
			if err = env.stack.require(2); err != nil {
				break loop
			}
			xs := env.stack.top(2)
			var n int
			if n, err = env.count(code.op, xs[0]); err != nil {
				break loop
			}
			if !isInteger(xs[1]) {
				err = &DomainError{code.op.String(), []float64{xs[0], xs[1]}}
				break loop
			}
			if err = env.stack.require(n + 2); err != nil {
				break loop
			}
			j := xs[1]
			if n > 0 {
				j = math.Mod(j, float64(n))
			}
			env.stack.drop(2)
			err = env.stack.Roll(n, int(j))
		default:
			panic(code.op)
		}
		if err != nil {
			break loop
		}
	}
	if err != nil {
		env.debugError(pc, err)
		return nil, err
	}
	return env.stack.Values(), nil
}

// target converts a popped jump target into a code index.
func (env *env) target(x float64) (int, error) {
	if !isInteger(x) || x < 0 || x > float64(len(env.codes)) {
		return 0, &InvalidJumpTargetError{x, len(env.codes)}
	}
	return int(x), nil
}

// count converts the count operand of copy, index and roll.
func (env *env) count(op opcode, x float64) (int, error) {
	if !isInteger(x) {
		return 0, &DomainError{op.String(), []float64{x}}
	}
	if x < 0 {
		return 0, &StackUnderflowError{-1, env.stack.Len()}
	}
	return int(math.Min(x, 2*MaxStackSize)), nil
}
