package pscalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		have float64
		want int32
	}{
		{have: 0, want: 0},
		{have: 1.9, want: 1},
		{have: -1, want: -1},
		{have: -1.9, want: -1},
		{have: math.MaxInt32, want: math.MaxInt32},
		{have: 1 << 31, want: math.MinInt32},
		{have: 1<<32 + 1, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toInt32(tt.have), "toInt32(%v)", tt.have)
	}
}

func TestFuncOpNot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		have, want float64
	}{
		{have: 0, want: 1},
		{have: 1, want: 0},
		{have: 5, want: -6},
		{have: -1, want: 0},
		{have: 0.5, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, funcOpNot(tt.have), "not %v", tt.have)
	}
}

func TestFuncOpRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		have, want float64
	}{
		{have: 2.5, want: 3},
		{have: -2.5, want: -2},
		{have: 1.49, want: 1},
		{have: -0.4, want: 0},
		{have: 7, want: 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, funcOpRound(tt.have), "round %v", tt.have)
	}
}

func TestFuncOpLogical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   opcode
		l, r float64
		want float64
	}{
		{op: opand, l: 12, r: 10, want: 8},
		{op: opor, l: 12, r: 10, want: 14},
		{op: opxor, l: 12, r: 10, want: 6},
		{op: opand, l: -1, r: 255, want: 255},
		{op: opand, l: 0.5, r: 1, want: 1},
		{op: opand, l: 0.5, r: 0, want: 0},
		{op: opor, l: 0, r: 0.25, want: 1},
		{op: opxor, l: 0.5, r: 0.5, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, funcOpLogical(tt.op, tt.l, tt.r), "%v %v %s", tt.l, tt.r, tt.op)
	}
}

func TestFuncOpBitshift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		l, r, want float64
	}{
		{l: 1, r: 4, want: 16},
		{l: 16, r: -2, want: 4},
		{l: -8, r: -1, want: -4},
		{l: 1, r: 31, want: math.MinInt32},
		{l: 1, r: 40, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, funcOpBitshift(tt.l, tt.r), "%v %v bitshift", tt.l, tt.r)
	}
}

func TestOperatorNames(t *testing.T) {
	t.Parallel()

	for name, op := range operatorMap {
		switch name {
		case "jump":
			assert.Equal(t, opjump, op)
		case "jump-if-zero":
			assert.Equal(t, opjumpifzero, op)
		default:
			assert.Equal(t, name, op.String())
		}
	}
	assert.Panics(t, func() { _ = opcode(-1).String() })
}
