package pscalc

import "context"

type env struct {
	pc    int
	stack *Stack
	codes []*code
	steps int
	limit int
	ctx   context.Context
}

func newEnv(ctx context.Context, stack *Stack, limit int) *env {
	return &env{stack: stack, limit: limit, ctx: ctx}
}
