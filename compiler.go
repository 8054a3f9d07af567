package pscalc

import "context"

type compiler struct {
	codes []*code
	limit int
}

// Code is a compiled calculator program. It is immutable, so one Code can be
// run from multiple goroutines; every run gets its own stack.
type Code struct {
	codes []*code
	limit int
}

// Compile resolves the operator names of a tokenized program into code.
// Names outside the operator table are reported as *UnknownOperatorError.
func Compile(tokens []Token, options ...CompilerOption) (*Code, error) {
	c := &compiler{}
	for _, opt := range options {
		opt(c)
	}
	return c.compile(tokens)
}

func (c *compiler) compile(tokens []Token) (*Code, error) {
	c.codes = make([]*code, 0, len(tokens))
	for i, t := range tokens {
		if t.Kind == TokenNumber {
			c.append(&code{op: oppush, v: t.Number})
			continue
		}
		op, ok := operatorMap[t.Name]
		if !ok {
			return nil, &UnknownOperatorError{t.Name, i}
		}
		c.append(&code{op: op})
	}
	return &Code{codes: c.codes, limit: c.limit}, nil
}

func (c *compiler) append(code *code) {
	c.codes = append(c.codes, code)
}

// Len returns the number of codes, which is also the largest valid jump
// target.
func (c *Code) Len() int {
	return len(c.codes)
}

// Run runs the code with the initial stack values and returns the final
// stack, bottom first.
func (c *Code) Run(values ...float64) ([]float64, error) {
	return c.run(nil, values)
}

// RunWithContext runs the code with context. The run stops with the error of
// the context once it is done.
func (c *Code) RunWithContext(ctx context.Context, values ...float64) ([]float64, error) {
	return c.run(ctx, values)
}

func (c *Code) run(ctx context.Context, values []float64) ([]float64, error) {
	stack, err := NewStack(values...)
	if err != nil {
		return nil, err
	}
	return newEnv(ctx, stack, c.limit).execute(c)
}

// Evaluate compiles the tokens and runs them once.
func Evaluate(tokens []Token, values ...float64) ([]float64, error) {
	c, err := Compile(tokens)
	if err != nil {
		return nil, err
	}
	return c.Run(values...)
}
