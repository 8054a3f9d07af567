package pscalc

// DefaultStepLimit is the step limit used by Function and the command line
// tool unless configured otherwise.
const DefaultStepLimit = 100000

// CompilerOption is a compiler option.
type CompilerOption func(*compiler)

// WithStepLimit is a compiler option for the number of codes a single run may
// dispatch before failing with *StepLimitError. Jumps allow programs that
// never terminate, so callers evaluating untrusted programs should set this.
// Zero means no limit.
func WithStepLimit(limit int) CompilerOption {
	return func(c *compiler) {
		c.limit = limit
	}
}
