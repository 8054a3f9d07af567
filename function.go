package pscalc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const maxCacheSize = 1024

// Function is a calculator function with its domain and range: inputs are
// clipped to the domain before the program runs and outputs are clipped to
// the range. Results are cached per input vector; once the cache is full the
// oldest entry is evicted.
type Function struct {
	domain []float64
	rng    []float64
	code   *Code

	mu    sync.Mutex
	cache *orderedmap.OrderedMap[string, []float64]
}

// NewFunction compiles tokens into a function. Domain and range hold
// [min0 max0 min1 max1 ...] pairs. Unless options say otherwise the program
// is bounded by DefaultStepLimit.
func NewFunction(domain, rng []float64, tokens []Token, options ...CompilerOption) (*Function, error) {
	if err := validateIntervals("domain", domain); err != nil {
		return nil, err
	}
	if err := validateIntervals("range", rng); err != nil {
		return nil, err
	}
	options = append([]CompilerOption{WithStepLimit(DefaultStepLimit)}, options...)
	code, err := Compile(tokens, options...)
	if err != nil {
		return nil, err
	}
	return &Function{
		domain: append([]float64(nil), domain...),
		rng:    append([]float64(nil), rng...),
		code:   code,
		cache:  orderedmap.New[string, []float64](),
	}, nil
}

func validateIntervals(name string, xs []float64) error {
	if len(xs) == 0 || len(xs)%2 != 0 {
		return fmt.Errorf("%s must hold min and max pairs but got %d values", name, len(xs))
	}
	for i := 0; i < len(xs); i += 2 {
		if xs[i] > xs[i+1] {
			return fmt.Errorf("%s interval %d is empty: [%s %s]",
				name, i/2, formatNumber(xs[i]), formatNumber(xs[i+1]))
		}
	}
	return nil
}

// Inputs returns the number of input values.
func (f *Function) Inputs() int {
	return len(f.domain) / 2
}

// Outputs returns the number of output values.
func (f *Function) Outputs() int {
	return len(f.rng) / 2
}

// Evaluate runs the function for the inputs.
func (f *Function) Evaluate(inputs []float64) ([]float64, error) {
	return f.EvaluateWithContext(context.Background(), inputs)
}

// EvaluateWithContext runs the function for the inputs with context.
func (f *Function) EvaluateWithContext(ctx context.Context, inputs []float64) ([]float64, error) {
	if len(inputs) != f.Inputs() {
		return nil, fmt.Errorf("expected %d inputs but got %d", f.Inputs(), len(inputs))
	}
	key := cacheKey(inputs)
	f.mu.Lock()
	outputs, ok := f.cache.Get(key)
	f.mu.Unlock()
	if ok {
		return append([]float64(nil), outputs...), nil
	}
	xs := make([]float64, len(inputs))
	for i, x := range inputs {
		xs[i] = clip(x, f.domain[2*i], f.domain[2*i+1])
	}
	stack, err := f.code.RunWithContext(ctx, xs...)
	if err != nil {
		return nil, err
	}
	n := f.Outputs()
	if len(stack) < n {
		return nil, &StackUnderflowError{n, len(stack)}
	}
	outputs = make([]float64, n)
	for i, v := range stack[len(stack)-n:] {
		outputs[i] = clip(v, f.rng[2*i], f.rng[2*i+1])
	}
	f.mu.Lock()
	if _, present := f.cache.Set(key, outputs); !present && f.cache.Len() > maxCacheSize {
		f.cache.Delete(f.cache.Oldest().Key)
	}
	f.mu.Unlock()
	return append([]float64(nil), outputs...), nil
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func cacheKey(xs []float64) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(formatNumber(x))
	}
	return sb.String()
}

// ErrNoProgram is returned by ParseFunction for an empty program text.
var ErrNoProgram = errors.New("empty program")

// ParseFunction parses the program text and builds a function from it.
func ParseFunction(domain, rng []float64, src string, options ...CompilerOption) (*Function, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrNoProgram
	}
	tokens, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return NewFunction(domain, rng, tokens, options...)
}
