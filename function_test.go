package pscalc_test

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pscalc/pscalc"
)

func ExampleFunction() {
	// A tint transform from one gray input to an RGB triple.
	f, err := pscalc.ParseFunction(
		[]float64{0, 1},
		[]float64{0, 1, 0, 1, 0, 1},
		"{ dup 0.5 mul exch dup }",
	)
	if err != nil {
		log.Fatalln(err)
	}
	for _, x := range []float64{0.5, 2} {
		v, err := f.Evaluate([]float64{x})
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(v)
	}

	// Output:
	// [0.25 0.5 0.5]
	// [0.5 1 1]
}

func TestFunctionEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		domain   []float64
		rng      []float64
		src      string
		input    []float64
		expected []float64
		err      string
	}{
		{
			name:     "scale",
			domain:   []float64{0, 1},
			rng:      []float64{0, 1},
			src:      "{ 2 mul }",
			input:    []float64{0.25},
			expected: []float64{0.5},
		},
		{
			name:     "clip range",
			domain:   []float64{0, 1},
			rng:      []float64{0, 1},
			src:      "{ 2 mul }",
			input:    []float64{0.75},
			expected: []float64{1},
		},
		{
			name:     "clip domain",
			domain:   []float64{0, 1},
			rng:      []float64{-10, 10},
			src:      "{ 2 mul }",
			input:    []float64{-3},
			expected: []float64{0},
		},
		{
			name:     "top values",
			domain:   []float64{0, 1, 0, 1},
			rng:      []float64{0, 10},
			src:      "{ add 4 }",
			input:    []float64{0.5, 0.5},
			expected: []float64{4},
		},
		{
			name:   "too few outputs",
			domain: []float64{0, 1},
			rng:    []float64{0, 1, 0, 1},
			src:    "{ pop }",
			input:  []float64{0.5},
			err:    "stack underflow: need 2 values but got 0",
		},
		{
			name:   "wrong number of inputs",
			domain: []float64{0, 1},
			rng:    []float64{0, 1},
			src:    "{ }",
			input:  []float64{0.5, 0.5},
			err:    "expected 1 inputs but got 2",
		},
		{
			name:   "domain error",
			domain: []float64{-1, 1},
			rng:    []float64{0, 1},
			src:    "{ sqrt }",
			input:  []float64{-0.5},
			err:    "cannot sqrt: -0.5",
		},
		{
			name:   "endless loop",
			domain: []float64{0, 1},
			rng:    []float64{0, 1},
			src:    "{ 0 0 jz }",
			input:  []float64{0.5},
			err:    "step limit exceeded: 100000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := pscalc.ParseFunction(tc.domain, tc.rng, tc.src)
			require.NoError(t, err)
			got, err := f.Evaluate(tc.input)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewFunctionError(t *testing.T) {
	testCases := []struct {
		name   string
		domain []float64
		rng    []float64
		src    string
		err    string
	}{
		{
			name:   "odd domain",
			domain: []float64{0},
			rng:    []float64{0, 1},
			src:    "{ }",
			err:    "domain must hold min and max pairs but got 1 values",
		},
		{
			name:   "empty range",
			domain: []float64{0, 1},
			rng:    nil,
			src:    "{ }",
			err:    "range must hold min and max pairs but got 0 values",
		},
		{
			name:   "inverted interval",
			domain: []float64{0, 1, 1, 0},
			rng:    []float64{0, 1},
			src:    "{ }",
			err:    "domain interval 1 is empty: [1 0]",
		},
		{
			name:   "unknown operator",
			domain: []float64{0, 1},
			rng:    []float64{0, 1},
			src:    "{ 1 foo }",
			err:    `unknown operator: "foo" at token 1`,
		},
		{
			name:   "syntax error",
			domain: []float64{0, 1},
			rng:    []float64{0, 1},
			src:    "{ 1 ",
			err:    "unexpected EOF: expected }",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pscalc.ParseFunction(tc.domain, tc.rng, tc.src)
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestParseFunctionEmpty(t *testing.T) {
	_, err := pscalc.ParseFunction([]float64{0, 1}, []float64{0, 1}, " \n")
	assert.True(t, errors.Is(err, pscalc.ErrNoProgram))
}

func TestFunctionCache(t *testing.T) {
	f, err := pscalc.ParseFunction([]float64{0, 1}, []float64{0, 1}, "{ 0.5 mul }")
	require.NoError(t, err)
	assert.Equal(t, 1, f.Inputs())
	assert.Equal(t, 1, f.Outputs())

	v, err := f.Evaluate([]float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25}, v)
	v[0] = 100

	v, err = f.Evaluate([]float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25}, v)
}

func TestFunctionConcurrent(t *testing.T) {
	f, err := pscalc.ParseFunction([]float64{0, 100}, []float64{0, 1e4}, "{ dup mul }")
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(x float64) {
			defer wg.Done()
			v, err := f.Evaluate([]float64{x})
			assert.NoError(t, err)
			assert.Equal(t, []float64{x * x}, v)
		}(float64(i % 5))
	}
	wg.Wait()
}

func TestNewFunctionCopiesIntervals(t *testing.T) {
	domain, rng := []float64{0, 1}, []float64{0, 10}
	f, err := pscalc.ParseFunction(domain, rng, "{ }")
	require.NoError(t, err)
	domain[1], rng[1] = 5, 2

	v, err := f.Evaluate([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, v)
}
