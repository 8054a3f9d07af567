package cli

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pscalc/pscalc"
)

// functionFile is the YAML form of a calculator function.
//
//	domain: [0, 1]
//	range: [0, 1, 0, 1, 0, 1]
//	program: |
//	  { dup 0.5 mul exch dup }
type functionFile struct {
	Domain  []float64 `yaml:"domain"`
	Range   []float64 `yaml:"range"`
	Program string    `yaml:"program"`
}

func loadFunction(fname string, opts ...pscalc.CompilerOption) (*pscalc.Function, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ff functionFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&ff); err != nil {
		return nil, &functionFileError{fname, err}
	}
	fn, err := pscalc.ParseFunction(ff.Domain, ff.Range, ff.Program, opts...)
	if err != nil {
		var e *pscalc.ParseError
		if errors.As(err, &e) {
			return nil, &programParseError{fname, ff.Program, err}
		}
		var u *pscalc.UnknownOperatorError
		if errors.As(err, &u) {
			return nil, &compileError{err}
		}
		return nil, &functionFileError{fname, err}
	}
	return fn, nil
}
