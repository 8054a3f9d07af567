package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/pscalc/pscalc"
)

const name = "pscalc"

const version = "0.1.0"

var revision = "HEAD"

const (
	exitCodeOK           = 0
	exitCodeFlagParseErr = 2
	exitCodeCompileErr   = 3
	exitCodeDefaultErr   = 5
)

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer

	outputYAML bool
	yamlEnc    *yaml.Encoder
	eval       func(context.Context, []float64) ([]float64, error)
	exitCode   int
}

type flagopts struct {
	FromFile         string `short:"f" long:"from-file" description:"load program from file"`
	Function         string `long:"function" description:"load function from YAML file"`
	YAMLOutput       bool   `short:"y" long:"yaml-output" description:"output in YAML format"`
	ColorOutput      bool   `short:"C" long:"color-output" description:"output with colors even if piped"`
	MonochromeOutput bool   `short:"M" long:"monochrome-output" description:"output without colors"`
	Tokens           bool   `long:"tokens" description:"print the lowered tokens and exit"`
	MaxSteps         *int   `long:"max-steps" description:"limit the codes run per input"`
	Version          bool   `short:"v" long:"version" description:"display version information"`
	Help             bool   `short:"h" long:"help" description:"display this help information"`
}

func (cli *cli) run(args []string) int {
	if err := cli.runInternal(args); err != nil {
		if _, ok := err.(interface{ isEmptyError() }); !ok {
			cli.printError(err)
		}
		if err, ok := err.(interface{ ExitCode() int }); ok {
			return err.ExitCode()
		}
		return exitCodeDefaultErr
	}
	return exitCodeOK
}

func (cli *cli) runInternal(args []string) (err error) {
	var opts flagopts
	if args, err = parseFlags(args, &opts); err != nil {
		return &flagParseError{err}
	}
	if opts.Help {
		fmt.Fprintf(cli.outStream, `%[1]s - PostScript calculator function evaluator

Version: %s (rev: %s/%s)

Synopsis:
  %% %[1]s '{ dup 0.5 mul }' 0.8
  %% echo '[0.2, 0.4]' | %[1]s '{ add }'

Usage:
  %[1]s [OPTIONS] PROGRAM [NUMBER...]

`,
			name, version, revision, runtime.Version())
		fmt.Fprint(cli.outStream, formatFlags(&opts))
		return nil
	}
	if opts.Version {
		fmt.Fprintf(cli.outStream, "%s %s (rev: %s/%s)\n", name, version, revision, runtime.Version())
		return nil
	}
	if err := cli.setupColors(&opts); err != nil {
		return &flagParseError{err}
	}
	limit := pscalc.DefaultStepLimit
	if opts.MaxSteps != nil {
		if *opts.MaxSteps < 0 {
			return &flagParseError{fmt.Errorf("invalid argument for flag `--max-steps': %d", *opts.MaxSteps)}
		}
		limit = *opts.MaxSteps
	}
	cli.outputYAML = opts.YAMLOutput

	if opts.Function != "" {
		if opts.FromFile != "" {
			return &flagParseError{errors.New("cannot use --function with --from-file")}
		}
		f, err := loadFunction(opts.Function, pscalc.WithStepLimit(limit))
		if err != nil {
			return err
		}
		cli.eval = f.EvaluateWithContext
	} else {
		var fname, src string
		if opts.FromFile != "" {
			bs, err := os.ReadFile(opts.FromFile)
			if err != nil {
				return err
			}
			fname, src = opts.FromFile, string(bs)
		} else {
			if len(args) == 0 {
				return &flagParseError{errors.New("expected a program")}
			}
			fname, src, args = "<arg>", args[0], args[1:]
		}
		tokens, err := pscalc.Parse(src)
		if err != nil {
			return &programParseError{fname, src, err}
		}
		if opts.Tokens {
			return cli.printTokens(tokens)
		}
		code, err := pscalc.Compile(tokens, pscalc.WithStepLimit(limit))
		if err != nil {
			return &compileError{err}
		}
		cli.eval = func(ctx context.Context, xs []float64) ([]float64, error) {
			return code.RunWithContext(ctx, xs...)
		}
	}

	if len(args) > 0 {
		xs, err := parseNumbers(args)
		if err != nil {
			return &inputError{"<arg>", 0, err}
		}
		cli.process("<arg>", xs)
	} else if err := cli.processInputs(cli.inStream, "<stdin>"); err != nil {
		return err
	}
	if cli.yamlEnc != nil {
		if err := cli.yamlEnc.Close(); err != nil {
			return err
		}
	}
	if cli.exitCode != exitCodeOK {
		return &exitCodeError{cli.exitCode}
	}
	return nil
}

func (cli *cli) setupColors(opts *flagopts) error {
	if opts.ColorOutput {
		color.NoColor = false
	} else if opts.MonochromeOutput {
		color.NoColor = true
	} else {
		color.NoColor = os.Getenv("NO_COLOR") != "" || !isTTY(cli.outStream)
	}
	if colors := os.Getenv("PSCALC_COLORS"); colors != "" {
		return setColors(colors)
	}
	return nil
}

func (cli *cli) processInputs(r io.Reader, fname string) error {
	s := bufio.NewScanner(r)
	var line int
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		xs, err := parseVector(text)
		if err != nil {
			return &inputError{fname, line, err}
		}
		cli.process(fname+":"+strconv.Itoa(line), xs)
	}
	return s.Err()
}

func (cli *cli) process(at string, xs []float64) {
	vs, err := cli.eval(context.Background(), xs)
	if err != nil {
		cli.printError(&runError{at, err})
		cli.exitCode = exitCodeDefaultErr
		return
	}
	if err := cli.printValues(vs); err != nil {
		cli.printError(err)
		cli.exitCode = exitCodeDefaultErr
	}
}

func (cli *cli) printValues(vs []float64) error {
	if cli.outputYAML {
		if cli.yamlEnc == nil {
			cli.yamlEnc = yaml.NewEncoder(cli.outStream)
			cli.yamlEnc.SetIndent(2)
		}
		return cli.yamlEnc.Encode(vs)
	}
	return newEncoder().marshal(vs, cli.outStream)
}

func (cli *cli) printTokens(tokens []pscalc.Token) error {
	xs := make([]string, len(tokens))
	for i, t := range tokens {
		xs[i] = t.String()
	}
	_, err := fmt.Fprintln(cli.outStream, strings.Join(xs, " "))
	return err
}

func (cli *cli) printError(err error) {
	printColored(cli.errStream, errorColor, name+": error: "+err.Error())
	fmt.Fprintln(cli.errStream)
}

func parseNumbers(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %q", arg)
		}
		xs[i] = x
	}
	return xs, nil
}

// parseVector accepts a YAML (or JSON) sequence or scalar, falling back to
// numbers separated by whitespace.
func parseVector(text string) ([]float64, error) {
	var xs []float64
	if err := yaml.Unmarshal([]byte(text), &xs); err == nil {
		return xs, nil
	}
	return parseNumbers(strings.Fields(text))
}

func isTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
