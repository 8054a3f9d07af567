package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pscalc/pscalc"
)

// replRun evaluates one line of input against the stack left by the
// previous line. A line without braces is wrapped into a program.
func replRun(stack []float64, src string) ([]float64, error) {
	if !strings.HasPrefix(strings.TrimSpace(src), "{") {
		src = "{ " + src + " }"
	}
	tokens, err := pscalc.Parse(src)
	if err != nil {
		return nil, err
	}
	code, err := pscalc.Compile(tokens, pscalc.WithStepLimit(pscalc.DefaultStepLimit))
	if err != nil {
		return nil, err
	}
	return code.Run(stack...)
}

func repl(r io.Reader, w io.Writer) {
	var stack []float64
	s := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !s.Scan() {
			fmt.Fprintln(w)
			return
		}
		src := strings.TrimSpace(s.Text())
		switch src {
		case "":
			continue
		case "clear":
			stack = nil
		default:
			xs, err := replRun(stack, src)
			if err != nil {
				fmt.Fprintf(w, "err: %v\n", err)
				continue
			}
			stack = xs
		}
		fmt.Fprintln(w, stack)
	}
}

func main() {
	if len(os.Args) > 1 {
		xs, err := replRun(nil, strings.Join(os.Args[1:], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "err: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stdout, xs)
		return
	}
	repl(os.Stdin, os.Stdout)
}
