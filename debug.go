//go:build pscalc_debug
// +build pscalc_debug

package pscalc

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	debug    bool
	debugOut io.Writer
)

func init() {
	if out := os.Getenv("PSCALC_DEBUG"); out != "" {
		debug = true
		if out == "stdout" {
			debugOut = os.Stdout
		} else {
			debugOut = os.Stderr
		}
	}
}

func (env *env) debugCodes() {
	if !debug {
		return
	}
	for i, c := range env.codes {
		fmt.Fprintf(debugOut, "\t%d\t%s\t%s\n", i, formatOp(c.op), debugOperand(c))
	}
	fmt.Fprintln(debugOut, "\t"+strings.Repeat("-", 40))
}

func (env *env) debugState(pc int) {
	if !debug {
		return
	}
	var sb strings.Builder
	c := env.codes[pc]
	fmt.Fprintf(&sb, "\t%d\t%s\t%s\t|", pc, formatOp(c.op), debugOperand(c))
	for _, v := range env.stack.data {
		sb.WriteByte('\t')
		sb.WriteString(formatNumber(v))
	}
	fmt.Fprintln(debugOut, sb.String())
}

func (env *env) debugError(pc int, err error) {
	if !debug {
		return
	}
	fmt.Fprintf(debugOut, "\t%d\terror: %s\n", pc, err)
}

func formatOp(op opcode) string {
	return op.String() + strings.Repeat(" ", 10-len(op.String()))
}

func debugOperand(c *code) string {
	if c.op != oppush {
		return ""
	}
	return formatNumber(c.v)
}
