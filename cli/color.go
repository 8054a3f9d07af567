package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	numberColor = color.New(color.FgCyan)
	arrayColor  *color.Color
	errorColor  = color.New(color.FgRed)
)

func validColor(x string) bool {
	var num bool
	for _, c := range x {
		if '0' <= c && c <= '9' {
			num = true
		} else if c == ';' && num {
			num = false
		} else {
			return false
		}
	}
	return num || x == ""
}

func newColor(x string) *color.Color {
	var attrs []color.Attribute
	for _, s := range strings.Split(x, ";") {
		n, _ := strconv.Atoi(s)
		attrs = append(attrs, color.Attribute(n))
	}
	return color.New(attrs...)
}

// setColors overrides the colors for numbers, brackets, and errors in this
// order, from a colon-separated list of SGR parameters. An empty entry turns
// its color off.
func setColors(colors string) error {
	targets := []**color.Color{&numberColor, &arrayColor, &errorColor}
	for i, c := range strings.SplitN(colors, ":", len(targets)) {
		if !validColor(c) {
			return fmt.Errorf("invalid color: %q", c)
		}
		if c == "" {
			*targets[i] = nil
		} else {
			*targets[i] = newColor(c)
		}
	}
	return nil
}

func printColored(w io.Writer, c *color.Color, s string) {
	if c == nil {
		io.WriteString(w, s)
		return
	}
	c.Fprint(w, s)
}
