package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/clonidine/polish-calc/pkg/calc"
	"github.com/clonidine/polish-calc/pkg/lexer"
	"github.com/clonidine/polish-calc/pkg/vm"
)

const usage = `usage: polish-calc [options] [expression ...]

Evaluates Reverse Polish Notation expressions. With no expressions the
built-in samples are evaluated.

options:
  -d     dump the tokens of each expression
  -h     show this help
  -i     read expressions from stdin, one per line
  -n     disable colored output
  -s     strict: fail if more than one value is left on the stack
  -t     trace the stack after every token
`

type options struct {
	dump   bool
	stdin  bool
	strict bool
	trace  bool
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, optind, err := getopt.Getopts(args, "dhinst")
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usage)
		return 2
	}

	var o options
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			o.dump = true
		case 'i':
			o.stdin = true
		case 'n':
			color.NoColor = true
		case 's':
			o.strict = true
		case 't':
			o.trace = true
		default: // case 'h':
			fmt.Fprint(stdout, usage)
			return 0
		}
	}

	exprs := args[optind:]
	if o.stdin {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			exprs = append(exprs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "error reading stdin: %v\n", err)
			return 1
		}
	} else if len(exprs) == 0 {
		exprs = calc.Samples
	}

	errColor := color.New(color.FgRed)
	traceColor := color.New(color.FgCyan)

	m := &vm.Machine{Strict: o.strict}
	if o.trace {
		m.Trace = func(s vm.Step) {
			traceColor.Fprintf(stderr, "  %2d %-8s depth=%d top=%s\n", s.Index, describe(s.Token), s.Depth, format(s.Top))
		}
	}

	status := 0
	for _, expr := range exprs {
		if o.dump {
			if tokens, err := lexer.Tokenize(expr); err == nil {
				spew.Fdump(stderr, tokens)
			}
		}

		v, err := calc.EvaluateWith(m, expr)
		if err != nil {
			errColor.Fprintf(stderr, "error: %q: %v\n", expr, err)
			status = 1
			continue
		}
		fmt.Fprintln(stdout, format(v))
	}
	return status
}

func format(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func describe(tok lexer.Token) string {
	if tok.Kind == lexer.KindOperator {
		return tok.Op.Symbol()
	}
	return format(tok.Num)
}
