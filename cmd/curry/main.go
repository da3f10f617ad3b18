package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/smasher164/curry/expr"
	"github.com/smasher164/curry/sexpr"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprint(w, "usage: curry [ -yaml ] [ -debruijn | -relabel | -tree ] file\n\n")
		fmt.Fprint(w, "curry evaluates calls and lambdas written in λ syntax or as YAML expressions.\n\n")
		fs.PrintDefaults()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func errExit(stderr io.Writer, err error) int {
	c := color.New(color.FgRed, color.Bold)
	if isTerminal(stderr) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintln(stderr, err)
	return 1
}

func read(path string, yaml bool) (any, error) {
	if yaml {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return sexpr.Decode(f)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return sexpr.Parse(string(b))
}

func formatResult(v any) string {
	if c, ok := v.(*expr.Closure); ok {
		return expr.Relabel(expr.Letters, c.Lambda()).String()
	}
	return expr.Lit(v).String()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("curry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	var (
		yaml     = fs.Bool("yaml", false, "read the program as a YAML expression")
		debruijn = fs.Bool("debruijn", false, "print the term with de Bruijn indices instead of evaluating it")
		relabel  = fs.Bool("relabel", false, "print the term with named variables instead of evaluating it")
		tree     = fs.Bool("tree", false, "print the term as a tree instead of evaluating it")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || countTrue(*debruijn, *relabel, *tree) > 1 {
		fs.Usage()
		return 2
	}
	e, err := read(fs.Arg(0), *yaml)
	if err != nil {
		return errExit(stderr, err)
	}
	term, err := sexpr.Lower(e, primitives)
	if err != nil {
		return errExit(stderr, err)
	}
	switch {
	case *debruijn:
		fmt.Fprintln(stdout, term.DeBruijnString())
	case *relabel:
		fmt.Fprintln(stdout, expr.Relabel(expr.Letters, term))
	case *tree:
		fmt.Fprint(stdout, treeString(term))
	default:
		v, err := expr.XEval(term, nil)
		if err != nil {
			return errExit(stderr, err)
		}
		fmt.Fprintln(stdout, formatResult(v))
	}
	return 0
}

func countTrue(bs ...bool) (n int) {
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
