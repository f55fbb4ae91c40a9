package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/symbolic"
)

const usage = `usage: symbolic --diff "<postfix expression>" --by <variable>
       symbolic --eval "<postfix expression>" --by <name>=<value> [<name>=<value> ...]
`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	diff, eval string
	by         string
	bindings   []string
	field      string
	prec       uint
	vars       string
	in         string
	legacy     bool
	echo       bool
	given      []string
}

// parseArgs reads the command line. The result is nil if the invocation is
// malformed.
func parseArgs(args []string) *config {
	var cfg config
	fs := flag.NewFlagSet("symbolic", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.diff, "diff", "", "postfix expression to differentiate")
	fs.StringVar(&cfg.eval, "eval", "", "postfix expression to evaluate")
	fs.StringVar(&cfg.by, "by", "", "variable to differentiate by, or first name=value definition")
	fs.StringVar(&cfg.field, "field", "complex", "scalar type: complex, real, or big")
	fs.UintVar(&cfg.prec, "prec", 64, "precision of big calculations in bits")
	fs.StringVar(&cfg.vars, "vars", "", "YAML file of name: value definitions")
	fs.StringVar(&cfg.in, "in", "", "file to read an expression given as - from (default stdin)")
	fs.BoolVar(&cfg.legacy, "legacy", false, "use the legacy quotient and power rules")
	fs.BoolVar(&cfg.echo, "echo", false, "print the parse tree first")
	fs.Func("given", "name=value definition for --eval (any number of times)", func(s string) error {
		cfg.given = append(cfg.given, s)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return nil
	}
	switch cfg.field {
	case "complex", "real", "big": // do nothing
	default:
		return nil
	}
	switch {
	case cfg.diff != "" && cfg.eval != "", cfg.diff == "" && cfg.eval == "":
		return nil
	case cfg.in != "" && cfg.diff != "-" && cfg.eval != "-":
		return nil
	case cfg.diff != "":
		if cfg.by == "" || fs.NArg() != 0 || len(cfg.given) != 0 {
			return nil
		}
	default:
		cfg.bindings = append(cfg.bindings, cfg.given...)
		if cfg.by != "" {
			cfg.bindings = append(cfg.bindings, cfg.by)
		}
		cfg.bindings = append(cfg.bindings, fs.Args()...)
	}
	return &cfg
}

// run executes the command line args. A malformed command line prints usage
// to stdout and is not an error. An expression given as - is read from the
// -in file, or from stdin without one.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg := parseArgs(args)
	if cfg == nil {
		_, err := io.WriteString(stdout, usage)
		return err
	}
	switch cfg.field {
	case "complex":
		return execute(cfg, symbolic.ParseComplex, stdin, stdout)
	case "real":
		return execute(cfg, symbolic.ParseReal, stdin, stdout)
	case "big":
		return execute(cfg, symbolic.BigParser(cfg.prec), stdin, stdout)
	}
	panic("unreachable")
}

func execute[T symbolic.Scalar[T]](cfg *config, lit symbolic.LiteralFunc[T], stdin io.Reader, w io.Writer) error {
	src := cfg.eval
	if cfg.diff != "" {
		src = cfg.diff
	}
	src, err := readExpr(src, cfg.in, stdin)
	if err != nil {
		return err
	}
	e, err := symbolic.ParseString(src, lit)
	if err != nil {
		return errors.Wrapf(err, "parsing %q", src)
	}
	if cfg.echo {
		fmt.Fprintln(w, e)
	}

	if cfg.diff != "" {
		var opts []symbolic.DiffOption
		if cfg.legacy {
			opts = append(opts, symbolic.LegacyQuotientRule(), symbolic.LegacyPowerRule())
		}
		_, err := io.WriteString(w, e.Diff(cfg.by, opts...).String())
		return err
	}

	ctx := symbolic.NewContext[T]()
	if cfg.vars != "" {
		if err := loadVars(cfg.vars, ctx, lit); err != nil {
			return err
		}
	}
	for _, b := range cfg.bindings {
		name, v, err := symbolic.ParseBinding(b, lit)
		if err != nil {
			return errors.Wrap(err, "reading definitions")
		}
		ctx.Set(name, v)
	}
	r, err := ctx.Eval(e)
	if err != nil {
		return errors.Wrapf(err, "evaluating %v with %v defined", e, ctx.Names())
	}
	_, err = io.WriteString(w, r.String())
	return err
}

// readExpr returns the expression text. If expr is -, the text is the content
// of the file inname, or of stdin if inname is empty or -.
func readExpr(expr, inname string, stdin io.Reader) (string, error) {
	if expr != "-" {
		return expr, nil
	}
	var (
		b   []byte
		err error
	)
	switch inname {
	case "", "-":
		b, err = io.ReadAll(stdin)
	default:
		b, err = os.ReadFile(inname)
	}
	if err != nil {
		return "", errors.Wrap(err, "reading expression")
	}
	return string(b), nil
}
