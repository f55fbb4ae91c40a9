package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/symbolic"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"diff-real", []string{"-field", "real", "--diff", "x x *", "--by", "x"}, "((1 * x) + (x * 1))"},
		{"diff-complex", []string{"--diff", "x x *", "--by", "x"}, "((1+0i * x) + (x * 1+0i))"},
		{"diff-independent", []string{"-field", "real", "--diff", "y sin", "--by", "x"}, "0"},
		{"diff-quo", []string{"-field", "real", "--diff", "x y /", "--by", "x"}, "(((1 * y) - (x * 0)) / (y * y))"},
		{"diff-legacy", []string{"-field", "real", "-legacy", "--diff", "x y /", "--by", "x"}, "(((1 * x) - (x * 0)) / (y * y))"},
		{"echo", []string{"-field", "real", "-echo", "--diff", "x sin", "--by", "x"}, "sin(x)\n(cos(x) * 1)"},
		{"eval", []string{"--eval", "x y +", "--by", "x=2", "y=3i"}, "2+3i"},
		{"eval-const", []string{"--eval", "2 3 *"}, "6+0i"},
		{"eval-real", []string{"-field", "real", "--eval", "x y * neg", "--by", "x=3", "y=4"}, "-12"},
		{"eval-given", []string{"-given", "x=1", "-given", "y=2", "--eval", "x y -", "--by", "x=4"}, "2+0i"},
		{"eval-big", []string{"-field", "big", "--eval", "x 2 *", "--by", "x=1.5"}, "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := run(c.args, nil, &b); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestRunUsage(t *testing.T) {
	cases := [][]string{
		nil,
		{"--by", "x"},
		{"--diff", "x", "--eval", "x", "--by", "x"},
		{"--diff", "x x *"},
		{"--diff", "x x *", "--by", "x", "y"},
		{"--diff", "x", "--by", "x", "--nope"},
		{"-field", "quaternion", "--diff", "x", "--by", "x"},
		{"-prec", "many", "--eval", "1"},
		{"-given", "x=1", "--diff", "x", "--by", "x"},
		{"-in", "expr.txt", "--diff", "x", "--by", "x"},
	}
	for _, args := range cases {
		var b bytes.Buffer
		if err := run(args, nil, &b); err != nil {
			t.Errorf("%q: %v", args, err)
		}
		if got := b.String(); got != usage {
			t.Errorf("%q: want usage, got %q", args, got)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  any
	}{
		{"parse", []string{"--diff", "x +", "--by", "x"}, new(*symbolic.StackError)},
		{"token", []string{"--diff", "x $", "--by", "x"}, new(*symbolic.TokenError)},
		{"undefined", []string{"--eval", "x y +", "--by", "x=2"}, new(*symbolic.NameError)},
		{"binding", []string{"--eval", "x", "--by", "x"}, new(*symbolic.BindingError)},
		{"domain", []string{"-field", "big", "--eval", "0 0 /"}, new(*symbolic.DomainError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b bytes.Buffer
			err := run(c.args, nil, &b)
			if err == nil {
				t.Fatalf("no error; output %q", b.String())
			}
			if !errors.As(err, c.err) {
				t.Errorf("wrong error %#v", err)
			}
			if b.Len() != 0 {
				t.Errorf("output %q on error", b.String())
			}
		})
	}
}

func TestRunVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vars.yaml")
	if err := os.WriteFile(path, []byte("x: 2\ny: 3i\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"file", []string{"-vars", path, "--eval", "x y +"}, "2+3i"},
		{"override", []string{"-vars", path, "--eval", "x y +", "--by", "x=5"}, "5+3i"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := run(c.args, nil, &b); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}

	var b bytes.Buffer
	err := run([]string{"-vars", filepath.Join(dir, "missing.yaml"), "--eval", "1"}, nil, &b)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file gave %v", err)
	}
}

func TestDecodeVars(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		names []string
		ok    bool
	}{
		{"empty", "", []string{}, true},
		{"one", "x: 1\n", []string{"x"}, true},
		{"several", "b: 1+2i\na: -3\n_c: .5i\n", []string{"_c", "a", "b"}, true},
		{"sequence", "- 1\n- 2\n", nil, false},
		{"scalar", "3\n", nil, false},
		{"nested", "x: [1]\n", nil, false},
		{"bad-name", "1x: 2\n", nil, false},
		{"bad-value", "x: y\n", nil, false},
		{"bad-yaml", "x: [\n", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := symbolic.NewContext[symbolic.Complex]()
			err := decodeVars([]byte(c.src), ctx, symbolic.ParseComplex)
			if (err == nil) != c.ok {
				t.Fatalf("want ok %t, got error %v", c.ok, err)
			}
			if !c.ok {
				return
			}
			names := ctx.Names()
			if len(names) != len(c.names) {
				t.Fatalf("want names %q, got %q", c.names, names)
			}
			for i := range names {
				if names[i] != c.names[i] {
					t.Errorf("want names %q, got %q", c.names, names)
					break
				}
			}
		})
	}
}

func TestRunInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expr.txt")
	if err := os.WriteFile(path, []byte("x sin\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"stdin-diff", []string{"-field", "real", "--diff", "-", "--by", "x"}, "x x *\n", "((1 * x) + (x * 1))"},
		{"stdin-eval", []string{"--eval", "-", "--by", "x=2", "y=3i"}, "x y +", "2+3i"},
		{"stdin-dash", []string{"-in", "-", "-field", "real", "--eval", "-", "--by", "x=2"}, "x x *", "4"},
		{"file", []string{"-in", path, "-field", "real", "--diff", "-", "--by", "x"}, "ignored", "(cos(x) * 1)"},
		{"argv", []string{"-field", "real", "--diff", "x", "--by", "x"}, "y", "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := run(c.args, strings.NewReader(c.stdin), &b); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}

	var b bytes.Buffer
	err := run([]string{"-in", filepath.Join(dir, "missing.txt"), "--diff", "-", "--by", "x"}, nil, &b)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input file gave %v", err)
	}
	var serr *symbolic.StackError
	err = run([]string{"--diff", "-", "--by", "x"}, strings.NewReader(""), &b)
	if !errors.As(err, &serr) {
		t.Errorf("empty stdin gave %#v", err)
	}
}
