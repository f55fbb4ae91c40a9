//go:build go1.18
// +build go1.18

package symbolic_test

import (
	"testing"

	"github.com/zephyrtronium/symbolic"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("2 3 +")
	f.Add("x x * sin")
	f.Add("2-3i x ^ y /")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := symbolic.ParseString(s, symbolic.ParseComplex)
		if err != nil {
			return
		}
		want := e.String()
		for _, v := range e.Vars() {
			d := e.Diff(v)
			_ = d.String()
		}
		if got := e.Clone().String(); got != want {
			t.Errorf("clone of %q formats as %q", want, got)
		}
	})
}
