package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/symbolic"
)

// loadVars reads variable definitions from a YAML file into ctx. The file
// holds a single mapping from names to literals, e.g.
//
//	x: 2
//	y: 3i
func loadVars[T symbolic.Scalar[T]](path string, ctx *symbolic.Context[T], lit symbolic.LiteralFunc[T]) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading variables")
	}
	return errors.Wrap(decodeVars(b, ctx, lit), path)
}

func decodeVars[T symbolic.Scalar[T]](b []byte, ctx *symbolic.Context[T], lit symbolic.LiteralFunc[T]) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		// Empty document.
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: variables must be a mapping of names to values", m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: value of %s is not a number", v.Line, k.Value)
		}
		name, val, err := symbolic.ParseBinding(k.Value+"="+v.Value, lit)
		if err != nil {
			return errors.Wrapf(err, "line %d", k.Line)
		}
		ctx.Set(name, val)
	}
	return nil
}
