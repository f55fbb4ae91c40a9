package symbolic

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// funcs is the set of names that parse as unary functions. If nil, all
	// default functions are used.
	funcs map[string]nodeKind
}

type disableopt []string

// DisableFuncs disables unary functions during parsing. Their names will be
// parsed as variables instead. With no arguments, all functions are disabled.
func DisableFuncs(names ...string) ParseOption {
	return disableopt(names)
}

func (o disableopt) parseOption(p parsectx) parsectx {
	// Always make a copy.
	m := make(map[string]nodeKind, len(unaryFuncs))
	if len(o) > 0 {
		src := p.funcs
		if src == nil {
			src = unaryFuncs
		}
		for k, v := range src {
			m[k] = v
		}
		for _, name := range o {
			delete(m, name)
		}
	}
	p.funcs = m
	return p
}
