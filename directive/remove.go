package directive

import "github.com/defpatch/defpatch/ir"

var removeSym = &removeSymbol{name: removeName}

func Remove() Symbol {
	return removeSym
}

const (
	removeName name = "remove"
)

type removeSymbol struct {
	name
}

func (s removeSymbol) Instance(forms []*ir.Node) (Op, error) {
	return includeInstance(s.name, forms, true)
}
