package directive

import "github.com/defpatch/defpatch/ir"

var spliceSym = &spliceSymbol{name: spliceName}

func Splice() Symbol {
	return spliceSym
}

const (
	spliceName name = "splice"
)

type spliceSymbol struct {
	name
}

func (s spliceSymbol) Instance(forms []*ir.Node) (Op, error) {
	return wrapInstance(s.name, forms, true)
}
