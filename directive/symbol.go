package directive

import "github.com/defpatch/defpatch/ir"

type Symbol interface {
	Name
	Instance(forms []*ir.Node) (Op, error)
}

type Name interface {
	String() string
}

type name string

func (s name) String() string {
	return string(s)
}
