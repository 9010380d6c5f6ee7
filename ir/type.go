package ir

import "fmt"

type Type int

const (
	SymbolType Type = iota
	StringType
	NumberType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		SymbolType: "Symbol",
		StringType: "String",
		NumberType: "Number",
		ListType:   "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Symbol": SymbolType,
		"String": StringType,
		"Number": NumberType,
		"List":   ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		SymbolType,
		StringType,
		NumberType,
		ListType,
	}
}

func (t Type) IsLeaf() bool {
	return t != ListType
}
