package defpatch

import (
	"errors"
	"fmt"

	"github.com/defpatch/defpatch/encode"
	"github.com/defpatch/defpatch/ir"
)

// Kind classifies what a definition is in the external store: a callable
// (function, macro, inline routine), a variable, or a composite declaration.
type Kind int

const (
	FunctionKind Kind = iota
	VariableKind
	CompositeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		FunctionKind:  "function",
		VariableKind:  "variable",
		CompositeKind: "composite",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"function":  FunctionKind,
		"variable":  VariableKind,
		"composite": CompositeKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		FunctionKind,
		VariableKind,
		CompositeKind,
	}
}

// Definition is an annotated patch definition: the body may contain
// directive nodes anywhere. A resolved Definition carries a directive-free
// body for one view.
type Definition struct {
	Kind Kind
	Name string
	Body *ir.Node
}

var ErrBadDefinition = errors.New("malformed patch definition")

// ParseDefinition reads the file form of a patch definition:
//
//	(patch <kind> <name> <body>)
func ParseDefinition(node *ir.Node) (*Definition, error) {
	if node.Type != ir.ListType || node.Head() != "patch" || node.Len() != 4 {
		return nil, fmt.Errorf("%w: want (patch <kind> <name> <body>), got %q",
			ErrBadDefinition, encode.MustString(node))
	}
	kindNode, nameNode, body := node.Values[1], node.Values[2], node.Values[3]
	if kindNode.Type != ir.SymbolType {
		return nil, fmt.Errorf("%w: kind must be a symbol, got %s", ErrBadDefinition, kindNode.Type)
	}
	var kind Kind
	if err := kind.UnmarshalText([]byte(kindNode.Symbol)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDefinition, err)
	}
	if nameNode.Type != ir.SymbolType {
		return nil, fmt.Errorf("%w: name must be a symbol, got %s", ErrBadDefinition, nameNode.Type)
	}
	return &Definition{Kind: kind, Name: nameNode.Symbol, Body: body.Clone()}, nil
}
