package ir

type Node struct {
	Type   Type
	Values []*Node

	Symbol  string
	String  string
	Number  string
	Float64 *float64
	Int64   *int64
}

func Sym(name string) *Node {
	return &Node{Type: SymbolType, Symbol: name}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func List(values ...*Node) *Node {
	return &Node{Type: ListType, Values: values}
}

func FromSlice(values []*Node) *Node {
	return &Node{Type: ListType, Values: values}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Symbol = y.Symbol
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func CloneSlice(values []*Node) []*Node {
	res := make([]*Node, len(values))
	for i, v := range values {
		res[i] = v.Clone()
	}
	return res
}

// Head returns the symbol text of a list's first element, or "" when the
// node is not a list or its first element is not a symbol.
func (y *Node) Head() string {
	if y.Type != ListType || len(y.Values) == 0 {
		return ""
	}
	if h := y.Values[0]; h.Type == SymbolType {
		return h.Symbol
	}
	return ""
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Int returns the node's integer value. The second result is false for
// non-numbers and for floats.
func (y *Node) Int() (int64, bool) {
	if y.Type != NumberType || y.Int64 == nil {
		return 0, false
	}
	return *y.Int64, true
}
