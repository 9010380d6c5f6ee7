// Package directive implements the seven patch directives recognized inside
// an annotated definition: add, remove, swap, wrap, splice, let, literal.
//
// Each directive is a Symbol registered in a process-wide table. Instancing
// a symbol against its argument forms performs all arity and shape checks;
// the resulting Op resolves to a node sequence for either the original or
// the patched view. Ops call back into the resolver through a ResolveFunc,
// so the package never depends on the resolution algorithm itself.
package directive
