// Package ir defines the symbolic tree on which patch resolution operates.
//
// A tree is an ordered structure of atoms (symbols, strings, numbers) and
// lists. Directive recognition, resolution, and comparison all work on
// *ir.Node values; nothing in this package knows about directives.
package ir
