// Package node defines the node contracts of the yangdata tree.
//
// Typed nodes represent schema modeled containers, lists and leaves and
// are instantiated by an external Factory, typically backed by
// generated code. The Factory reports an explicit Kind for every
// requested name, so callers never inspect the runtime type of its
// result.
//
// Generic nodes represent unknown subtrees, the regions of an incoming
// document with no corresponding schema node. They are held in a Tree,
// an arena addressed by ID indices, preserving names, attributes,
// prefix declarations and character data verbatim.
package node
