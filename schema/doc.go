// Package schema provides the schema repository consulted during
// conversion of XML parse events to a typed data tree.
//
// A Repository answers a single question: given a namespace and a
// tagpath, is there a schema node declared at that position, and if so
// what alternate wire name and children does it declare. Repositories
// are immutable once populated and may be shared by any number of
// concurrent builders.
//
// The Registry type is the standard in-memory Repository. It is
// populated either programmatically via Register, typically from
// generated code, or from a schema declaration document via LoadXML.
package schema
