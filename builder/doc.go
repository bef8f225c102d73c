// Package builder converts a stream of XML parse events into a typed,
// schema validated data tree.
//
// A Builder consumes the ordered callbacks of a standard XML pull
// parser: element open, character data, element close and namespace
// prefix declaration. Each element name is first normalized through an
// AliasTable, then resolved by the typed node Factory. Schema known
// containers and lists are descended into; schema known leaves have
// their character data accumulated and committed through the schema
// validated leaf value setter when the element closes. Elements the
// schema does not know at the document root begin an unknown subtree,
// preserved verbatim as generic nodes.
//
// One Builder converts exactly one document. The alias table and
// schema repository it references are immutable and may be shared by
// any number of concurrent Builders.
package builder
