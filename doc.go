/*
Package yangdata is a set of libraries for converting streamed XML parse
events into typed, schema validated data trees.

The libraries consume the callback stream of a standard XML pull parser
(element open, character data, element close, namespace prefix
declaration) and resolve each element name against a YANG style schema
repository, descending into typed container, list and leaf nodes where
the schema knows the element and preserving unknown subtrees verbatim as
generic nodes.

Schema nodes may be wire encoded under an alternate, schema declared
name (a "mapping path") rather than their canonical tag name. An alias
table built by walking a schema subtree translates between the two
transparently during conversion.

See the tagpath, schema, node and builder sub-directories for the path
value type, the schema repository, the node contracts and the event
driven tree builder respectively.
*/
package yangdata
