package node

import (
	"encoding/xml"

	"github.com/andaru/yangdata/xmlutil"
)

// ID addresses a generic node within a Tree.
type ID int

// None is the null node ID, used as the parent of a tree's root.
const None ID = -1

type generic struct {
	name     xml.Name
	value    *string
	attrs    []xml.Attr
	prefixes xmlutil.PrefixMap
	parent   ID
	children []ID
}

// Tree is an arena of generic nodes. Nodes are addressed by ID; parent
// links are stored as IDs and child links as ordered ID slices, so
// ascending and descending are index operations with no shared
// ownership between nodes.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes []generic
}

// NewTree returns an empty Tree
func NewTree() *Tree { return &Tree{} }

// New appends a node with the given name under parent and returns its
// ID. Pass None to create a root node.
func (t *Tree) New(parent ID, name xml.Name) ID {
	id := ID(len(t.nodes))
	t.nodes = append(t.nodes, generic{name: name, parent: parent})
	if parent != None {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

// Len returns the number of nodes in the arena
func (t *Tree) Len() int { return len(t.nodes) }

// Name returns the XML name of node id
func (t *Tree) Name(id ID) xml.Name { return t.nodes[id].name }

// Parent returns the parent of node id, or None for a root
func (t *Tree) Parent(id ID) ID { return t.nodes[id].parent }

// Children returns the ordered child IDs of node id
func (t *Tree) Children(id ID) []ID { return t.nodes[id].children }

// Value returns the accumulated character data of node id and whether
// any was recorded.
func (t *Tree) Value(id ID) (string, bool) {
	if v := t.nodes[id].value; v != nil {
		return *v, true
	}
	return "", false
}

// AppendText appends character data to node id, preserving the text
// exactly across multiple calls.
func (t *Tree) AppendText(id ID, text string) {
	n := &t.nodes[id]
	if n.value == nil {
		empty := ""
		n.value = &empty
	}
	*n.value += text
}

// AddAttribute records an attribute on node id
func (t *Tree) AddAttribute(id ID, attr xml.Attr) {
	t.nodes[id].attrs = append(t.nodes[id].attrs, attr)
}

// Attributes returns the attributes recorded on node id
func (t *Tree) Attributes(id ID) []xml.Attr { return t.nodes[id].attrs }

// SetPrefixes hands node id the prefix declaration batch pending at
// its creation. May be called with nil.
func (t *Tree) SetPrefixes(id ID, prefixes xmlutil.PrefixMap) {
	t.nodes[id].prefixes = prefixes
}

// Prefixes returns the prefix declarations attached to node id
func (t *Tree) Prefixes(id ID) xmlutil.PrefixMap { return t.nodes[id].prefixes }

// TrimMixed applies the mixed content policy to node id: a node
// holding both children and character data has its character data
// discarded. Mixed content is disallowed rather than an error.
func (t *Tree) TrimMixed(id ID) {
	n := &t.nodes[id]
	if len(n.children) > 0 && n.value != nil {
		n.value = nil
	}
}
