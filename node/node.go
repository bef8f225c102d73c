package node

import (
	"encoding/xml"
	"fmt"

	"github.com/andaru/yangdata/xmlutil"
)

// Kind represents the schema classification of an element name,
// resolved once per element open.
type Kind int

const (
	// KindUnknown indicates the schema does not model the name at
	// the requested position
	KindUnknown Kind = iota
	// KindContainer is a schema container node
	KindContainer
	// KindList is a schema list entry node
	KindList
	// KindLeaf is a schema leaf node; leaves carry a value and no
	// children
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindContainer:
		return "container"
	case KindList:
		return "list"
	case KindLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypedNode is a schema modeled data tree node.
//
// Implementations own their children and hold a non-owning reference
// to their parent, established when the Factory links a new instance
// under the parent passed to CreateInstance.
type TypedNode interface {
	// SetLeafValue validates value against the schema type of the
	// named child leaf and stores it. A non-nil error rejects the
	// value and aborts the conversion in progress.
	SetLeafValue(namespace, name, value string) error
	// SetValue stores raw character data accumulated directly under
	// this node.
	SetValue(value string)
	// AddAttribute records a non-namespace-declaration attribute.
	AddAttribute(attr xml.Attr)
	// SetPrefixes hands the node the batch of namespace prefix
	// declarations pending at its creation. May be called with nil.
	SetPrefixes(prefixes xmlutil.PrefixMap)
}

// Factory instantiates typed nodes.
type Factory interface {
	// CreateInstance resolves name within namespace under parent
	// (nil at the document root) and reports the resolved Kind:
	//
	//   - KindContainer, KindList: a new TypedNode is returned,
	//     already linked under parent.
	//   - KindLeaf: the name is a leaf of parent; no node is
	//     returned. The leaf value is committed later through
	//     parent's SetLeafValue.
	//   - KindUnknown: the schema does not model the name here; no
	//     node is returned.
	//
	// A non-nil error reports a schema violation other than an
	// unknown name (e.g. a cardinality violation) and aborts the
	// conversion.
	CreateInstance(parent TypedNode, namespace, name string) (TypedNode, Kind, error)
}
