package schema

import (
	"github.com/andaru/yangdata/tagpath"
)

// Node is a declared position in the modeling schema.
type Node struct {
	// MappingName is the node's alternate wire name (its "mapping
	// path"), or "" when the node is encoded under its canonical tag
	// name.
	MappingName string
	// Children holds the relative tag paths of the node's declared
	// children. Blank entries are permitted and skipped by walkers.
	Children []string
}

// Repository is the schema node lookup interface.
type Repository interface {
	// Lookup returns the schema node declared at path within
	// namespace, or nil if the position is not modeled.
	Lookup(namespace string, path tagpath.Path) *Node
}

type regKey struct {
	namespace string
	path      uint64
}

// Registry is an in-memory Repository. The zero value is not usable;
// use NewRegistry. A Registry must be fully populated before its first
// Lookup and is safe for concurrent readers thereafter.
type Registry struct {
	nodes map[regKey]*Node
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry { return &Registry{nodes: map[regKey]*Node{}} }

// Register declares node at path within namespace, replacing any
// earlier declaration at the same position.
func (r *Registry) Register(namespace, path string, node *Node) {
	r.nodes[regKey{namespace: namespace, path: tagpath.Parse(path).Hash()}] = node
}

// Lookup implements Repository
func (r *Registry) Lookup(namespace string, path tagpath.Path) *Node {
	return r.nodes[regKey{namespace: namespace, path: path.Hash()}]
}

// Len returns the number of registered schema nodes
func (r *Registry) Len() int { return len(r.nodes) }
