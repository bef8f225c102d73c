package builder

import (
	"encoding/xml"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/andaru/yangdata/dataerr"
	"github.com/andaru/yangdata/node"
	"github.com/andaru/yangdata/schema"
	"github.com/andaru/yangdata/tagpath"
	"github.com/andaru/yangdata/xmlutil"
)

// Option is a Builder constructor option function
type Option func(*Builder)

// WithAliasTable sets the alias table used to normalize incoming wire
// names. Without a table, wire names are used as-is and no
// normalization misses are recorded.
func WithAliasTable(t *AliasTable) Option { return func(b *Builder) { b.aliases = t } }

// WithLogger sets the logger receiving normalization miss diagnostics.
func WithLogger(l hclog.Logger) Option { return func(b *Builder) { b.log = l } }

// Root locates the completed document root, available once the
// outermost element has closed.
type Root struct {
	// Typed is the typed root node, when the document root was
	// schema known.
	Typed node.TypedNode
	// Tree and ID locate the generic root, when the document root
	// fell outside the schema. ID is node.None when there is no
	// generic root.
	Tree *node.Tree
	ID   node.ID
}

// IsTyped reports whether the root is a typed node
func (r Root) IsTyped() bool { return r.Typed != nil }

// cursor is one open element on the builder's descent stack.
type cursor struct {
	kind  node.Kind
	typed node.TypedNode // set for container and list cursors
	id    node.ID        // set for generic cursors

	text     string
	hasText  bool
	children int
}

// Builder is the event driven tree building state machine.
//
// A Builder converts exactly one event stream for exactly one
// document; construct a fresh instance per document. It is not safe
// for concurrent use, but the repository and alias table it references
// are read only and freely shared between instances.
type Builder struct {
	repo    schema.Repository
	factory node.Factory
	aliases *AliasTable
	log     hclog.Logger

	tree  *node.Tree
	stack []*cursor
	path  []string // normalized names of open typed elements

	unknownLevel int

	leaf      bool
	leafNS    string
	leafName  string
	leafValue string

	prefixes xmlutil.PrefixMap

	root    Root
	rootSet bool

	misses []string
}

// New returns a Builder resolving names against repo and
// instantiating typed nodes through factory.
func New(repo schema.Repository, factory node.Factory, opts ...Option) *Builder {
	b := &Builder{
		repo:    repo,
		factory: factory,
		log:     hclog.NewNullLogger(),
		tree:    node.NewTree(),
		root:    Root{ID: node.None},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// StartElement processes an element open event. attrs must not
// include xmlns prefix declarations; those arrive through
// StartPrefixMapping.
func (b *Builder) StartElement(uri, local string, attrs []xml.Attr) error {
	name := b.normalize(local)

	if b.unknownLevel > 0 {
		b.unknownLevel++
		b.openGeneric(uri, name, attrs)
		return nil
	}

	var parent node.TypedNode
	if cur := b.current(); cur != nil {
		parent = cur.typed
	}

	child, kind, err := b.factory.CreateInstance(parent, uri, name)
	if err != nil {
		return errors.Wrapf(err, "creating instance of %q", name)
	}

	switch kind {
	case node.KindContainer, node.KindList:
		child.SetPrefixes(b.takePrefixes())
		for _, attr := range attrs {
			if !xmlutil.IsDeclaration(attr) {
				child.AddAttribute(attr)
			}
		}
		if cur := b.current(); cur != nil {
			cur.children++
		}
		if !b.rootSet {
			b.root = Root{Typed: child, ID: node.None}
			b.rootSet = true
		}
		b.push(&cursor{kind: kind, typed: child, id: node.None})
		b.path = append(b.path, name)

	case node.KindLeaf:
		b.beginLeaf(uri, name)

	default: // node.KindUnknown
		if parent == nil {
			// the document root is outside the schema
			b.unknownLevel = 1
			b.openGeneric(uri, name, attrs)
			return nil
		}
		// an unmodeled name below a typed parent is handled as a
		// leaf; the leaf value setter remains the authority that
		// can reject it
		b.beginLeaf(uri, name)
	}
	return nil
}

// CharData processes a character data event. Text is appended exactly
// as received, preserving order across multiple events for the same
// element. Character data arriving before the first element open
// (document prolog whitespace) is ignored.
func (b *Builder) CharData(text []byte) {
	switch cur := b.current(); {
	case b.leaf:
		b.leafValue += string(text)
	case b.unknownLevel > 0:
		b.tree.AppendText(cur.id, string(text))
	case cur != nil:
		cur.text += string(text)
		cur.hasText = true
	}
}

// EndElement processes an element close event. A close with no
// matching open is a contract violation by the event source and
// returns a structure error immediately.
func (b *Builder) EndElement(uri, local string) error {
	if b.unknownLevel > 0 {
		cur := b.pop()
		b.tree.TrimMixed(cur.id)
		b.unknownLevel--
		return nil
	}

	if b.leaf {
		cur := b.current()
		if cur == nil || cur.typed == nil {
			return errors.WithStack(dataerr.UnexpectedClose(dataerr.WithMessage(
				fmt.Sprintf("close of leaf %q with no owning element", b.leafName))))
		}
		if err := cur.typed.SetLeafValue(b.leafNS, b.leafName, b.leafValue); err != nil {
			return errors.Wrapf(err, "setting leaf %q", b.leafName)
		}
		cur.children++
		b.leaf = false
		// the descent pointer never moved for a leaf
		return nil
	}

	cur := b.pop()
	if cur == nil {
		return errors.WithStack(dataerr.UnexpectedClose(dataerr.WithMessage(
			fmt.Sprintf("close of %q with no open element", local))))
	}
	// mixed content: a node with children discards any accumulated
	// text rather than erroring
	if cur.hasText && cur.children == 0 {
		cur.typed.SetValue(cur.text)
	}
	b.path = b.path[:len(b.path)-1]
	return nil
}

// StartPrefixMapping processes a namespace prefix declaration event.
// Declarations accumulate until the next element open, whose node
// receives the whole batch.
func (b *Builder) StartPrefixMapping(prefix, uri string) {
	if b.prefixes == nil {
		b.prefixes = xmlutil.NewPrefixMap()
	}
	b.prefixes.Add(prefix, uri)
}

// Root returns the completed document root. It is meaningful only
// after the outermost element's close event has been processed.
func (b *Builder) Root() Root { return b.root }

// Known reports whether the schema repository declares a node for
// local (after alias normalization) at the builder's current position
// within namespace.
func (b *Builder) Known(namespace, local string) bool {
	name := local
	if b.aliases != nil {
		name, _ = b.aliases.Resolve(local)
	}
	segments := make([]string, 0, len(b.path)+1)
	segments = append(segments, b.path...)
	segments = append(segments, name)
	return b.repo.Lookup(namespace, tagpath.FromSegments(segments...)) != nil
}

// Misses returns the wire names which had no alias table entry, in
// arrival order. Misses are diagnostics for detecting schema or alias
// drift, never failures.
func (b *Builder) Misses() []string { return b.misses }

// normalize resolves a wire name through the alias table, recording
// and logging a miss when the table has no entry for it.
func (b *Builder) normalize(local string) string {
	if b.aliases == nil {
		return local
	}
	name, ok := b.aliases.Resolve(local)
	if !ok {
		b.misses = append(b.misses, local)
		b.log.Warn("no alias table entry for element", "name", local)
	}
	return name
}

func (b *Builder) beginLeaf(uri, name string) {
	b.leaf = true
	b.leafNS = uri
	b.leafName = name
	b.leafValue = ""
}

func (b *Builder) openGeneric(uri, name string, attrs []xml.Attr) {
	parent := node.None
	if cur := b.current(); cur != nil {
		parent = cur.id
		cur.children++
	}
	id := b.tree.New(parent, xmlutil.XMLName(name, uri))
	b.tree.SetPrefixes(id, b.takePrefixes())
	for _, attr := range attrs {
		if !xmlutil.IsDeclaration(attr) {
			b.tree.AddAttribute(id, attr)
		}
	}
	if !b.rootSet {
		b.root = Root{Tree: b.tree, ID: id}
		b.rootSet = true
	}
	b.push(&cursor{kind: node.KindUnknown, id: id})
}

func (b *Builder) takePrefixes() xmlutil.PrefixMap {
	prefixes := b.prefixes
	b.prefixes = nil
	return prefixes
}

func (b *Builder) current() *cursor {
	if n := len(b.stack); n > 0 {
		return b.stack[n-1]
	}
	return nil
}

func (b *Builder) push(c *cursor) { b.stack = append(b.stack, c) }

func (b *Builder) pop() *cursor {
	n := len(b.stack)
	if n == 0 {
		return nil
	}
	c := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return c
}
