package builder

import (
	"strings"

	"github.com/andaru/yangdata/schema"
	"github.com/andaru/yangdata/tagpath"
)

// AliasTable maps alternate schema declared wire names ("mapping
// paths") to the canonical tagpath of the schema node they denote.
//
// The table is keyed by the wire visible alias, with hyphens
// normalized to underscores. Two schema nodes at different positions
// may declare the same mapping name; the node visited later by the
// build walk wins. That ambiguity is a known limitation of the mapping
// name declaration and is not resolved here.
//
// An AliasTable is immutable after construction and may be shared by
// any number of concurrent Builders.
type AliasTable struct {
	entries map[string]tagpath.Path
}

// BuildAliasTable returns an AliasTable covering the schema
// declarations reachable from rootPath within namespace. The build is
// a depth first walk: each node declaring a non blank mapping name is
// registered, then every non blank declared child path is visited.
// Branches with no schema node end the walk quietly; probing is
// exploratory, not an error.
func BuildAliasTable(repo schema.Repository, namespace, rootPath string) *AliasTable {
	t := &AliasTable{entries: map[string]tagpath.Path{}}
	t.walk(repo, namespace, rootPath)
	return t
}

func (t *AliasTable) walk(repo schema.Repository, namespace, path string) {
	n := repo.Lookup(namespace, tagpath.Parse(path))
	if n == nil {
		return
	}
	if name := strings.TrimSpace(n.MappingName); name != "" {
		t.entries[strings.ReplaceAll(name, "-", "_")] = tagpath.Parse(path)
	}
	for _, child := range n.Children {
		if strings.TrimSpace(child) != "" {
			t.walk(repo, namespace, path+"/"+child)
		}
	}
}

// Len returns the number of aliases in the table
func (t *AliasTable) Len() int { return len(t.entries) }

// Lookup returns the canonical tagpath registered for alias
func (t *AliasTable) Lookup(alias string) (tagpath.Path, bool) {
	p, ok := t.entries[alias]
	return p, ok
}

// Resolve returns the canonical tag name for a wire name: the last
// segment of the aliased tagpath when alias is in the table, or alias
// unchanged (with ok false) when it is not.
func (t *AliasTable) Resolve(alias string) (name string, ok bool) {
	if p, found := t.entries[alias]; found {
		return p.Last(), true
	}
	return alias, false
}
