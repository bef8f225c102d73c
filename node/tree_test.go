package node

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/yangdata/xmlutil"
)

func TestTree(t *testing.T) {
	a := assert.New(t)
	tr := NewTree()
	root := tr.New(None, xmlutil.XMLName("config", "urn:x"))
	a.Equal(None, tr.Parent(root))
	a.Equal(xml.Name{Space: "urn:x", Local: "config"}, tr.Name(root))

	c1 := tr.New(root, xmlutil.XMLName("a"))
	c2 := tr.New(root, xmlutil.XMLName("b"))
	a.Equal([]ID{c1, c2}, tr.Children(root))
	a.Equal(root, tr.Parent(c1))
	a.Equal(3, tr.Len())

	_, ok := tr.Value(c1)
	a.False(ok)
	tr.AppendText(c1, "foo")
	tr.AppendText(c1, "-bar")
	v, ok := tr.Value(c1)
	a.True(ok)
	a.Equal("foo-bar", v)

	tr.AddAttribute(c2, xml.Attr{Name: xmlutil.XMLName("id"), Value: "7"})
	a.Equal("7", tr.Attributes(c2)[0].Value)

	pm := xmlutil.NewPrefixMap()
	pm.Add("ns0", "urn:x")
	tr.SetPrefixes(root, pm)
	a.Equal("urn:x", tr.Prefixes(root).Namespace("ns0"))
}

func TestTreeTrimMixed(t *testing.T) {
	a := assert.New(t)
	tr := NewTree()
	root := tr.New(None, xmlutil.XMLName("r"))

	// text only: value survives
	tr.AppendText(root, "keep")
	tr.TrimMixed(root)
	v, ok := tr.Value(root)
	a.True(ok)
	a.Equal("keep", v)

	// child appears: value is dropped on the next trim
	tr.New(root, xmlutil.XMLName("c"))
	tr.TrimMixed(root)
	_, ok = tr.Value(root)
	a.False(ok)

	// children without text: trim is a no-op
	tr.TrimMixed(root)
	_, ok = tr.Value(root)
	a.False(ok)
}

func TestTreeEmptyText(t *testing.T) {
	a := assert.New(t)
	tr := NewTree()
	root := tr.New(None, xmlutil.XMLName("r"))
	// appending empty text still records a (empty, present) value
	tr.AppendText(root, "")
	v, ok := tr.Value(root)
	a.True(ok)
	a.Equal("", v)
}

func TestKindString(t *testing.T) {
	a := assert.New(t)
	a.Equal("unknown", KindUnknown.String())
	a.Equal("container", KindContainer.String())
	a.Equal("list", KindList.String())
	a.Equal("leaf", KindLeaf.String())
	a.Equal("Kind(9)", Kind(9).String())
}
