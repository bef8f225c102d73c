package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/yangdata/dataerr"
)

func TestDecodeTypedDocument(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<!-- device inventory -->
<hosts xmlns="urn:example:hosts">
  <host>
    <name>ftp-1</name>
    <ip>1.2.2.2</ip>
  </host>
</hosts>`

	a := assert.New(t)
	factory := hostsFactory()
	b := New(hostsRegistry(), factory)

	root, err := b.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.True(t, root.IsTyped())

	hosts := root.Typed.(*fakeNode)
	require.Len(t, hosts.children, 1)
	host := hosts.children[0]
	a.Equal("ftp-1", host.leaves["name"])
	a.Equal("1.2.2.2", host.leaves["ip"])
	// whitespace between elements is mixed content on hosts/host and
	// is discarded, not committed
	a.Nil(hosts.value)
	a.Nil(host.value)
}

func TestDecodePrefixDeclarations(t *testing.T) {
	const doc = `<hosts xmlns="urn:example:hosts" xmlns:dev="urn:example:devices" dev:origin="static"/>`

	a := assert.New(t)
	factory := hostsFactory()
	b := New(hostsRegistry(), factory)

	root, err := b.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.True(t, root.IsTyped())

	hosts := factory.created["hosts"]
	// xmlns declarations become the prefix batch, not attributes
	require.NotNil(t, hosts.prefixes)
	a.Equal("urn:example:hosts", hosts.prefixes.Namespace(""))
	a.Equal("urn:example:devices", hosts.prefixes.Namespace("dev"))
	// ordinary attributes are carried through
	require.Len(t, hosts.attrs, 1)
	a.Equal("origin", hosts.attrs[0].Name.Local)
	a.Equal("static", hosts.attrs[0].Value)
}

func TestDecodeUnknownDocument(t *testing.T) {
	const doc = `<stats xmlns="urn:example:counters"><rx>17</rx><tx>4</tx></stats>`

	a := assert.New(t)
	b := New(hostsRegistry(), hostsFactory())

	root, err := b.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.False(t, root.IsTyped())

	tr := root.Tree
	a.Equal("stats", tr.Name(root.ID).Local)
	children := tr.Children(root.ID)
	require.Len(t, children, 2)
	rx, _ := tr.Value(children[0])
	tx, _ := tr.Value(children[1])
	a.Equal("17", rx)
	a.Equal("4", tx)
}

func TestDecodeMalformed(t *testing.T) {
	a := assert.New(t)
	b := New(hostsRegistry(), hostsFactory())
	_, err := b.Parse(strings.NewReader(`<hosts xmlns="urn:example:hosts"><host></hosts>`))
	require.Error(t, err)
	a.True(dataerr.Is(err, dataerr.KindParse))
}
