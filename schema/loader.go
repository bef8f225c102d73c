package schema

import (
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

var (
	xpSchema     = xpath.MustCompile(`/schema`)
	xpSchemaNode = xpath.MustCompile(`/schema/node`)
)

// LoadXML returns a Registry populated from a schema declaration
// document read from r. The document has the form
//
//	<schema namespace="urn:example:hosts">
//	  <node tagpath="hosts">
//	    <child>host</child>
//	  </node>
//	  <node tagpath="hosts/host" mapping-path="my-host">
//	    <child>name</child>
//	    <child>ip</child>
//	  </node>
//	</schema>
//
// A node element may carry its own namespace attribute, overriding the
// document default. Nodes without a tagpath attribute are rejected.
func LoadXML(r io.Reader) (*Registry, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing schema document")
	}
	root := xmlquery.QuerySelector(doc, xpSchema)
	if root == nil {
		return nil, errors.New("missing <schema> element")
	}
	defaultNS := strings.TrimSpace(root.SelectAttr("namespace"))

	reg := NewRegistry()
	for _, n := range xmlquery.QuerySelectorAll(doc, xpSchemaNode) {
		path := strings.TrimSpace(n.SelectAttr("tagpath"))
		if path == "" {
			return nil, errors.New("schema <node> element missing tagpath attribute")
		}
		ns := defaultNS
		if x := strings.TrimSpace(n.SelectAttr("namespace")); x != "" {
			ns = x
		}
		node := &Node{MappingName: strings.TrimSpace(n.SelectAttr("mapping-path"))}
		for _, child := range xmlquery.Find(n, "child") {
			if x := strings.TrimSpace(child.InnerText()); x != "" {
				node.Children = append(node.Children, x)
			}
		}
		reg.Register(ns, path, node)
	}
	return reg, nil
}
