package builder

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/andaru/yangdata/dataerr"
	"github.com/andaru/yangdata/node"
	"github.com/andaru/yangdata/xmlutil"
)

// Decode feeds the token stream of d into the builder and returns the
// completed document root. Namespace prefix declaration attributes are
// split out of each start element and delivered as prefix mapping
// events ahead of the element open, matching the upstream event
// source contract. Comments, processing instructions and directives
// are ignored.
func (b *Builder) Decode(d *xml.Decoder) (Root, error) {
	for {
		token, err := d.Token()
		if err == io.EOF {
			return b.Root(), nil
		}
		if err != nil {
			return Root{ID: node.None}, errors.WithStack(
				dataerr.MalformedDocument(dataerr.WithMessage(err.Error())))
		}

		switch token := token.(type) {
		case xml.StartElement:
			attrs := make([]xml.Attr, 0, len(token.Attr))
			for _, attr := range token.Attr {
				switch {
				case xmlutil.IsDeclaration(attr):
					b.StartPrefixMapping(attr.Name.Local, attr.Value)
				case attr.Name.Space == "" && attr.Name.Local == "xmlns":
					// default namespace declaration
					b.StartPrefixMapping("", attr.Value)
				default:
					attrs = append(attrs, attr)
				}
			}
			if err := b.StartElement(token.Name.Space, token.Name.Local, attrs); err != nil {
				return Root{ID: node.None}, err
			}

		case xml.CharData:
			b.CharData(token)

		case xml.EndElement:
			if err := b.EndElement(token.Name.Space, token.Name.Local); err != nil {
				return Root{ID: node.None}, err
			}

		case xml.Comment, xml.ProcInst, xml.Directive:
			// ignored
		}
	}
}

// Parse is a convenience wrapper around Decode, reading one XML
// document from r.
func (b *Builder) Parse(r io.Reader) (Root, error) { return b.Decode(xml.NewDecoder(r)) }
