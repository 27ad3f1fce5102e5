package premis

import (
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// StringPlusAuthority is a text value optionally qualified by a controlled
// vocabulary. PREMIS uses this shape for nearly all of its leaf elements.
type StringPlusAuthority struct {
	Text         string
	Authority    *string
	AuthorityURI *string
	ValueURI     *string
}

func (s StringPlusAuthority) String() string { return s.Text }

func parseStringPlusAuthority(n *xmltree.Node) StringPlusAuthority {
	return StringPlusAuthority{
		Text:         n.Text(),
		Authority:    decode.OptionalAttr(n, "authority"),
		AuthorityURI: decode.OptionalAttr(n, "authorityURI"),
		ValueURI:     decode.OptionalAttr(n, "valueURI"),
	}
}

func requiredStringPlusAuthority(n *xmltree.Node, name xmltree.QName) (StringPlusAuthority, error) {
	child, err := decode.RequiredChild(n, name)
	if err != nil {
		return StringPlusAuthority{}, err
	}
	return parseStringPlusAuthority(child), nil
}

func optionalStringPlusAuthority(n *xmltree.Node, name xmltree.QName) *StringPlusAuthority {
	child, ok := n.Find(name)
	if !ok {
		return nil
	}
	s := parseStringPlusAuthority(child)
	return &s
}

func collectStringPlusAuthority(n *xmltree.Node, name xmltree.QName) []StringPlusAuthority {
	children := n.FindAll(name)
	out := make([]StringPlusAuthority, 0, len(children))
	for _, child := range children {
		out = append(out, parseStringPlusAuthority(child))
	}
	return out
}
