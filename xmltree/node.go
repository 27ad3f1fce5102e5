package xmltree

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Node is a source-tracked view over one element of a parsed document. Every
// node returned by a navigation method carries the same document identity as
// its parent, so any depth of the model layer can report where a violation
// came from without threading the file path alongside the tree.
type Node struct {
	el  *etree.Element
	doc *document
}

// Name returns the element's qualified name. An element without a prefix
// belongs to the document's default namespace when one is declared.
func (n *Node) Name() QName {
	uri, _ := resolvePrefix(n.el.Space, n.doc.namespaces)
	if n.el.Space == "" {
		uri = n.doc.namespaces[""]
	}
	return QName{Space: uri, Local: n.el.Tag}
}

// Source returns the identity of the document this node was parsed from.
func (n *Node) Source() string {
	return n.doc.source
}

// Text returns the element's direct text content. An empty element yields the
// empty string; "element present but empty" and "element absent" are
// distinguished by the caller through Find.
func (n *Node) Text() string {
	return n.el.Text()
}

// Children returns all child elements in document order.
func (n *Node) Children() []*Node {
	elems := n.el.ChildElements()
	out := make([]*Node, 0, len(elems))
	for _, el := range elems {
		out = append(out, &Node{el: el, doc: n.doc})
	}
	return out
}

// Find returns the first child element with the given qualified name.
func (n *Node) Find(name QName) (*Node, bool) {
	for _, child := range n.Children() {
		if child.Name() == name {
			return child, true
		}
	}
	return nil, false
}

// FindAll returns every child element with the given qualified name, in
// document order.
func (n *Node) FindAll(name QName) []*Node {
	var out []*Node
	for _, child := range n.Children() {
		if child.Name() == name {
			out = append(out, child)
		}
	}
	return out
}

// FindText returns the text of the first child with the given name. The
// second result reports whether such a child exists at all, preserving the
// absent vs present-but-empty distinction.
func (n *Node) FindText(name QName) (string, bool) {
	child, ok := n.Find(name)
	if !ok {
		return "", false
	}
	return child.Text(), true
}

// Attr returns the value of an unprefixed attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AttrDefault returns the value of an unprefixed attribute, or def when the
// attribute is absent.
func (n *Node) AttrDefault(key, def string) string {
	if v, ok := n.Attr(key); ok {
		return v
	}
	return def
}

// QAttr returns the value of a namespace-qualified attribute, matching on the
// resolved namespace URI rather than the prefix the document happens to use.
func (n *Node) QAttr(name QName) (string, bool) {
	for _, a := range n.el.Attr {
		if a.Space == "" || a.Space == "xmlns" {
			continue
		}
		uri, ok := resolvePrefix(a.Space, n.doc.namespaces)
		if !ok {
			continue
		}
		if uri == name.Space && a.Key == name.Local {
			return a.Value, true
		}
	}
	return "", false
}

// PrefixedAttr returns the value of an attribute matched on its literal
// prefix, bypassing namespace resolution. The xlink attribute group is read
// this way.
func (n *Node) PrefixedAttr(prefix, key string) (string, bool) {
	for _, a := range n.el.Attr {
		if a.Space == prefix && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Path renders the node's location inside its document, with one-based
// indices wherever an element has same-named siblings, e.g.
// /premis:premis/premis:object[2]/premis:objectIdentifier.
func (n *Node) Path() string {
	var parts []string
	for el := n.el; el != nil && el.Tag != ""; {
		parent := el.Parent()
		label := el.FullTag()
		if parent != nil && parent.Tag != "" {
			same := 0
			index := 0
			for _, sib := range parent.ChildElements() {
				if sib.Space == el.Space && sib.Tag == el.Tag {
					same++
					if sib == el {
						index = same
					}
				}
			}
			if same > 1 {
				label += "[" + strconv.Itoa(index) + "]"
			}
		}
		parts = append(parts, label)
		el = parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}
