// Package xmltree is the tree layer of the mapping engine: it parses a raw
// XML document, resolves every namespace prefix declared anywhere in the
// document into a single document-global table, rewrites the values of
// QName-valued attributes (the xsi:type discriminator) into expanded form,
// and exposes the result as a source-tracked node view.
//
// Namespace declarations are deliberately treated as document-global rather
// than scoped to their declaring element. Real inputs never rebind a prefix
// within one document, and the flat table keeps attribute-value expansion a
// single pass.
package xmltree

import (
	"io"
	"os"

	"github.com/beevik/etree"

	earkmodels "github.com/meemoo/earkmodels"
)

// document is the per-parse state shared by every node of one tree.
type document struct {
	source     string
	namespaces map[string]string
}

// ParseFile parses the XML document at path and returns its root node.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, earkmodels.Issues{{
			Path:    "/",
			Code:    earkmodels.CodeNotFound,
			Message: "cannot open document",
			Source:  path,
			Cause:   err,
		}}
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse parses an XML document from r. The source string identifies the
// document in diagnostics and is carried by every node of the returned tree.
func Parse(r io.Reader, source string) (*Node, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, earkmodels.Issues{{
			Path:    "/",
			Code:    earkmodels.CodeMalformedXML,
			Message: "document is not well-formed XML",
			Source:  source,
			Cause:   err,
		}}
	}
	root := tree.Root()
	if root == nil {
		return nil, earkmodels.Issues{{
			Path:    "/",
			Code:    earkmodels.CodeMalformedXML,
			Message: "document has no root element",
			Source:  source,
		}}
	}

	doc := &document{source: source, namespaces: collectNamespaces(root)}
	node := &Node{el: root, doc: doc}

	if iss := checkPrefixes(node); iss != nil {
		return nil, iss
	}
	if iss := expandTypeAttributes(node); iss != nil {
		return nil, iss
	}
	return node, nil
}

// collectNamespaces gathers every xmlns declaration in the document into one
// flat prefix table. The empty prefix holds the default namespace.
func collectNamespaces(root *etree.Element) map[string]string {
	table := make(map[string]string)
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, a := range el.Attr {
			switch {
			case a.Space == "xmlns":
				table[a.Key] = a.Value
			case a.Space == "" && a.Key == "xmlns":
				table[""] = a.Value
			}
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return table
}

// checkPrefixes fails on any element or attribute prefix used without a
// declaration anywhere in the document.
func checkPrefixes(n *Node) earkmodels.Issues {
	if n.el.Space != "" {
		if _, ok := resolvePrefix(n.el.Space, n.doc.namespaces); !ok {
			return earkmodels.Issues{{
				Path:    n.Path(),
				Code:    earkmodels.CodeUnresolvedPrefix,
				Message: "element uses undeclared namespace prefix",
				Hint:    n.el.Space,
				Source:  n.doc.source,
			}}
		}
	}
	for _, a := range n.el.Attr {
		if a.Space == "" || a.Space == "xmlns" {
			continue
		}
		if _, ok := resolvePrefix(a.Space, n.doc.namespaces); !ok {
			return earkmodels.Issues{{
				Path:    n.Path(),
				Code:    earkmodels.CodeUnresolvedPrefix,
				Message: "attribute uses undeclared namespace prefix",
				Hint:    a.Space + ":" + a.Key,
				Source:  n.doc.source,
			}}
		}
	}
	for _, child := range n.Children() {
		if iss := checkPrefixes(child); iss != nil {
			return iss
		}
	}
	return nil
}

// expandTypeAttributes rewrites every xsi:type attribute value from
// prefix:local to {uri}local form so that model code can match discriminator
// values without namespace knowledge.
func expandTypeAttributes(n *Node) earkmodels.Issues {
	for i := range n.el.Attr {
		a := &n.el.Attr[i]
		uri, ok := resolvePrefix(a.Space, n.doc.namespaces)
		if a.Space == "" || !ok {
			continue
		}
		if uri != XSIType.Space || a.Key != XSIType.Local {
			continue
		}
		expanded, err := ExpandQName(a.Value, n.doc.namespaces)
		if err != nil {
			iss, _ := earkmodels.AsIssues(err)
			for i := range iss {
				iss[i].Path = n.Path()
				iss[i].Source = n.doc.source
			}
			return iss
		}
		a.Value = expanded
	}
	for _, child := range n.Children() {
		if iss := expandTypeAttributes(child); iss != nil {
			return iss
		}
	}
	return nil
}
