// Package xlink decodes the XLink simple-link attribute group shared by MODS
// and PREMIS elements.
//
// The attributes are matched on the literal "xlink" prefix rather than
// through namespace resolution. A document that binds the XLink namespace to
// a different prefix sees the whole group as absent; that silent absence is
// the documented contract, no error is raised.
package xlink

import (
	earkmodels "github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/xmltree"
)

// Valid values for the constrained members of the group.
var (
	showValues    = []string{"new", "replace", "embed", "other", "none"}
	actuateValues = []string{"onLoad", "onRequest", "other", "none"}
)

// SimpleLink is the decoded attribute group. Nil pointers mark absent
// attributes.
type SimpleLink struct {
	Type    *string // always "simple" when present
	Href    *string
	Role    *string
	Arcrole *string
	Title   *string
	Show    *string
	Actuate *string
}

// Parse decodes the simple-link attributes of n. Absent attributes stay nil;
// a present type, show or actuate value outside its closed set fails.
func Parse(n *xmltree.Node) (SimpleLink, error) {
	link := SimpleLink{
		Href:    prefixed(n, "href"),
		Role:    prefixed(n, "role"),
		Arcrole: prefixed(n, "arcrole"),
		Title:   prefixed(n, "title"),
	}

	if t := prefixed(n, "type"); t != nil {
		if *t != "simple" {
			return SimpleLink{}, issue(n, "type", *t, []string{"simple"})
		}
		link.Type = t
	}
	if s := prefixed(n, "show"); s != nil {
		if !member(*s, showValues) {
			return SimpleLink{}, issue(n, "show", *s, showValues)
		}
		link.Show = s
	}
	if a := prefixed(n, "actuate"); a != nil {
		if !member(*a, actuateValues) {
			return SimpleLink{}, issue(n, "actuate", *a, actuateValues)
		}
		link.Actuate = a
	}
	return link, nil
}

func prefixed(n *xmltree.Node, key string) *string {
	if v, ok := n.PrefixedAttr("xlink", key); ok {
		return &v
	}
	return nil
}

func member(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func issue(n *xmltree.Node, key, got string, allowed []string) error {
	return earkmodels.Issues{{
		Path:    n.Path() + "/@xlink:" + key,
		Code:    earkmodels.CodeInvalidEnum,
		Message: "invalid xlink:" + key,
		Hint:    got,
		Source:  n.Source(),
		Params:  map[string]any{"allowed": allowed, "got": got},
	}}
}
