// Package decode holds the small composable conversions from a tree node (or
// attribute) to a typed value. Every decoder is a pure function returning the
// value or an earkmodels.Issues error locating the violation; none of them
// knows about any specific metadata standard.
package decode

import (
	"strconv"
	"strings"

	earkmodels "github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/xmltree"
)

// RequiredChild returns the first child with the given name, or a required
// issue naming the expected path.
func RequiredChild(n *xmltree.Node, name xmltree.QName) (*xmltree.Node, error) {
	child, ok := n.Find(name)
	if !ok {
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/" + name.Local,
			Code:    earkmodels.CodeRequired,
			Message: "missing element " + name.String(),
			Source:  n.Source(),
		}}
	}
	return child, nil
}

// ChildText returns the text of a mandatory child element. An empty element
// yields the empty string; only absence of the element fails.
func ChildText(n *xmltree.Node, name xmltree.QName) (string, error) {
	child, err := RequiredChild(n, name)
	if err != nil {
		return "", err
	}
	return child.Text(), nil
}

// ChildTexts returns the text of every child with the given name, in document
// order. Empty elements contribute empty strings.
func ChildTexts(n *xmltree.Node, name xmltree.QName) []string {
	children := n.FindAll(name)
	out := make([]string, 0, len(children))
	for _, child := range children {
		out = append(out, child.Text())
	}
	return out
}

// OptionalChildText returns the text of an optional child element and whether
// the element is present.
func OptionalChildText(n *xmltree.Node, name xmltree.QName) (string, bool) {
	return n.FindText(name)
}

// OptionalChildInt parses the text of an optional child element as an
// integer. An absent or empty element yields ok=false.
func OptionalChildInt(n *xmltree.Node, name xmltree.QName) (int, bool, error) {
	child, ok := n.Find(name)
	if !ok || child.Text() == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(child.Text()))
	if err != nil {
		return 0, false, earkmodels.Issues{{
			Path:    child.Path(),
			Code:    earkmodels.CodeInvalidFormat,
			Message: "expected an integer",
			Hint:    child.Text(),
			Source:  child.Source(),
			Cause:   err,
		}}
	}
	return v, true, nil
}

// OptionalChildInt64 is OptionalChildInt for 64-bit values such as byte
// sizes.
func OptionalChildInt64(n *xmltree.Node, name xmltree.QName) (int64, bool, error) {
	child, ok := n.Find(name)
	if !ok || child.Text() == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(child.Text()), 10, 64)
	if err != nil {
		return 0, false, earkmodels.Issues{{
			Path:    child.Path(),
			Code:    earkmodels.CodeInvalidFormat,
			Message: "expected an integer",
			Hint:    child.Text(),
			Source:  child.Source(),
			Cause:   err,
		}}
	}
	return v, true, nil
}

// EnumAttr reads an optional unprefixed attribute constrained to a closed
// literal set. Absence is allowed; a present value outside the set fails.
func EnumAttr(n *xmltree.Node, key string, allowed ...string) (string, bool, error) {
	v, ok := n.Attr(key)
	if !ok {
		return "", false, nil
	}
	if !member(v, allowed) {
		return "", false, enumIssue(n, key, v, allowed)
	}
	return v, true, nil
}

// EnumText reads an element's text constrained to a closed literal set. The
// text is mandatory: an empty or out-of-set value fails.
func EnumText(n *xmltree.Node, allowed ...string) (string, error) {
	v := n.Text()
	if !member(v, allowed) {
		return "", enumIssue(n, "", v, allowed)
	}
	return v, nil
}

// MarkerAttr reads an attribute that is effectively a constant marker, e.g.
// supplied="yes" or usage="primary". Absence yields false; the exact expected
// value yields true; any other value fails.
func MarkerAttr(n *xmltree.Node, key, want string) (bool, error) {
	v, ok := n.Attr(key)
	if !ok {
		return false, nil
	}
	if v != want {
		return false, enumIssue(n, key, v, []string{want})
	}
	return true, nil
}

// OptionalAttr returns an unprefixed attribute value as a *string so models
// can distinguish absence from an empty value.
func OptionalAttr(n *xmltree.Node, key string) *string {
	if v, ok := n.Attr(key); ok {
		return &v
	}
	return nil
}

// Collect runs an element mapper over every child with the given name,
// keeping document order. Issues from all children are folded into one error
// so a caller sees every violation under the parent at once.
func Collect[T any](n *xmltree.Node, name xmltree.QName, parse func(*xmltree.Node) (T, error)) ([]T, error) {
	var (
		out  []T
		errs []error
	)
	for _, child := range n.FindAll(name) {
		v, err := parse(child)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, v)
	}
	if err := earkmodels.Merge(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func member(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func enumIssue(n *xmltree.Node, key, got string, allowed []string) error {
	path := n.Path()
	if key != "" {
		path += "/@" + key
	}
	return earkmodels.Issues{{
		Path:    path,
		Code:    earkmodels.CodeInvalidEnum,
		Message: "value must be one of " + strings.Join(allowed, ", "),
		Hint:    got,
		Source:  n.Source(),
		Params:  map[string]any{"allowed": allowed, "got": got},
	}}
}
