package xmltree

import (
	"strings"

	earkmodels "github.com/meemoo/earkmodels"
)

// Namespaces with fixed, well-known bindings.
const (
	// XMLNamespace is implicitly bound to the "xml" prefix in every document.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XSINamespace carries the type discriminator attribute.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// Reserved attribute names.
var (
	// XMLLang is the sole source of language tagging.
	XMLLang = QName{Space: XMLNamespace, Local: "lang"}
	// XSIType is the discriminator attribute naming the concrete variant of
	// an otherwise generically tagged element. It is the only attribute whose
	// value is rewritten to expanded form during parsing.
	XSIType = QName{Space: XSINamespace, Local: "type"}
)

// QName is a namespace-qualified name. Space holds the full namespace URI,
// never a prefix. The canonical serialization is "{uri}local".
type QName struct {
	Space string
	Local string
}

func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}
	return "{" + q.Space + "}" + q.Local
}

// NS builds QNames within one namespace. Each standard package declares its
// tag catalog as a load-time constant table over an NS value.
type NS string

// QName returns the qualified name for local within the namespace.
func (n NS) QName(local string) QName {
	return QName{Space: string(n), Local: local}
}

// ExpandQName rewrites a prefixed qualified name to its expanded form, e.g.
// "schema:Episode" becomes "{https://schema.org/}Episode" given a binding for
// the "schema" prefix. Expanding an already expanded value is a no-op. A value
// without a prefix is qualified by the default namespace when one is declared
// and passed through verbatim otherwise.
func ExpandQName(name string, namespaces map[string]string) (string, error) {
	if name == "" || strings.HasPrefix(name, "{") {
		return name, nil
	}
	i := strings.IndexByte(name, ':')
	if i < 0 {
		def, ok := namespaces[""]
		if !ok || def == "" {
			return name, nil
		}
		return "{" + def + "}" + name, nil
	}
	prefix, local := name[:i], name[i+1:]
	uri, ok := resolvePrefix(prefix, namespaces)
	if !ok {
		return "", earkmodels.Issues{{
			Code:    earkmodels.CodeUnresolvedPrefix,
			Message: "undeclared namespace prefix " + prefix,
			Hint:    name,
		}}
	}
	return "{" + uri + "}" + local, nil
}

func resolvePrefix(prefix string, namespaces map[string]string) (string, bool) {
	if prefix == "xml" {
		return XMLNamespace, true
	}
	uri, ok := namespaces[prefix]
	return uri, ok
}
