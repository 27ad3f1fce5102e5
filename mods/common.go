package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// LanguageAttrs is the attribute group MODS puts on most text-bearing
// elements.
type LanguageAttrs struct {
	Lang            *string // xml:lang
	Script          *string
	Transliteration *string
}

func parseLanguageAttrs(n *xmltree.Node) LanguageAttrs {
	a := LanguageAttrs{
		Script:          decode.OptionalAttr(n, "script"),
		Transliteration: decode.OptionalAttr(n, "transliteration"),
	}
	if v, ok := n.QAttr(xmltree.XMLLang); ok {
		a.Lang = &v
	}
	return a
}

// AuthorityAttrs is the controlled vocabulary attribute group.
type AuthorityAttrs struct {
	Authority    *string
	AuthorityURI *string
	ValueURI     *string
}

func parseAuthorityAttrs(n *xmltree.Node) AuthorityAttrs {
	return AuthorityAttrs{
		Authority:    decode.OptionalAttr(n, "authority"),
		AuthorityURI: decode.OptionalAttr(n, "authorityURI"),
		ValueURI:     decode.OptionalAttr(n, "valueURI"),
	}
}

// StringPlusLanguage is the workhorse MODS leaf: element text plus the
// language attribute group.
type StringPlusLanguage struct {
	Value string
	LanguageAttrs
}

func parseStringPlusLanguage(n *xmltree.Node) (StringPlusLanguage, error) {
	return StringPlusLanguage{Value: n.Text(), LanguageAttrs: parseLanguageAttrs(n)}, nil
}

// StringPlusAuthority extends the leaf with the authority group.
type StringPlusAuthority struct {
	Value string
	LanguageAttrs
	AuthorityAttrs
}

func parseStringPlusAuthority(n *xmltree.Node) (StringPlusAuthority, error) {
	return StringPlusAuthority{
		Value:          n.Text(),
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
	}, nil
}

// Date encodings MODS allows on its date elements.
var dateEncodings = []string{"w3cdtf", "iso8601", "marc", "temper", "edtf"}

// Date is a MODS date value with its qualifying attributes. The encoding,
// when present, comes from a closed set.
type Date struct {
	Value     string
	Encoding  *string
	Qualifier *string
	Point     *string
	KeyDate   bool
	LanguageAttrs
}

func parseDate(n *xmltree.Node) (Date, error) {
	encoding, hasEncoding, errEnc := decode.EnumAttr(n, "encoding", dateEncodings...)
	keyDate, errKey := decode.MarkerAttr(n, "keyDate", "yes")
	if err := earkmodels.Merge(errEnc, errKey); err != nil {
		return Date{}, err
	}
	d := Date{
		Value:         n.Text(),
		Qualifier:     decode.OptionalAttr(n, "qualifier"),
		Point:         decode.OptionalAttr(n, "point"),
		KeyDate:       keyDate,
		LanguageAttrs: parseLanguageAttrs(n),
	}
	if hasEncoding {
		d.Encoding = &encoding
	}
	return d, nil
}

func unsupported(n *xmltree.Node) earkmodels.Issues {
	return earkmodels.Issues{{
		Path:    n.Path(),
		Code:    earkmodels.CodeUnsupportedElement,
		Message: n.Name().String() + " is not supported by this profile",
		Source:  n.Source(),
	}}
}

func unknown(n *xmltree.Node) earkmodels.Issues {
	return earkmodels.Issues{{
		Path:    n.Path(),
		Code:    earkmodels.CodeUnknownElement,
		Message: "unknown element " + n.Name().String(),
		Source:  n.Source(),
	}}
}
