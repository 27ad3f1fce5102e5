package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

var (
	languageTermTypes       = []string{"code", "text"}
	languageTermAuthorities = []string{"rfc3066", "iso639-2b", "iso639-3", "rfc4646", "rfc5646"}
)

// LanguageTerm names a language as a code from one of the recognized
// authorities, or as text.
type LanguageTerm struct {
	Type      *string
	Authority *string
	Value     string
	LanguageAttrs
}

// ScriptTerm names a writing script.
type ScriptTerm struct {
	Type      *string
	Authority *string
	Value     string
	LanguageAttrs
}

// Language records a language of the resource, or of a part of it.
type Language struct {
	ObjectPart   *string
	DisplayLabel *string
	UsagePrimary bool
	Terms        []LanguageTerm
	ScriptTerms  []ScriptTerm
}

// Code returns the first code-typed language term value, or the empty string.
func (l Language) Code() string {
	for _, t := range l.Terms {
		if t.Type != nil && *t.Type == "code" {
			return t.Value
		}
	}
	return ""
}

func parseLanguage(n *xmltree.Node) (Language, error) {
	usage, errUse := decode.MarkerAttr(n, "usage", "primary")
	terms, errTerms := decode.Collect(n, elLanguageTerm, parseLanguageTerm)
	scripts, errScripts := decode.Collect(n, elScriptTerm, parseScriptTerm)
	if err := earkmodels.Merge(errUse, errTerms, errScripts); err != nil {
		return Language{}, err
	}
	return Language{
		ObjectPart:   decode.OptionalAttr(n, "objectPart"),
		DisplayLabel: decode.OptionalAttr(n, "displayLabel"),
		UsagePrimary: usage,
		Terms:        terms,
		ScriptTerms:  scripts,
	}, nil
}

func parseLanguageTerm(n *xmltree.Node) (LanguageTerm, error) {
	typ, hasType, errType := decode.EnumAttr(n, "type", languageTermTypes...)
	authority, hasAuth, errAuth := decode.EnumAttr(n, "authority", languageTermAuthorities...)
	if err := earkmodels.Merge(errType, errAuth); err != nil {
		return LanguageTerm{}, err
	}
	lt := LanguageTerm{Value: n.Text(), LanguageAttrs: parseLanguageAttrs(n)}
	if hasType {
		lt.Type = &typ
	}
	if hasAuth {
		lt.Authority = &authority
	}
	return lt, nil
}

func parseScriptTerm(n *xmltree.Node) (ScriptTerm, error) {
	typ, hasType, err := decode.EnumAttr(n, "type", languageTermTypes...)
	if err != nil {
		return ScriptTerm{}, err
	}
	st := ScriptTerm{
		Value:         n.Text(),
		Authority:     decode.OptionalAttr(n, "authority"),
		LanguageAttrs: parseLanguageAttrs(n),
	}
	if hasType {
		st.Type = &typ
	}
	return st, nil
}
