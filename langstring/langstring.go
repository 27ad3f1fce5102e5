// Package langstring implements language-tagged text values and the two
// collection invariants that recur across the descriptive profiles: at most
// one value per language tag, and a mandatory entry for a designated default
// language.
package langstring

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	earkmodels "github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/xmltree"
)

// LangString is one text value tagged with its xml:lang attribute. A
// language-tagged string without a language is meaningless in this model, so
// decoding fails when the attribute is missing.
type LangString struct {
	Lang  string
	Value string
}

// Strings is an ordered collection of language-tagged values.
type Strings []LangString

// Get returns the first value carried by the given language tag.
func (s Strings) Get(lang string) (string, bool) {
	for _, ls := range s {
		if ls.Lang == lang {
			return ls.Value, true
		}
	}
	return "", false
}

// Has reports whether any entry carries the given language tag.
func (s Strings) Has(lang string) bool {
	_, ok := s.Get(lang)
	return ok
}

// Parse decodes one language-tagged element. The reserved xml:lang attribute
// is mandatory and must be a syntactically valid BCP 47 tag; the text may be
// empty.
func Parse(n *xmltree.Node) (LangString, error) {
	lang, ok := n.QAttr(xmltree.XMLLang)
	if !ok {
		return LangString{}, earkmodels.Issues{{
			Path:    n.Path() + "/@xml:lang",
			Code:    earkmodels.CodeRequired,
			Message: "language-tagged element is missing xml:lang",
			Source:  n.Source(),
		}}
	}
	if _, err := language.Parse(lang); err != nil {
		return LangString{}, earkmodels.Issues{{
			Path:    n.Path() + "/@xml:lang",
			Code:    earkmodels.CodeInvalidFormat,
			Message: "xml:lang is not a valid BCP 47 language tag",
			Hint:    lang,
			Source:  n.Source(),
			Cause:   err,
		}}
	}
	return LangString{Lang: lang, Value: n.Text()}, nil
}

// Collect decodes every child element with the given name into an ordered
// collection without any cross-entry constraint.
func Collect(n *xmltree.Node, name xmltree.QName) (Strings, error) {
	children := n.FindAll(name)
	out := make(Strings, 0, len(children))
	for _, child := range children {
		ls, err := Parse(child)
		if err != nil {
			return nil, err
		}
		out = append(out, ls)
	}
	return out, nil
}

// CollectUnique decodes a collection constrained to at most one entry per
// language tag. Every duplicated tag is reported in a single issue.
func CollectUnique(n *xmltree.Node, name xmltree.QName) (Strings, error) {
	out, err := Collect(n, name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]int, len(out))
	for _, ls := range out {
		seen[ls.Lang]++
	}
	var dups []string
	for lang, count := range seen {
		if count > 1 {
			dups = append(dups, lang)
		}
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/" + name.Local,
			Code:    earkmodels.CodeDuplicateLang,
			Message: "duplicate language tags: " + strings.Join(dups, ", "),
			Source:  n.Source(),
			Params:  map[string]any{"duplicated": dups},
		}}
	}
	return out, nil
}

// CollectUniqueDefault decodes a unique-language collection that must also
// contain an entry for the designated default language.
func CollectUniqueDefault(n *xmltree.Node, name xmltree.QName, defaultLang string) (Strings, error) {
	out, err := CollectUnique(n, name)
	if err != nil {
		return nil, err
	}
	if !out.Has(defaultLang) {
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/" + name.Local,
			Code:    earkmodels.CodeMissingDefaultLang,
			Message: "no entry for default language " + defaultLang,
			Source:  n.Source(),
			Params:  map[string]any{"default": defaultLang},
		}}
	}
	return out, nil
}
