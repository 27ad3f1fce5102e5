package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xlink"
	"github.com/meemoo/earkmodels/xmltree"
)

// Genre categorizes the resource by form or style.
type Genre struct {
	Type         *string
	UsagePrimary bool
	DisplayLabel *string
	Value        string
	LanguageAttrs
	AuthorityAttrs
}

func parseGenre(n *xmltree.Node) (Genre, error) {
	usage, err := decode.MarkerAttr(n, "usage", "primary")
	if err != nil {
		return Genre{}, err
	}
	return Genre{
		Type:           decode.OptionalAttr(n, "type"),
		UsagePrimary:   usage,
		DisplayLabel:   decode.OptionalAttr(n, "displayLabel"),
		Value:          n.Text(),
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
	}, nil
}

// Identifier is an external identifier of the resource. The invalid marker
// flags superseded identifiers that are kept for reference.
type Identifier struct {
	Type         *string
	Invalid      bool
	DisplayLabel *string
	Value        string
	LanguageAttrs
}

func parseIdentifier(n *xmltree.Node) (Identifier, error) {
	invalid, err := decode.MarkerAttr(n, "invalid", "yes")
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{
		Type:          decode.OptionalAttr(n, "type"),
		Invalid:       invalid,
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		Value:         n.Text(),
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}

// Note is a free-form annotation.
type Note struct {
	Type         *string
	DisplayLabel *string
	Value        string
	XLink        xlink.SimpleLink
	LanguageAttrs
}

func parseNote(n *xmltree.Node) (Note, error) {
	link, err := xlink.Parse(n)
	if err != nil {
		return Note{}, err
	}
	return Note{
		Type:          decode.OptionalAttr(n, "type"),
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		Value:         n.Text(),
		XLink:         link,
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}

// Abstract summarizes the content of the resource. Shareable defaults to
// restricted: only an explicit shareable="no" is accepted.
type Abstract struct {
	Type         *string
	ShareableNo  bool
	DisplayLabel *string
	Value        string
	LanguageAttrs
}

func parseAbstract(n *xmltree.Node) (Abstract, error) {
	shareable, err := decode.MarkerAttr(n, "shareable", "no")
	if err != nil {
		return Abstract{}, err
	}
	return Abstract{
		Type:          decode.OptionalAttr(n, "type"),
		ShareableNo:   shareable,
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		Value:         n.Text(),
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}

// TypeOfResource states the broad category of the resource content.
type TypeOfResource struct {
	Collection   bool
	Manuscript   bool
	UsagePrimary bool
	Value        string
	LanguageAttrs
}

func parseTypeOfResource(n *xmltree.Node) (TypeOfResource, error) {
	collection, errC := decode.MarkerAttr(n, "collection", "yes")
	manuscript, errM := decode.MarkerAttr(n, "manuscript", "yes")
	usage, errU := decode.MarkerAttr(n, "usage", "primary")
	if err := earkmodels.Merge(errC, errM, errU); err != nil {
		return TypeOfResource{}, err
	}
	return TypeOfResource{
		Collection:    collection,
		Manuscript:    manuscript,
		UsagePrimary:  usage,
		Value:         n.Text(),
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}

// AccessCondition states restrictions on access to or use of the resource.
type AccessCondition struct {
	Type         *string
	DisplayLabel *string
	Value        string
	XLink        xlink.SimpleLink
	LanguageAttrs
}

func parseAccessCondition(n *xmltree.Node) (AccessCondition, error) {
	link, err := xlink.Parse(n)
	if err != nil {
		return AccessCondition{}, err
	}
	return AccessCondition{
		Type:          decode.OptionalAttr(n, "type"),
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		Value:         n.Text(),
		XLink:         link,
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}

// Classification places the resource in a classification scheme.
type Classification struct {
	Edition      *string
	DisplayLabel *string
	Value        string
	LanguageAttrs
	AuthorityAttrs
}

func parseClassification(n *xmltree.Node) (Classification, error) {
	return Classification{
		Edition:        decode.OptionalAttr(n, "edition"),
		DisplayLabel:   decode.OptionalAttr(n, "displayLabel"),
		Value:          n.Text(),
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
	}, nil
}

// TargetAudience states the intended audience of the resource.
type TargetAudience struct {
	DisplayLabel *string
	Value        string
	LanguageAttrs
	AuthorityAttrs
}

func parseTargetAudience(n *xmltree.Node) (TargetAudience, error) {
	return TargetAudience{
		DisplayLabel:   decode.OptionalAttr(n, "displayLabel"),
		Value:          n.Text(),
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
	}, nil
}

// TableOfContents lists the contained parts of the resource.
type TableOfContents struct {
	Type         *string
	DisplayLabel *string
	Value        string
	LanguageAttrs
}

func parseTableOfContents(n *xmltree.Node) (TableOfContents, error) {
	return TableOfContents{
		Type:          decode.OptionalAttr(n, "type"),
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		Value:         n.Text(),
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}
