package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// Extent states the size or duration of the resource.
type Extent struct {
	Unit  *string
	Value string
	LanguageAttrs
}

// PhysicalDescriptionNote is a free-form note scoped to the physical
// description.
type PhysicalDescriptionNote struct {
	Type  *string
	Value string
	LanguageAttrs
}

// PhysicalDescription groups the physical properties of the resource.
type PhysicalDescription struct {
	DisplayLabel *string
	LanguageAttrs

	Forms   []StringPlusAuthority
	Extents []Extent
	Notes   []PhysicalDescriptionNote
}

func parsePhysicalDescription(n *xmltree.Node) (PhysicalDescription, error) {
	forms, errForms := decode.Collect(n, elForm, parseStringPlusAuthority)
	extents, errExt := decode.Collect(n, elExtent, parseExtent)
	notes, errNotes := decode.Collect(n, elNote, parsePhysicalDescriptionNote)
	if err := earkmodels.Merge(errForms, errExt, errNotes); err != nil {
		return PhysicalDescription{}, err
	}
	return PhysicalDescription{
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		LanguageAttrs: parseLanguageAttrs(n),
		Forms:         forms,
		Extents:       extents,
		Notes:         notes,
	}, nil
}

func parseExtent(n *xmltree.Node) (Extent, error) {
	return Extent{
		Unit:          decode.OptionalAttr(n, "unit"),
		Value:         n.Text(),
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}

func parsePhysicalDescriptionNote(n *xmltree.Node) (PhysicalDescriptionNote, error) {
	return PhysicalDescriptionNote{
		Type:          decode.OptionalAttr(n, "type"),
		Value:         n.Text(),
		LanguageAttrs: parseLanguageAttrs(n),
	}, nil
}
