package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// RecordIdentifier names the metadata record itself.
type RecordIdentifier struct {
	Source *string
	Value  string
	LanguageAttrs
}

// RecordInfo describes the metadata record rather than the resource.
type RecordInfo struct {
	DisplayLabel *string
	LanguageAttrs

	ContentSources       []StringPlusAuthority
	CreationDates        []Date
	ChangeDates          []Date
	Identifiers          []RecordIdentifier
	Origins              []StringPlusLanguage
	LanguagesOfCatalog   []Language
	Notes                []Note
	DescriptionStandards []StringPlusAuthority
}

func parseRecordInfo(n *xmltree.Node) (RecordInfo, error) {
	ri := RecordInfo{
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		LanguageAttrs: parseLanguageAttrs(n),
	}
	var errs []error
	for _, child := range n.Children() {
		var err error
		switch child.Name() {
		case elRecordContentSource:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			ri.ContentSources = append(ri.ContentSources, v)
		case elRecordCreationDate:
			err = appendDate(&ri.CreationDates, child)
		case elRecordChangeDate:
			err = appendDate(&ri.ChangeDates, child)
		case elRecordIdentifier:
			ri.Identifiers = append(ri.Identifiers, RecordIdentifier{
				Source:        decode.OptionalAttr(child, "source"),
				Value:         child.Text(),
				LanguageAttrs: parseLanguageAttrs(child),
			})
		case elRecordOrigin:
			var v StringPlusLanguage
			v, err = parseStringPlusLanguage(child)
			ri.Origins = append(ri.Origins, v)
		case elLanguageOfCatalog:
			var l Language
			l, err = parseLanguage(child)
			ri.LanguagesOfCatalog = append(ri.LanguagesOfCatalog, l)
		case elRecordInfoNote:
			var nt Note
			nt, err = parseNote(child)
			ri.Notes = append(ri.Notes, nt)
		case elDescriptionStandard:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			ri.DescriptionStandards = append(ri.DescriptionStandards, v)
		default:
			err = unknown(child)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := earkmodels.Merge(errs...); err != nil {
		return RecordInfo{}, err
	}
	return ri, nil
}
