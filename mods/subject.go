package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// Subject carries topical access points for the resource. The profile
// supports the textual subject children; structured subjects such as
// hierarchicalGeographic or embedded titleInfo and name are rejected rather
// than silently dropped.
type Subject struct {
	DisplayLabel *string
	UsagePrimary bool
	LanguageAttrs
	AuthorityAttrs

	Topics          []StringPlusAuthority
	Geographics     []StringPlusAuthority
	Temporals       []Date
	GeographicCodes []StringPlusAuthority
	Occupations     []StringPlusAuthority
	Genres          []StringPlusAuthority
}

func parseSubject(n *xmltree.Node) (Subject, error) {
	usage, errUse := decode.MarkerAttr(n, "usage", "primary")
	s := Subject{
		DisplayLabel:   decode.OptionalAttr(n, "displayLabel"),
		UsagePrimary:   usage,
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
	}
	errs := []error{errUse}
	for _, child := range n.Children() {
		var err error
		switch child.Name() {
		case elTopic:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			s.Topics = append(s.Topics, v)
		case elGeographic:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			s.Geographics = append(s.Geographics, v)
		case elTemporal:
			var d Date
			d, err = parseDate(child)
			s.Temporals = append(s.Temporals, d)
		case elGeographicCode:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			s.GeographicCodes = append(s.GeographicCodes, v)
		case elOccupation:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			s.Occupations = append(s.Occupations, v)
		case elGenre:
			var v StringPlusAuthority
			v, err = parseStringPlusAuthority(child)
			s.Genres = append(s.Genres, v)
		case elTitleInfo, elName, elHierarchicalGeo, elCartographics:
			err = unsupported(child)
		default:
			err = unknown(child)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := earkmodels.Merge(errs...); err != nil {
		return Subject{}, err
	}
	return s, nil
}
