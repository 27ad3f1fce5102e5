package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

var (
	issuanceValues = []string{
		"continuing", "monographic", "single unit",
		"multipart monograph", "serial", "integrating resource",
	}
	placeTermTypes       = []string{"code", "text"}
	placeTermAuthorities = []string{"marcgac", "marccountry", "iso3166"}
)

// PlaceTerm names a place of origin, either as text or as a code from one of
// the recognized geographic authorities.
type PlaceTerm struct {
	Type      *string
	Authority *string
	Value     string
	LanguageAttrs
}

// Place wraps the placeTerm list of an originInfo.
type Place struct {
	Supplied bool
	Terms    []PlaceTerm
}

// OriginInfo records where, when and by whom the resource came to be.
type OriginInfo struct {
	DisplayLabel *string
	EventType    *string
	LanguageAttrs

	Places         []Place
	Publishers     []StringPlusLanguage
	DatesIssued    []Date
	DatesCreated   []Date
	DatesCaptured  []Date
	DatesValid     []Date
	DatesModified  []Date
	CopyrightDates []Date
	DatesOther     []Date
	Editions       []StringPlusLanguage
	Issuances      []StringPlusLanguage
	Frequencies    []StringPlusAuthority
}

// DateCreated returns the first dateCreated value, or the empty string.
func (o OriginInfo) DateCreated() string {
	if len(o.DatesCreated) == 0 {
		return ""
	}
	return o.DatesCreated[0].Value
}

func parseOriginInfo(n *xmltree.Node) (OriginInfo, error) {
	o := OriginInfo{
		DisplayLabel:  decode.OptionalAttr(n, "displayLabel"),
		EventType:     decode.OptionalAttr(n, "eventType"),
		LanguageAttrs: parseLanguageAttrs(n),
	}
	var errs []error
	for _, child := range n.Children() {
		var err error
		switch child.Name() {
		case elPlace:
			var p Place
			p, err = parsePlace(child)
			o.Places = append(o.Places, p)
		case elPublisher:
			var s StringPlusLanguage
			s, err = parseStringPlusLanguage(child)
			o.Publishers = append(o.Publishers, s)
		case elDateIssued:
			err = appendDate(&o.DatesIssued, child)
		case elDateCreated:
			err = appendDate(&o.DatesCreated, child)
		case elDateCaptured:
			err = appendDate(&o.DatesCaptured, child)
		case elDateValid:
			err = appendDate(&o.DatesValid, child)
		case elDateModified:
			err = appendDate(&o.DatesModified, child)
		case elCopyrightDate:
			err = appendDate(&o.CopyrightDates, child)
		case elDateOther:
			err = appendDate(&o.DatesOther, child)
		case elEdition:
			var s StringPlusLanguage
			s, err = parseStringPlusLanguage(child)
			o.Editions = append(o.Editions, s)
		case elIssuance:
			var v string
			v, err = decode.EnumText(child, issuanceValues...)
			if err == nil {
				o.Issuances = append(o.Issuances, StringPlusLanguage{Value: v, LanguageAttrs: parseLanguageAttrs(child)})
			}
		case elFrequency:
			var s StringPlusAuthority
			s, err = parseStringPlusAuthority(child)
			o.Frequencies = append(o.Frequencies, s)
		default:
			err = unknown(child)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := earkmodels.Merge(errs...); err != nil {
		return OriginInfo{}, err
	}
	return o, nil
}

func appendDate(dst *[]Date, n *xmltree.Node) error {
	d, err := parseDate(n)
	if err != nil {
		return err
	}
	*dst = append(*dst, d)
	return nil
}

func parsePlace(n *xmltree.Node) (Place, error) {
	supplied, errSup := decode.MarkerAttr(n, "supplied", "yes")
	terms, errTerms := decode.Collect(n, elPlaceTerm, parsePlaceTerm)
	if err := earkmodels.Merge(errSup, errTerms); err != nil {
		return Place{}, err
	}
	return Place{Supplied: supplied, Terms: terms}, nil
}

func parsePlaceTerm(n *xmltree.Node) (PlaceTerm, error) {
	typ, hasType, errType := decode.EnumAttr(n, "type", placeTermTypes...)
	authority, hasAuth, errAuth := decode.EnumAttr(n, "authority", placeTermAuthorities...)
	if err := earkmodels.Merge(errType, errAuth); err != nil {
		return PlaceTerm{}, err
	}
	pt := PlaceTerm{Value: n.Text(), LanguageAttrs: parseLanguageAttrs(n)}
	if hasType {
		pt.Type = &typ
	}
	if hasAuth {
		pt.Authority = &authority
	}
	return pt, nil
}
