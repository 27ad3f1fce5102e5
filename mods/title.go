package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xlink"
	"github.com/meemoo/earkmodels/xmltree"
)

var titleInfoTypes = []string{"abbreviated", "translated", "alternative", "uniform"}

// TitleInfo groups the title of the resource with its qualifiers. A titleInfo
// without a type attribute is the primary title.
type TitleInfo struct {
	Type         *string
	OtherType    *string
	Supplied     bool
	UsagePrimary bool
	DisplayLabel *string
	XLink        xlink.SimpleLink
	LanguageAttrs
	AuthorityAttrs

	NonSorts    []StringPlusLanguage
	Titles      []StringPlusLanguage
	SubTitles   []StringPlusLanguage
	PartNumbers []StringPlusLanguage
	PartNames   []StringPlusLanguage
}

// Title returns the first title value, or the empty string.
func (t TitleInfo) Title() string {
	if len(t.Titles) == 0 {
		return ""
	}
	return t.Titles[0].Value
}

func parseTitleInfo(n *xmltree.Node) (TitleInfo, error) {
	typ, hasType, errType := decode.EnumAttr(n, "type", titleInfoTypes...)
	supplied, errSup := decode.MarkerAttr(n, "supplied", "yes")
	usage, errUse := decode.MarkerAttr(n, "usage", "primary")
	link, errLink := xlink.Parse(n)

	nonSorts, errNS := decode.Collect(n, elNonSort, parseStringPlusLanguage)
	titles, errT := decode.Collect(n, elTitle, parseStringPlusLanguage)
	subTitles, errST := decode.Collect(n, elSubTitle, parseStringPlusLanguage)
	partNumbers, errPN := decode.Collect(n, elPartNumber, parseStringPlusLanguage)
	partNames, errPM := decode.Collect(n, elPartName, parseStringPlusLanguage)
	if err := earkmodels.Merge(errType, errSup, errUse, errLink, errNS, errT, errST, errPN, errPM); err != nil {
		return TitleInfo{}, err
	}

	ti := TitleInfo{
		OtherType:      decode.OptionalAttr(n, "otherType"),
		Supplied:       supplied,
		UsagePrimary:   usage,
		DisplayLabel:   decode.OptionalAttr(n, "displayLabel"),
		XLink:          link,
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
		NonSorts:       nonSorts,
		Titles:         titles,
		SubTitles:      subTitles,
		PartNumbers:    partNumbers,
		PartNames:      partNames,
	}
	if hasType {
		ti.Type = &typ
	}
	return ti, nil
}
