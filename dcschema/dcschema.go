// Package dcschema maps the meemoo descriptive metadata profile: a flat
// record of DCMI terms enriched with schema.org properties. Free-text fields
// repeat per language and every repeated field must carry the default Dutch
// entry exactly once.
package dcschema

import (
	"io"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/langstring"
	"github.com/meemoo/earkmodels/xmltree"
)

// DefaultLang is the language every multilingual field must provide.
const DefaultLang = "nl"

var rootName = xmltree.QName{Local: "metadata"}

// Document is a parsed descriptive metadata record.
type Document struct {
	Source string

	Titles        langstring.Strings
	Alternatives  langstring.Strings
	Descriptions  langstring.Strings
	Abstracts     langstring.Strings
	RightsHolders langstring.Strings
	Genres        langstring.Strings

	Identifier string
	Format     string
	Type       string

	Created   EDTF
	Issued    *EDTF
	Available *string

	Creators     []Role
	Contributors []Role
	Publishers   []Role

	Temporals   langstring.Strings
	Subjects    langstring.Strings
	Rights      langstring.Strings
	ArtMediums  langstring.Strings
	Artforms    langstring.Strings
	CreditTexts langstring.Strings

	Spatials  []string
	Mediums   []string
	Licenses  []string
	Languages []string

	Extent   *string
	Duration *string

	Height *QuantitativeValue
	Width  *QuantitativeValue
	Depth  *QuantitativeValue
	Weight *QuantitativeValue

	IsPartOf []CreativeWork
}

// Title returns the default-language title.
func (d Document) Title() string {
	v, _ := d.Titles.Get(DefaultLang)
	return v
}

// Description returns the default-language description.
func (d Document) Description() string {
	v, _ := d.Descriptions.Get(DefaultLang)
	return v
}

// ParseFile reads and maps a descriptive record from disk.
func ParseFile(path string) (Document, error) {
	root, err := xmltree.ParseFile(path)
	if err != nil {
		return Document{}, err
	}
	return FromNode(root)
}

// Parse reads and maps a descriptive record from a reader.
func Parse(r io.Reader, source string) (Document, error) {
	root, err := xmltree.Parse(r, source)
	if err != nil {
		return Document{}, err
	}
	return FromNode(root)
}

// FromNode maps an already parsed tree rooted at an unqualified metadata
// element.
func FromNode(root *xmltree.Node) (Document, error) {
	if root.Name() != rootName {
		return Document{}, earkmodels.Issues{{
			Path:    root.Path(),
			Code:    earkmodels.CodeUnknownElement,
			Message: "expected a metadata record",
			Hint:    root.Name().String(),
			Source:  root.Source(),
		}}
	}

	titles, errTitles := langstring.CollectUniqueDefault(root, elTitle, DefaultLang)
	alternatives, errAlt := langstring.CollectUnique(root, elAlternative)
	descriptions, errDesc := langstring.CollectUniqueDefault(root, elDescription, DefaultLang)
	abstracts, errAbs := collectUniqueDefaultIfPresent(root, elAbstract)
	rightsHolders, errRH := collectUniqueDefaultIfPresent(root, elRightsHolder)
	genres, errGenres := collectUniqueDefaultIfPresent(root, elGenre)

	identifier, errID := decode.ChildText(root, elIdentifier)
	format, errFormat := decode.ChildText(root, elFormat)
	typ, errType := decode.ChildText(root, elType)

	created, errCreated := requiredEDTF(root, elCreated)
	issued, errIssued := optionalEDTF(root, elIssued)

	temporals, errTemp := langstring.Collect(root, elTemporal)
	subjects, errSubj := langstring.Collect(root, elSubject)
	rights, errRights := langstring.Collect(root, elRights)
	artMediums, errArtM := langstring.Collect(root, elArtMedium)
	artforms, errArtf := langstring.Collect(root, elArtform)
	creditTexts, errCredit := langstring.Collect(root, elCreditText)

	// Credits occur under both the schema.org and the DCMI namespaces.
	creators, errCreators := collectRoles(root, elSchemaCreator, elCreator)
	contributors, errContrib := collectRoles(root, elSchemaContrib, elContributor)
	publishers, errPub := collectRoles(root, elSchemaPub, elPublisher)

	height, errHeight := optionalQuantitativeValue(root, elHeight)
	width, errWidth := optionalQuantitativeValue(root, elWidth)
	depth, errDepth := optionalQuantitativeValue(root, elDepth)
	weight, errWeight := optionalQuantitativeValue(root, elWeight)

	schemaPartOf, errSPO := decode.Collect(root, elSchemaPartOf, parseIsPartOf)
	dctermsPartOf, errIPO := decode.Collect(root, elIsPartOf, parseIsPartOf)
	isPartOf := append(schemaPartOf, dctermsPartOf...)

	if err := earkmodels.Merge(
		errTitles, errAlt, errDesc, errAbs, errRH, errGenres,
		errID, errFormat, errType,
		errCreated, errIssued,
		errTemp, errSubj, errRights, errArtM, errArtf, errCredit,
		errCreators, errContrib, errPub,
		errHeight, errWidth, errDepth, errWeight,
		errSPO, errIPO,
	); err != nil {
		return Document{}, err
	}

	d := Document{
		Source:        root.Source(),
		Titles:        titles,
		Alternatives:  alternatives,
		Descriptions:  descriptions,
		Abstracts:     abstracts,
		RightsHolders: rightsHolders,
		Genres:        genres,
		Identifier:    identifier,
		Format:        format,
		Type:          typ,
		Created:       created,
		Issued:        issued,
		Creators:      creators,
		Contributors:  contributors,
		Publishers:    publishers,
		Temporals:     temporals,
		Subjects:      subjects,
		Rights:        rights,
		ArtMediums:    artMediums,
		Artforms:      artforms,
		CreditTexts:   creditTexts,
		Spatials:      decode.ChildTexts(root, elSpatial),
		Mediums:       decode.ChildTexts(root, elMedium),
		Licenses:      decode.ChildTexts(root, elLicense),
		Languages:     decode.ChildTexts(root, elLanguage),
		Height:        height,
		Width:         width,
		Depth:         depth,
		Weight:        weight,
		IsPartOf:      isPartOf,
	}
	if v, ok := decode.OptionalChildText(root, elExtent); ok {
		d.Extent = &v
	}
	if v, ok := decode.OptionalChildText(root, elAvailable); ok {
		d.Available = &v
	}
	if v, ok := decode.OptionalChildText(root, elDuration); ok {
		d.Duration = &v
	}
	return d, nil
}

func collectRoles(n *xmltree.Node, schemaName, dctermsName xmltree.QName) ([]Role, error) {
	a, errA := decode.Collect(n, schemaName, parseRole)
	b, errB := decode.Collect(n, dctermsName, parseRole)
	return append(a, b...), earkmodels.Merge(errA, errB)
}

// collectUniqueDefaultIfPresent applies the default-language rule only when
// the field occurs at all; titles and descriptions are mandatory, these are
// not.
func collectUniqueDefaultIfPresent(n *xmltree.Node, name xmltree.QName) (langstring.Strings, error) {
	if _, ok := n.Find(name); !ok {
		return nil, nil
	}
	return langstring.CollectUniqueDefault(n, name, DefaultLang)
}
