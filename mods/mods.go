// Package mods maps MODS 3.x bibliographic records onto typed Go values.
// The element catalog is the closed set the meemoo profile produces; an
// element outside the catalog fails the whole record, and recognized but
// structurally rich elements such as location and part are rejected
// explicitly until a concrete need for them shows up.
package mods

import (
	"io"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/xmltree"
)

// Versions this package accepts when the record declares one.
var supportedVersions = []string{"3.0", "3.1", "3.2", "3.3", "3.4", "3.5", "3.6", "3.7"}

var rootName = Namespace.QName("mods")

// Record is the element body shared by a mods document and a relatedItem.
type Record struct {
	TitleInfos           []TitleInfo
	Names                []Name
	TypesOfResource      []TypeOfResource
	Genres               []Genre
	OriginInfos          []OriginInfo
	Languages            []Language
	PhysicalDescriptions []PhysicalDescription
	Abstracts            []Abstract
	Notes                []Note
	Subjects             []Subject
	Classifications      []Classification
	RelatedItems         []RelatedItem
	Identifiers          []Identifier
	AccessConditions     []AccessCondition
	TablesOfContents     []TableOfContents
	TargetAudiences      []TargetAudience
	RecordInfos          []RecordInfo
	Extensions           []*xmltree.Node
}

// Title returns the primary title: the first titleInfo without a type
// attribute, falling back to the first titleInfo.
func (r Record) Title() string {
	for _, ti := range r.TitleInfos {
		if ti.Type == nil {
			return ti.Title()
		}
	}
	if len(r.TitleInfos) > 0 {
		return r.TitleInfos[0].Title()
	}
	return ""
}

// IdentifierOfType returns the first identifier with the given type
// attribute.
func (r Record) IdentifierOfType(typ string) (Identifier, bool) {
	for _, id := range r.Identifiers {
		if id.Type != nil && *id.Type == typ {
			return id, true
		}
	}
	return Identifier{}, false
}

// Mods is a parsed mods:mods record.
type Mods struct {
	Source  string
	Version *string
	Record
}

// ParseFile reads and maps a MODS record from disk.
func ParseFile(path string) (Mods, error) {
	root, err := xmltree.ParseFile(path)
	if err != nil {
		return Mods{}, err
	}
	return FromNode(root)
}

// Parse reads and maps a MODS record from a reader. The source string names
// the origin for issue reporting.
func Parse(r io.Reader, source string) (Mods, error) {
	root, err := xmltree.Parse(r, source)
	if err != nil {
		return Mods{}, err
	}
	return FromNode(root)
}

// FromNode maps an already parsed tree. The root element must be mods:mods;
// a version attribute is optional but must name a known 3.x minor when
// present.
func FromNode(root *xmltree.Node) (Mods, error) {
	if root.Name() != rootName {
		return Mods{}, earkmodels.Issues{{
			Path:    root.Path(),
			Code:    earkmodels.CodeUnknownElement,
			Message: "expected a " + rootName.String() + " record",
			Hint:    root.Name().String(),
			Source:  root.Source(),
		}}
	}
	m := Mods{Source: root.Source()}
	if version, ok := root.Attr("version"); ok {
		if !memberOf(version, supportedVersions) {
			return Mods{}, earkmodels.Issues{{
				Path:    root.Path() + "/@version",
				Code:    earkmodels.CodeUnsupportedVersion,
				Message: "unsupported MODS version",
				Hint:    version,
				Source:  root.Source(),
				Params:  map[string]any{"expected": supportedVersions, "got": version},
			}}
		}
		m.Version = &version
	}
	rec, err := parseRecord(root)
	if err != nil {
		return Mods{}, err
	}
	m.Record = rec
	return m, nil
}

func parseRecord(n *xmltree.Node) (Record, error) {
	var (
		r    Record
		errs []error
	)
	for _, child := range n.Children() {
		var err error
		switch child.Name() {
		case elTitleInfo:
			var v TitleInfo
			v, err = parseTitleInfo(child)
			r.TitleInfos = append(r.TitleInfos, v)
		case elName:
			var v Name
			v, err = parseName(child)
			r.Names = append(r.Names, v)
		case elTypeOfResource:
			var v TypeOfResource
			v, err = parseTypeOfResource(child)
			r.TypesOfResource = append(r.TypesOfResource, v)
		case elGenre:
			var v Genre
			v, err = parseGenre(child)
			r.Genres = append(r.Genres, v)
		case elOriginInfo:
			var v OriginInfo
			v, err = parseOriginInfo(child)
			r.OriginInfos = append(r.OriginInfos, v)
		case elLanguage:
			var v Language
			v, err = parseLanguage(child)
			r.Languages = append(r.Languages, v)
		case elPhysicalDescription:
			var v PhysicalDescription
			v, err = parsePhysicalDescription(child)
			r.PhysicalDescriptions = append(r.PhysicalDescriptions, v)
		case elAbstract:
			var v Abstract
			v, err = parseAbstract(child)
			r.Abstracts = append(r.Abstracts, v)
		case elNote:
			var v Note
			v, err = parseNote(child)
			r.Notes = append(r.Notes, v)
		case elSubject:
			var v Subject
			v, err = parseSubject(child)
			r.Subjects = append(r.Subjects, v)
		case elClassification:
			var v Classification
			v, err = parseClassification(child)
			r.Classifications = append(r.Classifications, v)
		case elRelatedItem:
			var v RelatedItem
			v, err = parseRelatedItem(child)
			r.RelatedItems = append(r.RelatedItems, v)
		case elIdentifier:
			var v Identifier
			v, err = parseIdentifier(child)
			r.Identifiers = append(r.Identifiers, v)
		case elAccessCondition:
			var v AccessCondition
			v, err = parseAccessCondition(child)
			r.AccessConditions = append(r.AccessConditions, v)
		case elTableOfContents:
			var v TableOfContents
			v, err = parseTableOfContents(child)
			r.TablesOfContents = append(r.TablesOfContents, v)
		case elTargetAudience:
			var v TargetAudience
			v, err = parseTargetAudience(child)
			r.TargetAudiences = append(r.TargetAudiences, v)
		case elRecordInfo:
			var v RecordInfo
			v, err = parseRecordInfo(child)
			r.RecordInfos = append(r.RecordInfos, v)
		case elExtension:
			r.Extensions = append(r.Extensions, child)
		case elLocation, elPart:
			err = unsupported(child)
		default:
			err = unknown(child)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := earkmodels.Merge(errs...); err != nil {
		return Record{}, err
	}
	return r, nil
}

func memberOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
