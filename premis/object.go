package premis

import (
	"github.com/google/uuid"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// Identifier type literals used by the meemoo archive. The identifier type is
// free text in PREMIS itself; these are the values the profile assigns
// meaning to.
const (
	IdentifierTypeUUID    = "UUID"
	IdentifierTypePID     = "MEEMOO-PID"
	IdentifierTypePrimary = "MEEMOO-LOCAL-ID"
	IdentifierTypeORID    = "MEEMOO-OR-ID"
)

// ObjectIdentifier names an object within some identification scheme.
type ObjectIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	SimpleLink *string
}

func (id ObjectIdentifier) IsUUID() bool    { return id.Type.Text == IdentifierTypeUUID }
func (id ObjectIdentifier) IsPID() bool     { return id.Type.Text == IdentifierTypePID }
func (id ObjectIdentifier) IsPrimary() bool { return id.Type.Text == IdentifierTypePrimary }

// AsUUID parses the identifier value as an RFC 4122 UUID. It reports false
// when the identifier is not of type UUID or the value does not parse.
func (id ObjectIdentifier) AsUUID() (uuid.UUID, bool) {
	if !id.IsUUID() {
		return uuid.UUID{}, false
	}
	u, err := uuid.Parse(id.Value)
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}

// Identifiers is the identifier list of a single object.
type Identifiers []ObjectIdentifier

// UUID returns the first UUID-typed identifier.
func (ids Identifiers) UUID() (uuid.UUID, bool) {
	for _, id := range ids {
		if u, ok := id.AsUUID(); ok {
			return u, true
		}
	}
	return uuid.UUID{}, false
}

// PID returns the first meemoo PID value.
func (ids Identifiers) PID() (string, bool) {
	for _, id := range ids {
		if id.IsPID() {
			return id.Value, true
		}
	}
	return "", false
}

// Primary returns the first local primary identifier value.
func (ids Identifiers) Primary() (string, bool) {
	for _, id := range ids {
		if id.IsPrimary() {
			return id.Value, true
		}
	}
	return "", false
}

// SignificantProperties records a characteristic of the object that must be
// preserved. Extension children are kept verbatim for downstream consumers.
type SignificantProperties struct {
	Type      *StringPlusAuthority
	Value     *string
	Extension []*xmltree.Node
}

// Fixity is one message digest over the object's content.
type Fixity struct {
	Algorithm  StringPlusAuthority
	Digest     string
	Originator *StringPlusAuthority
}

// FormatDesignation names a format directly.
type FormatDesignation struct {
	Name    StringPlusAuthority
	Version *string
}

// FormatRegistry points into an external format registry such as PRONOM.
type FormatRegistry struct {
	Name StringPlusAuthority
	Key  StringPlusAuthority
	Role *StringPlusAuthority
}

// Format identifies the object's format by designation, registry entry, or
// both. At least one of the two must be present.
type Format struct {
	Designation *FormatDesignation
	Registry    *FormatRegistry
	Notes       []string
}

// ObjectCharacteristics holds the technical properties of a file or
// bitstream.
type ObjectCharacteristics struct {
	Fixities []Fixity
	Size     *int64
	Formats  []Format
}

// OriginalName is the name of the object as submitted.
type OriginalName struct {
	Value      string
	SimpleLink *string
}

// ContentLocation points at the object's content within storage.
type ContentLocation struct {
	Type       StringPlusAuthority
	Value      string
	SimpleLink *string
}

// Storage describes where and on what medium the object is stored.
type Storage struct {
	ContentLocation *ContentLocation
	Medium          *StringPlusAuthority
}

// RelatedObjectIdentifier names the object at the other end of a
// relationship.
type RelatedObjectIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	SimpleLink *string
}

// RelatedEventIdentifier names an event associated with a relationship.
type RelatedEventIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	SimpleLink *string
}

// Relationship links the object to another object, optionally via events.
type Relationship struct {
	Type           StringPlusAuthority
	SubType        StringPlusAuthority
	RelatedObjects []RelatedObjectIdentifier
	RelatedEvents  []RelatedEventIdentifier
}

// RelatedObjectUUID returns the first related object identifier of type UUID,
// parsed.
func (r Relationship) RelatedObjectUUID() (uuid.UUID, bool) {
	for _, ro := range r.RelatedObjects {
		if ro.Type.Text != IdentifierTypeUUID {
			continue
		}
		if u, err := uuid.Parse(ro.Value); err == nil {
			return u, true
		}
	}
	return uuid.UUID{}, false
}

// Object is the sealed union of premis:object variants. The concrete type is
// selected by the expanded xsi:type discriminator on the object element.
type Object interface {
	// Identifiers returns the object's identifier list.
	Identifiers() Identifiers

	isObject()
}

// File is a premis:object carrying xsi:type premis:file.
type File struct {
	ObjectIdentifiers     Identifiers
	SignificantProperties []SignificantProperties
	Characteristics       []ObjectCharacteristics
	OriginalName          *OriginalName
	Storages              []Storage
	Relationships         []Relationship
}

// Representation is a premis:object carrying xsi:type premis:representation.
type Representation struct {
	ObjectIdentifiers     Identifiers
	SignificantProperties []SignificantProperties
	OriginalName          *OriginalName
	Storages              []Storage
	Relationships         []Relationship
}

// IntellectualEntity is a premis:object carrying xsi:type
// premis:intellectualEntity.
type IntellectualEntity struct {
	ObjectIdentifiers     Identifiers
	SignificantProperties []SignificantProperties
	OriginalName          *OriginalName
	Relationships         []Relationship
}

// Bitstream is a premis:object carrying xsi:type premis:bitstream.
type Bitstream struct {
	ObjectIdentifiers     Identifiers
	SignificantProperties []SignificantProperties
	Characteristics       []ObjectCharacteristics
	Storages              []Storage
	Relationships         []Relationship
}

func (File) isObject()               {}
func (Representation) isObject()     {}
func (IntellectualEntity) isObject() {}
func (Bitstream) isObject()          {}

func (o File) Identifiers() Identifiers               { return o.ObjectIdentifiers }
func (o Representation) Identifiers() Identifiers     { return o.ObjectIdentifiers }
func (o IntellectualEntity) Identifiers() Identifiers { return o.ObjectIdentifiers }
func (o Bitstream) Identifiers() Identifiers          { return o.ObjectIdentifiers }

func parseObject(n *xmltree.Node) (Object, error) {
	xsiType, ok := n.QAttr(xmltree.XSIType)
	if !ok || xsiType == "" {
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/@xsi:type",
			Code:    earkmodels.CodeDiscriminatorMissing,
			Message: "object requires an xsi:type discriminator",
			Source:  n.Source(),
		}}
	}
	switch xsiType {
	case typeFile:
		return parseFile(n)
	case typeRepresentation:
		return parseRepresentation(n)
	case typeIntellectualEntity:
		return parseIntellectualEntity(n)
	case typeBitstream:
		return parseBitstream(n)
	default:
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/@xsi:type",
			Code:    earkmodels.CodeDiscriminatorUnknown,
			Message: "unknown object type",
			Hint:    xsiType,
			Source:  n.Source(),
			Params: map[string]any{
				"allowed": []string{typeFile, typeRepresentation, typeIntellectualEntity, typeBitstream},
				"got":     xsiType,
			},
		}}
	}
}

func parseFile(n *xmltree.Node) (File, error) {
	var o File
	ids, errIDs := parseObjectIdentifiers(n)
	sps, errSPs := decode.Collect(n, elSignificantProperties, parseSignificantProperties)
	chs, errChs := decode.Collect(n, elObjectCharacteristics, parseObjectCharacteristics)
	on, errON := parseOriginalName(n)
	sts, errSts := decode.Collect(n, elStorage, parseStorage)
	rels, errRels := decode.Collect(n, elRelationship, parseRelationship)
	if err := earkmodels.Merge(errIDs, errSPs, errChs, errON, errSts, errRels); err != nil {
		return File{}, err
	}
	o = File{
		ObjectIdentifiers:     ids,
		SignificantProperties: sps,
		Characteristics:       chs,
		OriginalName:          on,
		Storages:              sts,
		Relationships:         rels,
	}
	return o, nil
}

func parseRepresentation(n *xmltree.Node) (Representation, error) {
	ids, errIDs := parseObjectIdentifiers(n)
	sps, errSPs := decode.Collect(n, elSignificantProperties, parseSignificantProperties)
	on, errON := parseOriginalName(n)
	sts, errSts := decode.Collect(n, elStorage, parseStorage)
	rels, errRels := decode.Collect(n, elRelationship, parseRelationship)
	if err := earkmodels.Merge(errIDs, errSPs, errON, errSts, errRels); err != nil {
		return Representation{}, err
	}
	return Representation{
		ObjectIdentifiers:     ids,
		SignificantProperties: sps,
		OriginalName:          on,
		Storages:              sts,
		Relationships:         rels,
	}, nil
}

func parseIntellectualEntity(n *xmltree.Node) (IntellectualEntity, error) {
	ids, errIDs := parseObjectIdentifiers(n)
	sps, errSPs := decode.Collect(n, elSignificantProperties, parseSignificantProperties)
	on, errON := parseOriginalName(n)
	rels, errRels := decode.Collect(n, elRelationship, parseRelationship)
	if err := earkmodels.Merge(errIDs, errSPs, errON, errRels); err != nil {
		return IntellectualEntity{}, err
	}
	return IntellectualEntity{
		ObjectIdentifiers:     ids,
		SignificantProperties: sps,
		OriginalName:          on,
		Relationships:         rels,
	}, nil
}

func parseBitstream(n *xmltree.Node) (Bitstream, error) {
	ids, errIDs := parseObjectIdentifiers(n)
	sps, errSPs := decode.Collect(n, elSignificantProperties, parseSignificantProperties)
	chs, errChs := decode.Collect(n, elObjectCharacteristics, parseObjectCharacteristics)
	sts, errSts := decode.Collect(n, elStorage, parseStorage)
	rels, errRels := decode.Collect(n, elRelationship, parseRelationship)
	if err := earkmodels.Merge(errIDs, errSPs, errChs, errSts, errRels); err != nil {
		return Bitstream{}, err
	}
	return Bitstream{
		ObjectIdentifiers:     ids,
		SignificantProperties: sps,
		Characteristics:       chs,
		Storages:              sts,
		Relationships:         rels,
	}, nil
}

func parseObjectIdentifiers(n *xmltree.Node) (Identifiers, error) {
	ids, err := decode.Collect(n, elObjectIdentifier, parseObjectIdentifier)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/" + elObjectIdentifier.Local,
			Code:    earkmodels.CodeRequired,
			Message: "object requires at least one objectIdentifier",
			Source:  n.Source(),
		}}
	}
	return ids, nil
}

func parseObjectIdentifier(n *xmltree.Node) (ObjectIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elObjectIdentifierType)
	value, errValue := decode.ChildText(n, elObjectIdentifierValue)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return ObjectIdentifier{}, err
	}
	return ObjectIdentifier{
		Type:       typ,
		Value:      value,
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}

func parseSignificantProperties(n *xmltree.Node) (SignificantProperties, error) {
	sp := SignificantProperties{
		Type:      optionalStringPlusAuthority(n, elSignificantPropertiesType),
		Extension: n.FindAll(elSignificantPropertiesExt),
	}
	if v, ok := decode.OptionalChildText(n, elSignificantPropertiesValue); ok {
		sp.Value = &v
	}
	return sp, nil
}

func parseObjectCharacteristics(n *xmltree.Node) (ObjectCharacteristics, error) {
	fixities, errFix := decode.Collect(n, elFixity, parseFixity)
	formats, errFmt := decode.Collect(n, elFormat, parseFormat)
	size, sizeOK, errSize := decode.OptionalChildInt64(n, elSize)
	if err := earkmodels.Merge(errFix, errFmt, errSize); err != nil {
		return ObjectCharacteristics{}, err
	}
	oc := ObjectCharacteristics{Fixities: fixities, Formats: formats}
	if sizeOK {
		oc.Size = &size
	}
	if len(oc.Formats) == 0 {
		return ObjectCharacteristics{}, earkmodels.Issues{{
			Path:    n.Path() + "/" + elFormat.Local,
			Code:    earkmodels.CodeRequired,
			Message: "objectCharacteristics requires at least one format",
			Source:  n.Source(),
		}}
	}
	return oc, nil
}

func parseFixity(n *xmltree.Node) (Fixity, error) {
	alg, errAlg := requiredStringPlusAuthority(n, elMessageDigestAlgorithm)
	digest, errDigest := decode.ChildText(n, elMessageDigest)
	if err := earkmodels.Merge(errAlg, errDigest); err != nil {
		return Fixity{}, err
	}
	return Fixity{
		Algorithm:  alg,
		Digest:     digest,
		Originator: optionalStringPlusAuthority(n, elMessageDigestOriginator),
	}, nil
}

func parseFormat(n *xmltree.Node) (Format, error) {
	var (
		f   Format
		err error
	)
	if dn, ok := n.Find(elFormatDesignation); ok {
		d, derr := parseFormatDesignation(dn)
		err = earkmodels.Merge(err, derr)
		f.Designation = &d
	}
	if rn, ok := n.Find(elFormatRegistry); ok {
		r, rerr := parseFormatRegistry(rn)
		err = earkmodels.Merge(err, rerr)
		f.Registry = &r
	}
	f.Notes = decode.ChildTexts(n, elFormatNote)
	if err != nil {
		return Format{}, err
	}
	if f.Designation == nil && f.Registry == nil {
		return Format{}, earkmodels.Issues{{
			Path:    n.Path(),
			Code:    earkmodels.CodeRequired,
			Message: "format requires a formatDesignation or a formatRegistry",
			Source:  n.Source(),
		}}
	}
	return f, nil
}

func parseFormatDesignation(n *xmltree.Node) (FormatDesignation, error) {
	name, err := requiredStringPlusAuthority(n, elFormatName)
	if err != nil {
		return FormatDesignation{}, err
	}
	d := FormatDesignation{Name: name}
	if v, ok := decode.OptionalChildText(n, elFormatVersion); ok {
		d.Version = &v
	}
	return d, nil
}

func parseFormatRegistry(n *xmltree.Node) (FormatRegistry, error) {
	name, errName := requiredStringPlusAuthority(n, elFormatRegistryName)
	key, errKey := requiredStringPlusAuthority(n, elFormatRegistryKey)
	if err := earkmodels.Merge(errName, errKey); err != nil {
		return FormatRegistry{}, err
	}
	return FormatRegistry{
		Name: name,
		Key:  key,
		Role: optionalStringPlusAuthority(n, elFormatRegistryRole),
	}, nil
}

func parseOriginalName(n *xmltree.Node) (*OriginalName, error) {
	child, ok := n.Find(elOriginalName)
	if !ok {
		return nil, nil
	}
	return &OriginalName{
		Value:      child.Text(),
		SimpleLink: decode.OptionalAttr(child, "simpleLink"),
	}, nil
}

func parseStorage(n *xmltree.Node) (Storage, error) {
	var s Storage
	if cn, ok := n.Find(elContentLocation); ok {
		cl, err := parseContentLocation(cn)
		if err != nil {
			return Storage{}, err
		}
		s.ContentLocation = &cl
	}
	s.Medium = optionalStringPlusAuthority(n, elStorageMedium)
	return s, nil
}

func parseContentLocation(n *xmltree.Node) (ContentLocation, error) {
	typ, errType := requiredStringPlusAuthority(n, elContentLocationType)
	value, errValue := decode.ChildText(n, elContentLocationValue)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return ContentLocation{}, err
	}
	return ContentLocation{
		Type:       typ,
		Value:      value,
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}

func parseRelationship(n *xmltree.Node) (Relationship, error) {
	typ, errType := requiredStringPlusAuthority(n, elRelationshipType)
	subType, errSub := requiredStringPlusAuthority(n, elRelationshipSubType)
	objects, errObjs := decode.Collect(n, elRelatedObjectIdentifier, parseRelatedObjectIdentifier)
	events, errEvts := decode.Collect(n, elRelatedEventIdentifier, parseRelatedEventIdentifier)
	if err := earkmodels.Merge(errType, errSub, errObjs, errEvts); err != nil {
		return Relationship{}, err
	}
	if len(objects) == 0 {
		return Relationship{}, earkmodels.Issues{{
			Path:    n.Path() + "/" + elRelatedObjectIdentifier.Local,
			Code:    earkmodels.CodeRequired,
			Message: "relationship requires at least one relatedObjectIdentifier",
			Source:  n.Source(),
		}}
	}
	return Relationship{
		Type:           typ,
		SubType:        subType,
		RelatedObjects: objects,
		RelatedEvents:  events,
	}, nil
}

func parseRelatedObjectIdentifier(n *xmltree.Node) (RelatedObjectIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elRelatedObjectIdentifierType)
	value, errValue := decode.ChildText(n, elRelatedObjectIdentifierVal)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return RelatedObjectIdentifier{}, err
	}
	return RelatedObjectIdentifier{
		Type:       typ,
		Value:      value,
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}

func parseRelatedEventIdentifier(n *xmltree.Node) (RelatedEventIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elRelatedEventIdentifierType)
	value, errValue := decode.ChildText(n, elRelatedEventIdentifierVal)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return RelatedEventIdentifier{}, err
	}
	return RelatedEventIdentifier{
		Type:       typ,
		Value:      value,
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}
