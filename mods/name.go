package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

var (
	nameTypes     = []string{"personal", "corporate", "conference", "family"}
	namePartTypes = []string{"date", "family", "given", "termsOfAddress"}
	roleTermTypes = []string{"code", "text"}
)

// NamePart is one component of a structured name.
type NamePart struct {
	Type  *string
	Value string
	LanguageAttrs
}

// RoleTerm designates the relation of the name to the resource, as a code or
// as text.
type RoleTerm struct {
	Type  *string
	Value string
	LanguageAttrs
	AuthorityAttrs
}

// Role wraps the roleTerm list of a name.
type Role struct {
	Terms []RoleTerm
}

// Name describes an agent associated with the resource.
type Name struct {
	Type         *string
	UsagePrimary bool
	DisplayLabel *string
	LanguageAttrs
	AuthorityAttrs

	Parts        []NamePart
	DisplayForms []StringPlusLanguage
	Affiliations []StringPlusLanguage
	Descriptions []StringPlusLanguage
	Roles        []Role
	Etal         bool
}

// DisplayName returns the display form when present, otherwise the name parts
// joined in document order.
func (nm Name) DisplayName() string {
	if len(nm.DisplayForms) > 0 {
		return nm.DisplayForms[0].Value
	}
	out := ""
	for _, p := range nm.Parts {
		if out != "" {
			out += " "
		}
		out += p.Value
	}
	return out
}

func parseName(n *xmltree.Node) (Name, error) {
	typ, hasType, errType := decode.EnumAttr(n, "type", nameTypes...)
	usage, errUse := decode.MarkerAttr(n, "usage", "primary")

	parts, errParts := decode.Collect(n, elNamePart, parseNamePart)
	displayForms, errDF := decode.Collect(n, elDisplayForm, parseStringPlusLanguage)
	affiliations, errAff := decode.Collect(n, elAffiliation, parseStringPlusLanguage)
	descriptions, errDesc := decode.Collect(n, elDescription, parseStringPlusLanguage)
	roles, errRoles := decode.Collect(n, elRole, parseRole)
	if err := earkmodels.Merge(errType, errUse, errParts, errDF, errAff, errDesc, errRoles); err != nil {
		return Name{}, err
	}

	_, etal := n.Find(elEtal)
	nm := Name{
		UsagePrimary:   usage,
		DisplayLabel:   decode.OptionalAttr(n, "displayLabel"),
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
		Parts:          parts,
		DisplayForms:   displayForms,
		Affiliations:   affiliations,
		Descriptions:   descriptions,
		Roles:          roles,
		Etal:           etal,
	}
	if hasType {
		nm.Type = &typ
	}
	return nm, nil
}

func parseNamePart(n *xmltree.Node) (NamePart, error) {
	typ, hasType, err := decode.EnumAttr(n, "type", namePartTypes...)
	if err != nil {
		return NamePart{}, err
	}
	p := NamePart{Value: n.Text(), LanguageAttrs: parseLanguageAttrs(n)}
	if hasType {
		p.Type = &typ
	}
	return p, nil
}

func parseRole(n *xmltree.Node) (Role, error) {
	terms, err := decode.Collect(n, elRoleTerm, parseRoleTerm)
	if err != nil {
		return Role{}, err
	}
	return Role{Terms: terms}, nil
}

func parseRoleTerm(n *xmltree.Node) (RoleTerm, error) {
	typ, hasType, err := decode.EnumAttr(n, "type", roleTermTypes...)
	if err != nil {
		return RoleTerm{}, err
	}
	rt := RoleTerm{
		Value:          n.Text(),
		LanguageAttrs:  parseLanguageAttrs(n),
		AuthorityAttrs: parseAuthorityAttrs(n),
	}
	if hasType {
		rt.Type = &typ
	}
	return rt, nil
}
