package mods

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

var relatedItemTypes = []string{
	"preceding", "succeeding", "original", "host", "constituent", "series",
	"otherVersion", "otherFormat", "isReferencedBy", "references", "reviewOf",
}

// RelatedItem is a related resource described inline with the full mods
// vocabulary.
type RelatedItem struct {
	Type         *string
	OtherType    *string
	DisplayLabel *string
	Record
}

func parseRelatedItem(n *xmltree.Node) (RelatedItem, error) {
	typ, hasType, errType := decode.EnumAttr(n, "type", relatedItemTypes...)
	rec, errRec := parseRecord(n)
	if err := earkmodels.Merge(errType, errRec); err != nil {
		return RelatedItem{}, err
	}
	ri := RelatedItem{
		OtherType:    decode.OptionalAttr(n, "otherType"),
		DisplayLabel: decode.OptionalAttr(n, "displayLabel"),
		Record:       rec,
	}
	if hasType {
		ri.Type = &typ
	}
	return ri, nil
}
