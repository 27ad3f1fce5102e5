package dcschema

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// EDTF is a date in the Extended Date/Time Format. The declared level comes
// from the EDTF datatype vocabulary; it is not re-derived from the value.
type EDTF struct {
	Value string
	Level int
}

func parseEDTF(n *xmltree.Node) (EDTF, error) {
	d := EDTF{Value: n.Text()}
	xsiType, ok := n.QAttr(xmltree.XSIType)
	if !ok || xsiType == "" {
		return EDTF{}, earkmodels.Issues{{
			Path:    n.Path() + "/@xsi:type",
			Code:    earkmodels.CodeDiscriminatorMissing,
			Message: "date carries no EDTF level",
			Source:  n.Source(),
		}}
	}
	var level int
	switch xsiType {
	case typeEDTFLevel0:
		level = 0
	case typeEDTFLevel1:
		level = 1
	case typeEDTFLevel2:
		level = 2
	default:
		return EDTF{}, earkmodels.Issues{{
			Path:    n.Path() + "/@xsi:type",
			Code:    earkmodels.CodeDiscriminatorUnknown,
			Message: "unknown EDTF level",
			Hint:    xsiType,
			Source:  n.Source(),
			Params: map[string]any{
				"allowed": []string{typeEDTFLevel0, typeEDTFLevel1, typeEDTFLevel2},
				"got":     xsiType,
			},
		}}
	}
	d.Level = level
	return d, nil
}

func requiredEDTF(n *xmltree.Node, name xmltree.QName) (EDTF, error) {
	child, err := decode.RequiredChild(n, name)
	if err != nil {
		return EDTF{}, err
	}
	return parseEDTF(child)
}

func optionalEDTF(n *xmltree.Node, name xmltree.QName) (*EDTF, error) {
	child, ok := n.Find(name)
	if !ok {
		return nil, nil
	}
	d, err := parseEDTF(child)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
