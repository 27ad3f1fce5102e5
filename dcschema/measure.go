package dcschema

import (
	"strconv"
	"strings"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// UN/CEFACT unit codes the profile accepts for physical dimensions, and the
// human-readable unit texts they pair with.
var (
	unitCodes = []string{"MMT", "CMT", "MTR", "KGM"}
	unitTexts = []string{"mm", "cm", "m", "kg"}
)

// QuantitativeValue is a schema.org measurement: a number with a closed unit
// vocabulary. The human-readable unit text is mandatory; the UN/CEFACT code
// refines it when present.
type QuantitativeValue struct {
	Value    float64
	UnitText string
	UnitCode *string
}

func parseQuantitativeValue(n *xmltree.Node) (QuantitativeValue, error) {
	valueNode, errValue := decode.RequiredChild(n, elValue)
	textNode, errText := decode.RequiredChild(n, elUnitText)
	if err := earkmodels.Merge(errValue, errText); err != nil {
		return QuantitativeValue{}, err
	}

	var errs []error
	value, err := strconv.ParseFloat(strings.TrimSpace(valueNode.Text()), 64)
	if err != nil {
		errs = append(errs, earkmodels.Issues{{
			Path:    valueNode.Path(),
			Code:    earkmodels.CodeInvalidFormat,
			Message: "expected a number",
			Hint:    valueNode.Text(),
			Source:  valueNode.Source(),
			Cause:   err,
		}})
	}
	text, errEnum := decode.EnumText(textNode, unitTexts...)
	if errEnum != nil {
		errs = append(errs, errEnum)
	}

	qv := QuantitativeValue{Value: value, UnitText: text}
	if codeNode, ok := n.Find(elUnitCode); ok {
		code, errCode := decode.EnumText(codeNode, unitCodes...)
		if errCode != nil {
			errs = append(errs, errCode)
		}
		qv.UnitCode = &code
	}
	if err := earkmodels.Merge(errs...); err != nil {
		return QuantitativeValue{}, err
	}
	return qv, nil
}

func optionalQuantitativeValue(n *xmltree.Node, name xmltree.QName) (*QuantitativeValue, error) {
	child, ok := n.Find(name)
	if !ok {
		return nil, nil
	}
	qv, err := parseQuantitativeValue(child)
	if err != nil {
		return nil, err
	}
	return &qv, nil
}
