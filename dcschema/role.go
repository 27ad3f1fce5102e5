package dcschema

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/xmltree"
)

// Role is a person or organization credited on the resource. The element
// text carries the name; the schema:roleName attribute refines the credit
// (regisseur, fotograaf, ...) and the birth and death dates, when present,
// are EDTF values.
type Role struct {
	Name      string
	RoleName  *string
	BirthDate *EDTF
	DeathDate *EDTF
}

func parseRole(n *xmltree.Node) (Role, error) {
	birth, errBirth := optionalEDTF(n, elBirthDate)
	death, errDeath := optionalEDTF(n, elDeathDate)
	if err := earkmodels.Merge(errBirth, errDeath); err != nil {
		return Role{}, err
	}
	r := Role{BirthDate: birth, DeathDate: death}
	if v, ok := n.QAttr(elRoleName); ok {
		r.RoleName = &v
	}
	// Structured credits put the name in a schema:name child; flat credits
	// put it in the element text.
	if name, ok := n.FindText(elName); ok {
		r.Name = name
	} else {
		r.Name = n.Text()
	}
	return r, nil
}
