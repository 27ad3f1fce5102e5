package premis

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// AgentIdentifier names an agent within some identification scheme.
type AgentIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	SimpleLink *string
}

// Agent is a person, organization or piece of software associated with
// events. Extension children are kept verbatim.
type Agent struct {
	Identifiers []AgentIdentifier
	Names       []StringPlusAuthority
	Type        *StringPlusAuthority
	Extension   []*xmltree.Node
}

// PrimaryIdentifier selects the identifier the archive treats as canonical
// for the agent: the meemoo OR-ID when present, then a UUID, then the first
// identifier in document order.
func (a Agent) PrimaryIdentifier() (AgentIdentifier, bool) {
	if len(a.Identifiers) == 0 {
		return AgentIdentifier{}, false
	}
	for _, id := range a.Identifiers {
		if id.Type.Text == IdentifierTypeORID {
			return id, true
		}
	}
	for _, id := range a.Identifiers {
		if id.Type.Text == IdentifierTypeUUID {
			return id, true
		}
	}
	return a.Identifiers[0], true
}

// Name returns the agent's first name value, or the empty string.
func (a Agent) Name() string {
	if len(a.Names) == 0 {
		return ""
	}
	return a.Names[0].Text
}

func parseAgent(n *xmltree.Node) (Agent, error) {
	ids, errIDs := decode.Collect(n, elAgentIdentifier, parseAgentIdentifier)
	if err := earkmodels.Merge(errIDs); err != nil {
		return Agent{}, err
	}
	if len(ids) == 0 {
		return Agent{}, earkmodels.Issues{{
			Path:    n.Path() + "/" + elAgentIdentifier.Local,
			Code:    earkmodels.CodeRequired,
			Message: "agent requires at least one agentIdentifier",
			Source:  n.Source(),
		}}
	}
	return Agent{
		Identifiers: ids,
		Names:       collectStringPlusAuthority(n, elAgentName),
		Type:        optionalStringPlusAuthority(n, elAgentType),
		Extension:   n.FindAll(elAgentExtension),
	}, nil
}

func parseAgentIdentifier(n *xmltree.Node) (AgentIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elAgentIdentifierType)
	value, errValue := decode.ChildText(n, elAgentIdentifierValue)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return AgentIdentifier{}, err
	}
	return AgentIdentifier{
		Type:       typ,
		Value:      value,
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}
