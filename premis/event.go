package premis

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// EventIdentifier names an event within some identification scheme.
type EventIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	SimpleLink *string
}

// EventDetailInformation carries free-form detail about what the event did.
type EventDetailInformation struct {
	Detail    *string
	Extension []*xmltree.Node
}

// EventOutcomeDetail refines an outcome with a note or extension content.
type EventOutcomeDetail struct {
	Note      *string
	Extension []*xmltree.Node
}

// EventOutcomeInformation records how the event ended.
type EventOutcomeInformation struct {
	Outcome *StringPlusAuthority
	Details []EventOutcomeDetail
}

// LinkingAgentIdentifier ties the event to an agent, with the roles the agent
// played.
type LinkingAgentIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	Roles      []StringPlusAuthority
	SimpleLink *string
}

// LinkingObjectIdentifier ties the event to an object, with the roles the
// object played.
type LinkingObjectIdentifier struct {
	Type       StringPlusAuthority
	Value      string
	Roles      []StringPlusAuthority
	SimpleLink *string
}

// Event is one preservation event: a digitization, a fixity check, an ingest.
type Event struct {
	Identifier     EventIdentifier
	Type           StringPlusAuthority
	DateTime       string
	Details        []EventDetailInformation
	Outcomes       []EventOutcomeInformation
	LinkingAgents  []LinkingAgentIdentifier
	LinkingObjects []LinkingObjectIdentifier
}

func parseEvent(n *xmltree.Node) (Event, error) {
	idNode, errID := decode.RequiredChild(n, elEventIdentifier)
	var (
		id     EventIdentifier
		errIDP error
	)
	if errID == nil {
		id, errIDP = parseEventIdentifier(idNode)
	}
	typ, errType := requiredStringPlusAuthority(n, elEventType)
	dateTime, errDT := decode.ChildText(n, elEventDateTime)
	details, errDet := decode.Collect(n, elEventDetailInformation, parseEventDetailInformation)
	outcomes, errOut := decode.Collect(n, elEventOutcomeInformation, parseEventOutcomeInformation)
	agents, errAg := decode.Collect(n, elLinkingAgentIdentifier, parseLinkingAgentIdentifier)
	objects, errObj := decode.Collect(n, elLinkingObjectIdentifier, parseLinkingObjectIdentifier)
	if err := earkmodels.Merge(errID, errIDP, errType, errDT, errDet, errOut, errAg, errObj); err != nil {
		return Event{}, err
	}
	return Event{
		Identifier:     id,
		Type:           typ,
		DateTime:       dateTime,
		Details:        details,
		Outcomes:       outcomes,
		LinkingAgents:  agents,
		LinkingObjects: objects,
	}, nil
}

func parseEventIdentifier(n *xmltree.Node) (EventIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elEventIdentifierType)
	value, errValue := decode.ChildText(n, elEventIdentifierValue)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return EventIdentifier{}, err
	}
	return EventIdentifier{
		Type:       typ,
		Value:      value,
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}

func parseEventDetailInformation(n *xmltree.Node) (EventDetailInformation, error) {
	d := EventDetailInformation{Extension: n.FindAll(elEventDetailExtension)}
	if v, ok := decode.OptionalChildText(n, elEventDetail); ok {
		d.Detail = &v
	}
	return d, nil
}

func parseEventOutcomeInformation(n *xmltree.Node) (EventOutcomeInformation, error) {
	details, err := decode.Collect(n, elEventOutcomeDetail, parseEventOutcomeDetail)
	if err != nil {
		return EventOutcomeInformation{}, err
	}
	return EventOutcomeInformation{
		Outcome: optionalStringPlusAuthority(n, elEventOutcome),
		Details: details,
	}, nil
}

func parseEventOutcomeDetail(n *xmltree.Node) (EventOutcomeDetail, error) {
	d := EventOutcomeDetail{Extension: n.FindAll(elEventOutcomeDetailExtension)}
	if v, ok := decode.OptionalChildText(n, elEventOutcomeDetailNote); ok {
		d.Note = &v
	}
	return d, nil
}

func parseLinkingAgentIdentifier(n *xmltree.Node) (LinkingAgentIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elLinkingAgentIdentifierType)
	value, errValue := decode.ChildText(n, elLinkingAgentIdentifierValue)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return LinkingAgentIdentifier{}, err
	}
	return LinkingAgentIdentifier{
		Type:       typ,
		Value:      value,
		Roles:      collectStringPlusAuthority(n, elLinkingAgentRole),
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}

func parseLinkingObjectIdentifier(n *xmltree.Node) (LinkingObjectIdentifier, error) {
	typ, errType := requiredStringPlusAuthority(n, elLinkingObjectIdentifierType)
	value, errValue := decode.ChildText(n, elLinkingObjectIdentifierVal)
	if err := earkmodels.Merge(errType, errValue); err != nil {
		return LinkingObjectIdentifier{}, err
	}
	return LinkingObjectIdentifier{
		Type:       typ,
		Value:      value,
		Roles:      collectStringPlusAuthority(n, elLinkingObjectRole),
		SimpleLink: decode.OptionalAttr(n, "simpleLink"),
	}, nil
}
