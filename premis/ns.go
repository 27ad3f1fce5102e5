package premis

import "github.com/meemoo/earkmodels/xmltree"

// Namespace is the PREMIS 3.0 namespace URI.
const Namespace = xmltree.NS("http://www.loc.gov/premis/v3")

// Element tag catalog. The set of tags per standard is closed and known ahead
// of time, so the catalog is a plain load-time constant table.
var (
	elObject                      = Namespace.QName("object")
	elEvent                       = Namespace.QName("event")
	elAgent                       = Namespace.QName("agent")
	elObjectIdentifier            = Namespace.QName("objectIdentifier")
	elObjectIdentifierType        = Namespace.QName("objectIdentifierType")
	elObjectIdentifierValue       = Namespace.QName("objectIdentifierValue")
	elSignificantProperties       = Namespace.QName("significantProperties")
	elSignificantPropertiesType   = Namespace.QName("significantPropertiesType")
	elSignificantPropertiesValue  = Namespace.QName("significantPropertiesValue")
	elSignificantPropertiesExt    = Namespace.QName("significantPropertiesExtension")
	elObjectCharacteristics       = Namespace.QName("objectCharacteristics")
	elFixity                      = Namespace.QName("fixity")
	elMessageDigestAlgorithm      = Namespace.QName("messageDigestAlgorithm")
	elMessageDigest               = Namespace.QName("messageDigest")
	elMessageDigestOriginator     = Namespace.QName("messageDigestOriginator")
	elSize                        = Namespace.QName("size")
	elFormat                      = Namespace.QName("format")
	elFormatDesignation           = Namespace.QName("formatDesignation")
	elFormatName                  = Namespace.QName("formatName")
	elFormatVersion               = Namespace.QName("formatVersion")
	elFormatRegistry              = Namespace.QName("formatRegistry")
	elFormatRegistryName          = Namespace.QName("formatRegistryName")
	elFormatRegistryKey           = Namespace.QName("formatRegistryKey")
	elFormatRegistryRole          = Namespace.QName("formatRegistryRole")
	elFormatNote                  = Namespace.QName("formatNote")
	elOriginalName                = Namespace.QName("originalName")
	elStorage                     = Namespace.QName("storage")
	elContentLocation             = Namespace.QName("contentLocation")
	elContentLocationType         = Namespace.QName("contentLocationType")
	elContentLocationValue        = Namespace.QName("contentLocationValue")
	elStorageMedium               = Namespace.QName("storageMedium")
	elRelationship                = Namespace.QName("relationship")
	elRelationshipType            = Namespace.QName("relationshipType")
	elRelationshipSubType         = Namespace.QName("relationshipSubType")
	elRelatedObjectIdentifier     = Namespace.QName("relatedObjectIdentifier")
	elRelatedObjectIdentifierType = Namespace.QName("relatedObjectIdentifierType")
	elRelatedObjectIdentifierVal  = Namespace.QName("relatedObjectIdentifierValue")
	elRelatedEventIdentifier      = Namespace.QName("relatedEventIdentifier")
	elRelatedEventIdentifierType  = Namespace.QName("relatedEventIdentifierType")
	elRelatedEventIdentifierVal   = Namespace.QName("relatedEventIdentifierValue")
	elEventIdentifier             = Namespace.QName("eventIdentifier")
	elEventIdentifierType         = Namespace.QName("eventIdentifierType")
	elEventIdentifierValue        = Namespace.QName("eventIdentifierValue")
	elEventType                   = Namespace.QName("eventType")
	elEventDateTime               = Namespace.QName("eventDateTime")
	elEventDetailInformation      = Namespace.QName("eventDetailInformation")
	elEventDetail                 = Namespace.QName("eventDetail")
	elEventDetailExtension        = Namespace.QName("eventDetailExtension")
	elEventOutcomeInformation     = Namespace.QName("eventOutcomeInformation")
	elEventOutcome                = Namespace.QName("eventOutcome")
	elEventOutcomeDetail          = Namespace.QName("eventOutcomeDetail")
	elEventOutcomeDetailNote      = Namespace.QName("eventOutcomeDetailNote")
	elEventOutcomeDetailExtension = Namespace.QName("eventOutcomeDetailExtension")
	elLinkingAgentIdentifier      = Namespace.QName("linkingAgentIdentifier")
	elLinkingAgentIdentifierType  = Namespace.QName("linkingAgentIdentifierType")
	elLinkingAgentIdentifierValue = Namespace.QName("linkingAgentIdentifierValue")
	elLinkingAgentRole            = Namespace.QName("linkingAgentRole")
	elLinkingObjectIdentifier     = Namespace.QName("linkingObjectIdentifier")
	elLinkingObjectIdentifierType = Namespace.QName("linkingObjectIdentifierType")
	elLinkingObjectIdentifierVal  = Namespace.QName("linkingObjectIdentifierValue")
	elLinkingObjectRole           = Namespace.QName("linkingObjectRole")
	elAgentIdentifier             = Namespace.QName("agentIdentifier")
	elAgentIdentifierType         = Namespace.QName("agentIdentifierType")
	elAgentIdentifierValue        = Namespace.QName("agentIdentifierValue")
	elAgentName                   = Namespace.QName("agentName")
	elAgentType                   = Namespace.QName("agentType")
	elAgentExtension              = Namespace.QName("agentExtension")
)

// Expanded xsi:type discriminator values for premis:object.
var (
	typeFile               = Namespace.QName("file").String()
	typeRepresentation     = Namespace.QName("representation").String()
	typeIntellectualEntity = Namespace.QName("intellectualEntity").String()
	typeBitstream          = Namespace.QName("bitstream").String()
)
