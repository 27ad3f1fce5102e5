package mods

import "github.com/meemoo/earkmodels/xmltree"

// Namespace is the MODS namespace URI, shared by every 3.x minor version.
const Namespace = xmltree.NS("http://www.loc.gov/mods/v3")

var (
	elTitleInfo           = Namespace.QName("titleInfo")
	elTitle               = Namespace.QName("title")
	elSubTitle            = Namespace.QName("subTitle")
	elPartNumber          = Namespace.QName("partNumber")
	elPartName            = Namespace.QName("partName")
	elNonSort             = Namespace.QName("nonSort")
	elName                = Namespace.QName("name")
	elNamePart            = Namespace.QName("namePart")
	elDisplayForm         = Namespace.QName("displayForm")
	elAffiliation         = Namespace.QName("affiliation")
	elDescription         = Namespace.QName("description")
	elRole                = Namespace.QName("role")
	elRoleTerm            = Namespace.QName("roleTerm")
	elEtal                = Namespace.QName("etal")
	elTypeOfResource      = Namespace.QName("typeOfResource")
	elGenre               = Namespace.QName("genre")
	elOriginInfo          = Namespace.QName("originInfo")
	elPlace               = Namespace.QName("place")
	elPlaceTerm           = Namespace.QName("placeTerm")
	elPublisher           = Namespace.QName("publisher")
	elDateIssued          = Namespace.QName("dateIssued")
	elDateCreated         = Namespace.QName("dateCreated")
	elDateCaptured        = Namespace.QName("dateCaptured")
	elDateValid           = Namespace.QName("dateValid")
	elDateModified        = Namespace.QName("dateModified")
	elCopyrightDate       = Namespace.QName("copyrightDate")
	elDateOther           = Namespace.QName("dateOther")
	elEdition             = Namespace.QName("edition")
	elIssuance            = Namespace.QName("issuance")
	elFrequency           = Namespace.QName("frequency")
	elLanguage            = Namespace.QName("language")
	elLanguageTerm        = Namespace.QName("languageTerm")
	elScriptTerm          = Namespace.QName("scriptTerm")
	elPhysicalDescription = Namespace.QName("physicalDescription")
	elForm                = Namespace.QName("form")
	elExtent              = Namespace.QName("extent")
	elNote                = Namespace.QName("note")
	elAbstract            = Namespace.QName("abstract")
	elSubject             = Namespace.QName("subject")
	elTopic               = Namespace.QName("topic")
	elGeographic          = Namespace.QName("geographic")
	elTemporal            = Namespace.QName("temporal")
	elGeographicCode      = Namespace.QName("geographicCode")
	elOccupation          = Namespace.QName("occupation")
	elRelatedItem         = Namespace.QName("relatedItem")
	elIdentifier          = Namespace.QName("identifier")
	elAccessCondition     = Namespace.QName("accessCondition")
	elTableOfContents     = Namespace.QName("tableOfContents")
	elTargetAudience      = Namespace.QName("targetAudience")
	elClassification      = Namespace.QName("classification")
	elExtension           = Namespace.QName("extension")
	elRecordInfo          = Namespace.QName("recordInfo")
	elRecordContentSource = Namespace.QName("recordContentSource")
	elRecordCreationDate  = Namespace.QName("recordCreationDate")
	elRecordChangeDate    = Namespace.QName("recordChangeDate")
	elRecordIdentifier    = Namespace.QName("recordIdentifier")
	elRecordOrigin        = Namespace.QName("recordOrigin")
	elLanguageOfCatalog   = Namespace.QName("languageOfCataloging")
	elRecordInfoNote      = Namespace.QName("recordInfoNote")
	elDescriptionStandard = Namespace.QName("descriptionStandard")
	elLocation            = Namespace.QName("location")
	elPart                = Namespace.QName("part")
	elHierarchicalGeo     = Namespace.QName("hierarchicalGeographic")
	elCartographics       = Namespace.QName("cartographics")
)
