package dcschema

import "github.com/meemoo/earkmodels/xmltree"

// Namespaces of the descriptive profile: DCMI terms enriched with schema.org
// properties, dates typed against the EDTF datatype namespace.
const (
	DCTerms = xmltree.NS("http://purl.org/dc/terms/")
	Schema  = xmltree.NS("https://schema.org/")
	EDTFNS  = xmltree.NS("http://id.loc.gov/datatypes/edtf/")
)

var (
	elTitle        = DCTerms.QName("title")
	elType         = DCTerms.QName("type")
	elAlternative  = DCTerms.QName("alternative")
	elDescription  = DCTerms.QName("description")
	elAbstract     = DCTerms.QName("abstract")
	elIdentifier   = DCTerms.QName("identifier")
	elFormat       = DCTerms.QName("format")
	elCreated      = DCTerms.QName("created")
	elIssued       = DCTerms.QName("issued")
	elAvailable    = DCTerms.QName("available")
	elCreator      = DCTerms.QName("creator")
	elContributor  = DCTerms.QName("contributor")
	elPublisher    = DCTerms.QName("publisher")
	elSpatial      = DCTerms.QName("spatial")
	elTemporal     = DCTerms.QName("temporal")
	elSubject      = DCTerms.QName("subject")
	elLanguage     = DCTerms.QName("language")
	elLicense      = DCTerms.QName("license")
	elRights       = DCTerms.QName("rights")
	elRightsHolder = DCTerms.QName("rightsHolder")
	elMedium       = DCTerms.QName("medium")
	elExtent       = DCTerms.QName("extent")
	elIsPartOf     = DCTerms.QName("isPartOf")

	elGenre         = Schema.QName("genre")
	elName          = Schema.QName("name")
	elSchemaCreator = Schema.QName("creator")
	elSchemaContrib = Schema.QName("contributor")
	elSchemaPub     = Schema.QName("publisher")
	elArtMedium     = Schema.QName("artMedium")
	elArtform       = Schema.QName("artform")
	elCreditText    = Schema.QName("creditText")
	elHasPart       = Schema.QName("hasPart")
	elSchemaPartOf  = Schema.QName("isPartOf")
	elRoleName      = Schema.QName("roleName")
	elBirthDate     = Schema.QName("birthDate")
	elDeathDate     = Schema.QName("deathDate")
	elHeight        = Schema.QName("height")
	elWidth         = Schema.QName("width")
	elDepth         = Schema.QName("depth")
	elWeight        = Schema.QName("weight")
	elValue         = Schema.QName("value")
	elUnitCode      = Schema.QName("unitCode")
	elUnitText      = Schema.QName("unitText")
	elDuration      = Schema.QName("duration")
	elSeasonNumber  = Schema.QName("seasonNumber")
	elEpisodeNumber = Schema.QName("episodeNumber")
	elPosition      = Schema.QName("position")
)

// Expanded xsi:type discriminators for isPartOf collections.
var (
	typeSeries    = Schema.QName("CreativeWorkSeries").String()
	typeSeason    = Schema.QName("CreativeWorkSeason").String()
	typeEpisode   = Schema.QName("Episode").String()
	typeArchive   = Schema.QName("ArchiveComponent").String()
	typeBroadcast = Schema.QName("BroadcastEvent").String()
)

// Expanded xsi:type discriminators for EDTF-typed dates.
var (
	typeEDTFLevel0 = EDTFNS.QName("EDTF-level0").String()
	typeEDTFLevel1 = EDTFNS.QName("EDTF-level1").String()
	typeEDTFLevel2 = EDTFNS.QName("EDTF-level2").String()
)
