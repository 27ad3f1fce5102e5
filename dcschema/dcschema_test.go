package dcschema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/dcschema"
)

func TestParseFile_MapsRecord(t *testing.T) {
	d, err := dcschema.ParseFile("testdata/dcschema.xml")
	require.NoError(t, err)

	require.Equal(t, "Journaal 17 januari 1958", d.Title())
	en, ok := d.Titles.Get("en")
	require.True(t, ok)
	require.Equal(t, "News broadcast 17 January 1958", en)
	require.Equal(t, "Nieuwsuitzending over de wereldtentoonstelling.", d.Description())

	require.Equal(t, "qs25b0dd4b", d.Identifier)
	require.Equal(t, "video", d.Format)
	require.Equal(t, "Video", d.Type)

	require.Equal(t, "1958-01-17~", d.Created.Value)
	require.Equal(t, 1, d.Created.Level)
	require.NotNil(t, d.Issued)
	require.Equal(t, 0, d.Issued.Level)
	require.Equal(t, "2010-06-01T00:00:00", *d.Available)

	require.Len(t, d.Creators, 1)
	require.Equal(t, "Jan Vermeulen", d.Creators[0].Name)
	require.Equal(t, "regisseur", *d.Creators[0].RoleName)
	require.NotNil(t, d.Creators[0].BirthDate)
	require.Equal(t, "1921", d.Creators[0].BirthDate.Value)

	require.Len(t, d.Contributors, 1)
	require.Equal(t, "Paul Louyet", d.Contributors[0].Name)
	require.Len(t, d.Publishers, 1)

	require.Len(t, d.Subjects, 2)
	require.Equal(t, "Expo 58", d.Subjects[0].Value)
	require.Equal(t, "nl", d.Subjects[1].Lang)
	temporal, ok := d.Temporals.Get("nl")
	require.True(t, ok)
	require.Equal(t, "jaren 1950", temporal)
	medium, ok := d.ArtMediums.Get("nl")
	require.True(t, ok)
	require.Equal(t, "16mm filmpellicule", medium)
	require.Len(t, d.CreditTexts, 1)

	require.Equal(t, "PT10M13S", *d.Extent)
	require.Equal(t, "PT10M13S", *d.Duration)

	require.NotNil(t, d.Height)
	require.Equal(t, 10.5, d.Height.Value)
	require.Equal(t, "cm", d.Height.UnitText)
	require.Equal(t, "CMT", *d.Height.UnitCode)
	require.Nil(t, d.Weight)

	require.Len(t, d.IsPartOf, 2)
	series, ok := d.IsPartOf[0].(dcschema.Series)
	require.True(t, ok)
	require.Equal(t, "Het journaal", series.WorkName("nl"))
	require.Equal(t, 17, *series.Position)
	require.Len(t, series.HasPart, 1)
	require.Equal(t, "Het journaal 1958", series.HasPart[0].WorkName("nl"))
	episode, ok := d.IsPartOf[1].(dcschema.Episode)
	require.True(t, ok)
	require.Equal(t, 12, *episode.EpisodeNumber)

	genre, ok := d.Genres.Get("nl")
	require.True(t, ok)
	require.Equal(t, "nieuws", genre)
}

func parse(t *testing.T, doc string) (dcschema.Document, error) {
	t.Helper()
	return dcschema.Parse(strings.NewReader(doc), "inline.xml")
}

// header carries the mandatory fields except dcterms:created so that the
// date tests can vary it; prologue is a fully valid base record.
const header = `<metadata xmlns:dcterms="http://purl.org/dc/terms/"
  xmlns:schema="https://schema.org/"
  xmlns:edtf="http://id.loc.gov/datatypes/edtf/"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dcterms:description xml:lang="nl">d</dcterms:description>
  <dcterms:identifier>id-1</dcterms:identifier>
  <dcterms:format>video</dcterms:format>
  <dcterms:type>Video</dcterms:type>`

const prologue = header + `
  <dcterms:created xsi:type="edtf:EDTF-level0">1958</dcterms:created>`

func TestParse_TitleRequiresDefaultLanguage(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="en">English only</dcterms:title>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeMissingDefaultLang))

	doc = prologue + `
  <dcterms:title xml:lang="nl">nl</dcterms:title>
  <dcterms:title xml:lang="en">en</dcterms:title>
</metadata>`
	_, err = parse(t, doc)
	require.NoError(t, err)
}

func TestParse_DuplicateLanguageFails(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">een</dcterms:title>
  <dcterms:title xml:lang="nl">twee</dcterms:title>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDuplicateLang))
}

func TestParse_TitleRequiresLangAttribute(t *testing.T) {
	doc := prologue + `
  <dcterms:title>zonder taal</dcterms:title>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_UnitCodeIsClosed(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <schema:height>
    <schema:value>10</schema:value>
    <schema:unitCode>XXX</schema:unitCode>
    <schema:unitText>mm</schema:unitText>
  </schema:height>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidEnum))

	doc = prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <schema:height>
    <schema:value>10</schema:value>
    <schema:unitCode>MMT</schema:unitCode>
    <schema:unitText>mm</schema:unitText>
  </schema:height>
</metadata>`
	_, err = parse(t, doc)
	require.NoError(t, err)
}

func TestParse_UnitTextIsMandatory(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <schema:height>
    <schema:value>10</schema:value>
    <schema:unitCode>MMT</schema:unitCode>
  </schema:height>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_IsPartOfDiscriminator(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:isPartOf>
    <schema:name xml:lang="nl">x</schema:name>
  </dcterms:isPartOf>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorMissing))

	doc = prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:isPartOf xsi:type="schema:Boek">
    <schema:name xml:lang="nl">x</schema:name>
  </dcterms:isPartOf>
</metadata>`
	_, err = parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorUnknown))
}

func TestParse_UnknownEDTFLevelFails(t *testing.T) {
	doc := header + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:created xsi:type="edtf:EDTF-level9">1958</dcterms:created>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorUnknown))
}

func TestParse_CreatedRequiresEDTFLevel(t *testing.T) {
	doc := header + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:created>1958</dcterms:created>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorMissing))
}

func TestParse_CreatedIsMandatory(t *testing.T) {
	doc := header + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_TypeIsMandatory(t *testing.T) {
	doc := `<metadata xmlns:dcterms="http://purl.org/dc/terms/"
  xmlns:edtf="http://id.loc.gov/datatypes/edtf/"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:description xml:lang="nl">d</dcterms:description>
  <dcterms:identifier>id-1</dcterms:identifier>
  <dcterms:format>video</dcterms:format>
  <dcterms:created xsi:type="edtf:EDTF-level0">1958</dcterms:created>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_SubjectRequiresLangAttribute(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:subject>Expo 58</dcterms:subject>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_CreditsCollectBothNamespaces(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <schema:creator schema:roleName="fotograaf">Lien Maes</schema:creator>
  <dcterms:creator>Jan Vermeulen</dcterms:creator>
</metadata>`
	d, err := parse(t, doc)
	require.NoError(t, err)
	require.Len(t, d.Creators, 2)
	require.Equal(t, "Lien Maes", d.Creators[0].Name)
	require.Equal(t, "Jan Vermeulen", d.Creators[1].Name)
}

func TestParse_HasPartMustRepeatCollectionType(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="nl">t</dcterms:title>
  <dcterms:isPartOf xsi:type="schema:ArchiveComponent">
    <schema:name xml:lang="nl">archief</schema:name>
    <schema:hasPart xsi:type="schema:Episode">
      <schema:name xml:lang="nl">stuk</schema:name>
    </schema:hasPart>
  </dcterms:isPartOf>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorUnknown))
}

func TestParse_InvalidLanguageTagFails(t *testing.T) {
	doc := prologue + `
  <dcterms:title xml:lang="zz-!!">t</dcterms:title>
</metadata>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidFormat))
}
