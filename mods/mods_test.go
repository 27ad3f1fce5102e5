package mods_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/mods"
)

func TestParseFile_MapsRecord(t *testing.T) {
	m, err := mods.ParseFile("testdata/mods.xml")
	require.NoError(t, err)
	require.NotNil(t, m.Version)
	require.Equal(t, "3.7", *m.Version)

	require.Equal(t, "De collectie van het Huis van Alijn", m.Title())
	require.Len(t, m.TitleInfos, 2)
	require.NotNil(t, m.TitleInfos[1].Type)
	require.Equal(t, "alternative", *m.TitleInfos[1].Type)

	require.Len(t, m.Names, 1)
	nm := m.Names[0]
	require.True(t, nm.UsagePrimary)
	require.Equal(t, "Maria Callens", nm.DisplayName())
	require.Len(t, nm.Roles, 1)
	require.Equal(t, "pht", nm.Roles[0].Terms[0].Value)

	require.Len(t, m.OriginInfos, 1)
	oi := m.OriginInfos[0]
	require.Equal(t, "1958", oi.DateCreated())
	require.True(t, oi.DatesCreated[0].KeyDate)
	require.Equal(t, "edtf", *oi.DatesCreated[0].Encoding)
	require.Len(t, oi.Places, 1)
	require.Len(t, oi.Places[0].Terms, 2)
	require.Equal(t, "marccountry", *oi.Places[0].Terms[0].Authority)
	require.Equal(t, "single unit", oi.Issuances[0].Value)

	require.Len(t, m.Languages, 1)
	require.Equal(t, "dut", m.Languages[0].Code())

	require.Len(t, m.PhysicalDescriptions, 1)
	pd := m.PhysicalDescriptions[0]
	require.Equal(t, "cm", *pd.Extents[0].Unit)
	require.Equal(t, "condition", *pd.Notes[0].Type)

	require.Len(t, m.Abstracts, 1)
	require.True(t, m.Abstracts[0].ShareableNo)

	require.Len(t, m.Subjects, 1)
	require.Equal(t, "Street photography", m.Subjects[0].Topics[0].Value)
	require.Equal(t, "1958", m.Subjects[0].Temporals[0].Value)

	require.Len(t, m.RelatedItems, 1)
	require.Equal(t, "host", *m.RelatedItems[0].Type)
	require.Equal(t, "Fotoarchief Callens", m.RelatedItems[0].Title())

	pid, ok := m.IdentifierOfType("MEEMOO-PID")
	require.True(t, ok)
	require.Equal(t, "qs25b0dd4b", pid.Value)
	require.False(t, pid.Invalid)
	local, ok := m.IdentifierOfType("local")
	require.True(t, ok)
	require.True(t, local.Invalid)

	require.Len(t, m.RecordInfos, 1)
	require.Equal(t, "rec-77f03e", m.RecordInfos[0].Identifiers[0].Value)
	require.Equal(t, "meemoo", *m.RecordInfos[0].Identifiers[0].Source)
}

func parse(t *testing.T, doc string) (mods.Mods, error) {
	t.Helper()
	return mods.Parse(strings.NewReader(doc), "inline.xml")
}

func TestParse_VersionIsOptionalButGated(t *testing.T) {
	m, err := parse(t, `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3"/>`)
	require.NoError(t, err)
	require.Nil(t, m.Version)

	_, err = parse(t, `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3" version="2.1"/>`)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnsupportedVersion))
}

func TestParse_UnknownChildFailsRecord(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:titleInfo><mods:title>ok</mods:title></mods:titleInfo>
  <mods:bogus>nee</mods:bogus>
</mods:mods>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnknownElement))
}

func TestParse_LocationAndPartAreRejected(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:location><mods:url>http://example.org</mods:url></mods:location>
</mods:mods>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnsupportedElement))
}

func TestParse_StructuredSubjectsAreRejected(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:subject>
    <mods:hierarchicalGeographic><mods:country>Belgium</mods:country></mods:hierarchicalGeographic>
  </mods:subject>
</mods:mods>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnsupportedElement))
}

func TestParse_DateEncodingIsClosed(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:originInfo>
    <mods:dateCreated encoding="gregorian">1958</mods:dateCreated>
  </mods:originInfo>
</mods:mods>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidEnum))

	iss, _ := earkmodels.AsIssues(err)
	require.Equal(t, "gregorian", iss[0].Params["got"])
}

func TestParse_TitleInfoTypeIsClosed(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:titleInfo type="subtitle"><mods:title>x</mods:title></mods:titleInfo>
</mods:mods>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidEnum))
}

func TestParse_MarkerAttributesRejectOtherValues(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:abstract shareable="yes">x</mods:abstract>
</mods:mods>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidEnum))
}

func TestParse_XLinkAttributes(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3"
  xmlns:xlink="http://www.w3.org/1999/xlink">
  <mods:accessCondition xlink:href="https://creativecommons.org/publicdomain/zero/1.0/">CC0</mods:accessCondition>
</mods:mods>`
	m, err := parse(t, doc)
	require.NoError(t, err)
	require.NotNil(t, m.AccessConditions[0].XLink.Href)
	require.Equal(t, "https://creativecommons.org/publicdomain/zero/1.0/", *m.AccessConditions[0].XLink.Href)
}

// The xlink group is matched on the literal prefix, so binding the namespace
// to another prefix leaves the group absent instead of failing.
func TestParse_XLinkUnderOtherPrefixIsAbsent(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3"
  xmlns:xl="http://www.w3.org/1999/xlink">
  <mods:accessCondition xl:href="https://example.org">x</mods:accessCondition>
</mods:mods>`
	m, err := parse(t, doc)
	require.NoError(t, err)
	require.Nil(t, m.AccessConditions[0].XLink.Href)
}

func TestParse_AllViolationsReportedTogether(t *testing.T) {
	const doc = `<mods:mods xmlns:mods="http://www.loc.gov/mods/v3">
  <mods:bogus/>
  <mods:originInfo><mods:dateCreated encoding="gregorian">1958</mods:dateCreated></mods:originInfo>
</mods:mods>`
	_, err := parse(t, doc)
	iss, ok := earkmodels.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
}
