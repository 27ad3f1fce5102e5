package premis_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/premis"
)

func TestParseFile_MapsDocument(t *testing.T) {
	p, err := premis.ParseFile("testdata/premis.xml")
	require.NoError(t, err)
	require.Equal(t, "3.0", p.Version)
	require.Len(t, p.Objects, 3)

	entity, ok := p.Entity()
	require.True(t, ok)
	u, ok := entity.ObjectIdentifiers.UUID()
	require.True(t, ok)
	require.Equal(t, uuid.MustParse("9e69a6b1-2726-4a45-a4a1-6bfe01cfe075"), u)
	pid, ok := entity.ObjectIdentifiers.PID()
	require.True(t, ok)
	require.Equal(t, "qs25b0dd4b", pid)
	local, ok := entity.ObjectIdentifiers.Primary()
	require.True(t, ok)
	require.Equal(t, "AVS-2024-0117", local)

	rep, ok := p.Representation()
	require.True(t, ok)
	require.Len(t, rep.Relationships, 1)
	ru, ok := rep.Relationships[0].RelatedObjectUUID()
	require.True(t, ok)
	require.Equal(t, u, ru)

	files := p.Files()
	require.Len(t, files, 1)
	f := files[0]
	require.NotNil(t, f.OriginalName)
	require.Equal(t, "browse.mp4", f.OriginalName.Value)
	require.Len(t, f.Characteristics, 1)
	oc := f.Characteristics[0]
	require.NotNil(t, oc.Size)
	require.Equal(t, int64(174182283), *oc.Size)
	require.Len(t, oc.Fixities, 1)
	require.Equal(t, "MD5", oc.Fixities[0].Algorithm.Text)
	require.Equal(t, "b0fa39b5f6fff2b2f48c60817dab5536", oc.Fixities[0].Digest)
	require.Len(t, oc.Formats, 1)
	require.NotNil(t, oc.Formats[0].Designation)
	require.Equal(t, "video/mp4", oc.Formats[0].Designation.Name.Text)
	require.NotNil(t, oc.Formats[0].Registry)
	require.Equal(t, "fmt/199", oc.Formats[0].Registry.Key.Text)
	require.Len(t, f.Storages, 1)
	require.NotNil(t, f.Storages[0].ContentLocation)
	require.Equal(t, "representations/browse/data/browse.mp4", f.Storages[0].ContentLocation.Value)

	require.Len(t, p.Events, 1)
	ev := p.Events[0]
	require.Equal(t, "digitization", ev.Type.Text)
	require.Equal(t, "2022-01-17T14:10:04Z", ev.DateTime)
	require.Len(t, ev.LinkingAgents, 1)
	require.Equal(t, "OR-rf5kf25", ev.LinkingAgents[0].Value)
	require.Equal(t, "implementer", ev.LinkingAgents[0].Roles[0].Text)

	require.Len(t, p.Agents, 1)
	primary, ok := p.Agents[0].PrimaryIdentifier()
	require.True(t, ok)
	require.Equal(t, premis.IdentifierTypeORID, primary.Type.Text)
	require.Equal(t, "OR-rf5kf25", primary.Value)
	require.Equal(t, "Studio Hyperdrive", p.Agents[0].Name())
}

func parse(t *testing.T, doc string) (premis.Premis, error) {
	t.Helper()
	return premis.Parse(strings.NewReader(doc), "inline.xml")
}

func TestParse_RejectsOtherVersions(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3" version="2.2"/>`
	_, err := parse(t, doc)
	require.Error(t, err)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnsupportedVersion))

	iss, ok := earkmodels.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, "2.2", iss[0].Params["got"])
}

func TestParse_RejectsMissingVersion(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3"/>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnsupportedVersion))
}

func TestParse_RejectsWrongRoot(t *testing.T) {
	const doc = `<mets xmlns="http://www.loc.gov/METS/"/>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnknownElement))
}

func TestParse_ObjectWithoutDiscriminator(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3" version="3.0">
  <premis:object>
    <premis:objectIdentifier>
      <premis:objectIdentifierType>UUID</premis:objectIdentifierType>
      <premis:objectIdentifierValue>9e69a6b1-2726-4a45-a4a1-6bfe01cfe075</premis:objectIdentifierValue>
    </premis:objectIdentifier>
  </premis:object>
</premis:premis>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorMissing))
}

func TestParse_ObjectWithUnknownDiscriminator(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="3.0">
  <premis:object xsi:type="premis:softwareAgent">
    <premis:objectIdentifier>
      <premis:objectIdentifierType>UUID</premis:objectIdentifierType>
      <premis:objectIdentifierValue>9e69a6b1-2726-4a45-a4a1-6bfe01cfe075</premis:objectIdentifierValue>
    </premis:objectIdentifier>
  </premis:object>
</premis:premis>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeDiscriminatorUnknown))

	iss, _ := earkmodels.AsIssues(err)
	require.Contains(t, iss[0].Hint, "{http://www.loc.gov/premis/v3}softwareAgent")
}

// The discriminator is matched after namespace expansion, so any prefix bound
// to the PREMIS namespace selects the same variant.
func TestParse_DiscriminatorWithCustomPrefix(t *testing.T) {
	const doc = `<p3:premis xmlns:p3="http://www.loc.gov/premis/v3"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="3.0">
  <p3:object xsi:type="p3:intellectualEntity">
    <p3:objectIdentifier>
      <p3:objectIdentifierType>UUID</p3:objectIdentifierType>
      <p3:objectIdentifierValue>9e69a6b1-2726-4a45-a4a1-6bfe01cfe075</p3:objectIdentifierValue>
    </p3:objectIdentifier>
  </p3:object>
</p3:premis>`
	p, err := parse(t, doc)
	require.NoError(t, err)
	_, ok := p.Entity()
	require.True(t, ok)
}

func TestParse_ObjectRequiresIdentifier(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="3.0">
  <premis:object xsi:type="premis:intellectualEntity"/>
</premis:premis>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_CharacteristicsRequireFormat(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="3.0">
  <premis:object xsi:type="premis:file">
    <premis:objectIdentifier>
      <premis:objectIdentifierType>UUID</premis:objectIdentifierType>
      <premis:objectIdentifierValue>0f1f9d17-53ef-4276-969b-d8b0e4f0f0a6</premis:objectIdentifierValue>
    </premis:objectIdentifier>
    <premis:objectCharacteristics>
      <premis:size>42</premis:size>
    </premis:objectCharacteristics>
  </premis:object>
</premis:premis>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))

	iss, _ := earkmodels.AsIssues(err)
	require.Contains(t, iss[0].Path, "format")
}

func TestParse_FormatNeedsDesignationOrRegistry(t *testing.T) {
	const doc = `<premis:premis xmlns:premis="http://www.loc.gov/premis/v3"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="3.0">
  <premis:object xsi:type="premis:file">
    <premis:objectIdentifier>
      <premis:objectIdentifierType>UUID</premis:objectIdentifierType>
      <premis:objectIdentifierValue>0f1f9d17-53ef-4276-969b-d8b0e4f0f0a6</premis:objectIdentifierValue>
    </premis:objectIdentifier>
    <premis:objectCharacteristics>
      <premis:format>
        <premis:formatNote>container</premis:formatNote>
      </premis:format>
    </premis:objectCharacteristics>
  </premis:object>
</premis:premis>`
	_, err := parse(t, doc)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestAgent_PrimaryIdentifierFallsBack(t *testing.T) {
	uuidID := premis.AgentIdentifier{Type: premis.StringPlusAuthority{Text: premis.IdentifierTypeUUID}, Value: "c8e6fa12-4b86-4a3f-9b7c-30c1f3f7a001"}
	other := premis.AgentIdentifier{Type: premis.StringPlusAuthority{Text: "VIAF"}, Value: "12345"}

	a := premis.Agent{Identifiers: []premis.AgentIdentifier{other, uuidID}}
	id, ok := a.PrimaryIdentifier()
	require.True(t, ok)
	require.Equal(t, uuidID, id)

	a = premis.Agent{Identifiers: []premis.AgentIdentifier{other}}
	id, ok = a.PrimaryIdentifier()
	require.True(t, ok)
	require.Equal(t, other, id)

	_, ok = premis.Agent{}.PrimaryIdentifier()
	require.False(t, ok)
}

func TestObjectIdentifier_AsUUID(t *testing.T) {
	id := premis.ObjectIdentifier{
		Type:  premis.StringPlusAuthority{Text: premis.IdentifierTypeUUID},
		Value: "not-a-uuid",
	}
	_, ok := id.AsUUID()
	require.False(t, ok)

	id.Value = "9e69a6b1-2726-4a45-a4a1-6bfe01cfe075"
	u, ok := id.AsUUID()
	require.True(t, ok)
	require.Equal(t, "9e69a6b1-2726-4a45-a4a1-6bfe01cfe075", u.String())

	id.Type.Text = premis.IdentifierTypePID
	_, ok = id.AsUUID()
	require.False(t, ok)
}
