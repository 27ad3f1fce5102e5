package sip_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/dcschema"
	"github.com/meemoo/earkmodels/mods"
	"github.com/meemoo/earkmodels/sip"
)

func TestFromPath_ReadsPackage(t *testing.T) {
	s, err := sip.FromPath("testdata/sip", dcschema.ParseFile)
	require.NoError(t, err)

	require.Equal(t, filepath.Join("testdata/sip", "METS.xml"), s.METSPath)

	entity, ok := s.Entity()
	require.True(t, ok)
	u, ok := entity.ObjectIdentifiers.UUID()
	require.True(t, ok)
	require.Equal(t, "9e69a6b1-2726-4a45-a4a1-6bfe01cfe075", u.String())

	require.Len(t, s.Descriptive, 1)
	require.Equal(t, "Journaal 17 januari 1958", s.Descriptive[0].Title())

	require.Len(t, s.Representations, 1)
	rep := s.Representations[0]
	require.Equal(t, "representation_1", rep.Name)
	require.Equal(t, filepath.Join(rep.Path, "METS.xml"), rep.METSPath)
	require.Len(t, rep.Data, 1)
	require.Equal(t, "browse.mp4", filepath.Base(rep.Data[0]))
	r, ok := rep.Preservation.Representation()
	require.True(t, ok)
	ru, ok := r.Relationships[0].RelatedObjectUUID()
	require.True(t, ok)
	require.Equal(t, u, ru)
	require.Empty(t, rep.Descriptive)
}

// The descriptive type is a parameter, so the same tree can be read against
// another profile; the dc+schema file then fails as a wrong root.
func TestFromPath_GenericOverDescriptiveType(t *testing.T) {
	_, err := sip.FromPath("testdata/sip", mods.ParseFile)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeUnknownElement))
}

func TestFromPath_RepresentationNeedsDescriptor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, copyTree(t, "testdata/sip", dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "representations/representation_1/METS.xml")))

	_, err := sip.FromPath(dir, dcschema.ParseFile)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeNotFound))
}

func TestFromPath_DescriptiveMetadataIsMandatory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, copyTree(t, "testdata/sip", dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "metadata/descriptive/dc+schema.xml")))

	_, err := sip.FromPath(dir, dcschema.ParseFile)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeNotFound))
}

func copyTree(t *testing.T, src, dst string) error {
	t.Helper()
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

func TestFromPath_MissingPiecesReportedTogether(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "metadata/preservation"), 0o755))

	_, err := sip.FromPath(dir, dcschema.ParseFile)
	require.Error(t, err)
	iss, ok := earkmodels.AsIssues(err)
	require.True(t, ok)
	// Both the METS stub and the premis document are missing.
	require.GreaterOrEqual(t, len(iss), 2)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeNotFound))
}
