package langstring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/langstring"
	"github.com/meemoo/earkmodels/xmltree"
)

var elT = xmltree.QName{Local: "t"}

func parse(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	n, err := xmltree.Parse(strings.NewReader(doc), "inline.xml")
	require.NoError(t, err)
	return n
}

func TestCollect(t *testing.T) {
	root := parse(t, `<r><t xml:lang="nl">hallo</t><t xml:lang="en">hello</t></r>`)
	out, err := langstring.Collect(root, elT)
	require.NoError(t, err)
	require.Len(t, out, 2)

	v, ok := out.Get("nl")
	require.True(t, ok)
	require.Equal(t, "hallo", v)
	require.True(t, out.Has("en"))
	require.False(t, out.Has("fr"))
}

func TestParse_LangIsMandatory(t *testing.T) {
	root := parse(t, `<r><t>zonder</t></r>`)
	_, err := langstring.Collect(root, elT)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
}

func TestParse_LangMustBeBCP47(t *testing.T) {
	root := parse(t, `<r><t xml:lang="zz-!!">x</t></r>`)
	_, err := langstring.Collect(root, elT)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidFormat))
}

func TestCollectUnique_ReportsEveryDuplicateOnce(t *testing.T) {
	root := parse(t, `<r>
  <t xml:lang="nl">a</t><t xml:lang="nl">b</t>
  <t xml:lang="en">c</t><t xml:lang="en">d</t>
  <t xml:lang="fr">e</t>
</r>`)
	_, err := langstring.CollectUnique(root, elT)
	iss, ok := earkmodels.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	require.Equal(t, earkmodels.CodeDuplicateLang, iss[0].Code)
	require.Equal(t, []string{"en", "nl"}, iss[0].Params["duplicated"])
}

func TestCollectUniqueDefault(t *testing.T) {
	root := parse(t, `<r><t xml:lang="en">only english</t></r>`)
	_, err := langstring.CollectUniqueDefault(root, elT, "nl")
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeMissingDefaultLang))

	root = parse(t, `<r><t xml:lang="nl">ook nederlands</t><t xml:lang="en">e</t></r>`)
	out, err := langstring.CollectUniqueDefault(root, elT, "nl")
	require.NoError(t, err)
	v, _ := out.Get("nl")
	require.Equal(t, "ook nederlands", v)
}
