package decode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

var (
	elA = xmltree.QName{Local: "a"}
	elB = xmltree.QName{Local: "b"}
	elN = xmltree.QName{Local: "n"}
)

func parse(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	n, err := xmltree.Parse(strings.NewReader(doc), "inline.xml")
	require.NoError(t, err)
	return n
}

func TestRequiredChild(t *testing.T) {
	root := parse(t, `<r><a>x</a></r>`)

	child, err := decode.RequiredChild(root, elA)
	require.NoError(t, err)
	require.Equal(t, "x", child.Text())

	_, err = decode.RequiredChild(root, elB)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeRequired))
	iss, _ := earkmodels.AsIssues(err)
	require.Equal(t, "/r/b", iss[0].Path)
}

func TestChildText_EmptyElementIsNotAbsence(t *testing.T) {
	root := parse(t, `<r><a/></r>`)

	v, err := decode.ChildText(root, elA)
	require.NoError(t, err)
	require.Equal(t, "", v)

	_, err = decode.ChildText(root, elB)
	require.Error(t, err)
}

func TestOptionalChildInt(t *testing.T) {
	root := parse(t, `<r><n> 42 </n></r>`)
	v, ok, err := decode.OptionalChildInt(root, elN)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok, err = decode.OptionalChildInt(root, elB)
	require.NoError(t, err)
	require.False(t, ok)

	root = parse(t, `<r><n>veel</n></r>`)
	_, _, err = decode.OptionalChildInt(root, elN)
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidFormat))
}

func TestEnumAttr(t *testing.T) {
	root := parse(t, `<r kind="b"/>`)
	v, ok, err := decode.EnumAttr(root, "kind", "a", "b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok, err = decode.EnumAttr(root, "missing", "a")
	require.NoError(t, err)
	require.False(t, ok)

	root = parse(t, `<r kind="c"/>`)
	_, _, err = decode.EnumAttr(root, "kind", "a", "b")
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidEnum))
	iss, _ := earkmodels.AsIssues(err)
	require.Equal(t, "/r/@kind", iss[0].Path)
	require.Equal(t, "c", iss[0].Params["got"])
}

func TestMarkerAttr(t *testing.T) {
	root := parse(t, `<r supplied="yes"/>`)
	v, err := decode.MarkerAttr(root, "supplied", "yes")
	require.NoError(t, err)
	require.True(t, v)

	v, err = decode.MarkerAttr(root, "usage", "primary")
	require.NoError(t, err)
	require.False(t, v)

	root = parse(t, `<r supplied="maybe"/>`)
	_, err = decode.MarkerAttr(root, "supplied", "yes")
	require.True(t, earkmodels.HasCode(err, earkmodels.CodeInvalidEnum))
}

func TestCollect_FoldsAllIssues(t *testing.T) {
	parseOne := func(n *xmltree.Node) (string, error) {
		v, err := decode.EnumText(n, "ok")
		if err != nil {
			return "", err
		}
		return v, nil
	}

	root := parse(t, `<r><n>ok</n><n>bad</n><n>worse</n></r>`)
	_, err := decode.Collect(root, elN, parseOne)
	iss, ok := earkmodels.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)

	root = parse(t, `<r><n>ok</n><n>ok</n></r>`)
	out, err := decode.Collect(root, elN, parseOne)
	require.NoError(t, err)
	require.Equal(t, []string{"ok", "ok"}, out)
}
