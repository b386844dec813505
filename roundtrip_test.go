package ssml_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/r3labs/diff/v2"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ssml"
	"github.com/KimNorgaard/go-ssml/ast"
	"github.com/KimNorgaard/go-ssml/internal/testutil"
)

// requireSameTree fails with a readable list of differences when the trees differ.
func requireSameTree(t *testing.T, want, got *ast.Document) {
	t.Helper()
	if want.Equal(got) {
		return
	}

	changes, err := diff.Diff(want, got, diff.SliceOrdering(true))
	require.NoError(t, err)

	var sb strings.Builder
	for _, c := range changes {
		sb.WriteString(strings.Join(c.Path, ".") + ": " + c.Type + "\n")
	}
	t.Fatalf("trees differ:\n%s\nwant: %s\ngot:  %s", sb.String(), want, got)
}

// requireWellFormed checks that rendered markup is accepted by an XML parser.
func requireWellFormed(t *testing.T, markup string) *etree.Document {
	t.Helper()
	xml := etree.NewDocument()
	require.NoError(t, xml.ReadFromString(markup), "rendered markup is not well-formed XML:\n%s", markup)
	return xml
}

func TestRoundTrip_Samples(t *testing.T) {
	names, err := testutil.ValidSamples()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src, err := testutil.ReadTestData(name)
			require.NoError(t, err)

			doc, err := ssml.Parse(src)
			require.NoError(t, err)

			for _, opts := range [][]ssml.Option{
				nil,
				{ssml.Indent(2)},
				{ssml.Indent(4), ssml.Declaration()},
			} {
				out, err := ssml.Marshal(doc, opts...)
				require.NoError(t, err)
				requireWellFormed(t, string(out))

				back, err := ssml.Parse(out)
				require.NoError(t, err, "re-parsing rendered output:\n%s", out)
				requireSameTree(t, doc, back)
			}
		})
	}
}

func TestRoundTrip_XMLView(t *testing.T) {
	doc, err := ssml.ParseString(`<speak version="1.1" xml:lang="en-US"><s>Fish &amp; chips<break time="1.5ms" strength="none"/></s></speak>`)
	require.NoError(t, err)

	xml := requireWellFormed(t, ssml.Render(doc))
	root := xml.Root()
	require.NotNil(t, root)
	require.Equal(t, "speak", root.Tag)
	require.Equal(t, "1.1", root.SelectAttrValue("version", ""))

	s := root.SelectElement("s")
	require.NotNil(t, s)
	require.Equal(t, "Fish & chips", s.Text())

	b := s.SelectElement("break")
	require.NotNil(t, b)
	require.Equal(t, "1.5ms", b.SelectAttrValue("time", ""))
	require.Equal(t, "none", b.SelectAttrValue("strength", ""))
}
