package ssml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ssml"
	"github.com/KimNorgaard/go-ssml/ast"
	"github.com/KimNorgaard/go-ssml/internal/testutil"
)

func TestMarshalJSON(t *testing.T) {
	doc, err := ssml.ParseString(`<speak version="1.1">Hi<break time="500ms"/></speak>`)
	require.NoError(t, err)

	data, err := ssml.MarshalJSON(doc)
	require.NoError(t, err)
	require.JSONEq(t, `{"elements":[{"type":"Speak","data":{
		"version":"1.1","xmlns":null,"lang":null,
		"children":[
			{"type":"Text","data":"Hi"},
			{"type":"Break","data":{"time":500000000,"strength":null}}
		]}}]}`, string(data))

	back, err := ssml.UnmarshalJSON(data)
	require.NoError(t, err)
	require.Equal(t, doc, back)

	_, err = ssml.MarshalJSON(nil)
	require.ErrorIs(t, err, ssml.ErrNilDocument)
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	_, err := ssml.UnmarshalJSON([]byte(`{"elements":[{"type":"Marquee","data":{}}]}`))
	var unknown *ast.UnknownKindError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Marquee", unknown.Name)

	_, err = ssml.UnmarshalJSON([]byte(`{"elements":`))
	require.Error(t, err)
}

func TestInterchange_RoundTripSamples(t *testing.T) {
	names, err := testutil.ValidSamples()
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src, err := testutil.ReadTestData(name)
			require.NoError(t, err)
			doc, err := ssml.Parse(src)
			require.NoError(t, err)

			js, err := ssml.MarshalJSON(doc)
			require.NoError(t, err)
			fromJSON, err := ssml.UnmarshalJSON(js)
			require.NoError(t, err)
			requireSameTree(t, doc, fromJSON)

			y, err := ssml.MarshalYAML(doc)
			require.NoError(t, err)
			fromYAML, err := ssml.UnmarshalYAML(y)
			require.NoError(t, err, "yaml:\n%s", y)
			requireSameTree(t, doc, fromYAML)
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	doc := &ast.Document{Elements: ast.Nodes{&ast.Mark{Name: "here"}}}

	y, err := ssml.MarshalYAML(doc)
	require.NoError(t, err)
	require.Contains(t, string(y), "type: Mark")
	require.Contains(t, string(y), "name: here")

	back, err := ssml.UnmarshalYAML(y)
	require.NoError(t, err)
	require.Equal(t, doc, back)

	_, err = ssml.UnmarshalYAML([]byte("elements: [\n"))
	require.Error(t, err)
}
