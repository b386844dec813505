//go:build go1.18

package ssml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ssml"
	"github.com/KimNorgaard/go-ssml/internal/testutil"
)

func FuzzRoundTrip(f *testing.F) {
	// Seed the corpus with the sample documents.
	names, err := testutil.ValidSamples()
	if err != nil {
		f.Fatalf("failed to list seed files: %v", err)
	}
	for _, name := range names {
		data, err := testutil.ReadTestData(name)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", name, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte("<speak></speak>"))
	f.Add([]byte(`<speak>Test<break time="500ms"/>continue</speak>`))
	f.Add([]byte(`<voice name="a" name="b">x</voice>`))
	f.Add([]byte(`<s>&lt;&amp;&gt;&quot;&#x41;</s>`))
	f.Add([]byte(`<p><mark name="m"></mark></p>`))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Invalid input must produce an error, never a panic.
		doc, err := ssml.Parse(data)
		if err != nil {
			return
		}

		// Rendering a parsed document and parsing it again must give the same tree.
		out := ssml.Render(doc)
		back, err := ssml.ParseString(out)
		require.NoError(t, err, "Parse failed on our own rendered output: %q", out)
		require.True(t, doc.Equal(back), "tree changed after a render/parse round trip:\n%s\n%s", doc, back)

		indented, err := ssml.Marshal(doc, ssml.Indent(2))
		require.NoError(t, err)
		back, err = ssml.Parse(indented)
		require.NoError(t, err, "Parse failed on indented output: %q", indented)
		require.True(t, doc.Equal(back), "tree changed after an indented round trip")
	})
}
