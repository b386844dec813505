package ssml_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ssml"
	"github.com/KimNorgaard/go-ssml/ast"
	ssmlerrors "github.com/KimNorgaard/go-ssml/errors"
)

func TestParse_MinimalDocument(t *testing.T) {
	doc, err := ssml.ParseString("<speak>Hello world</speak>")
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)

	speak, ok := doc.Elements[0].(*ast.Speak)
	require.True(t, ok, "doc.Elements[0] is not *ast.Speak, got=%T", doc.Elements[0])
	require.Equal(t, ast.Nodes{&ast.Text{Value: "Hello world"}}, speak.Children)
}

func TestParse_MixedTextAndElements(t *testing.T) {
	doc, err := ssml.ParseString(`<speak>Test<break time="500ms"/>continue</speak>`)
	require.NoError(t, err)

	speak := doc.Elements[0].(*ast.Speak)
	require.Len(t, speak.Children, 3)
	require.Equal(t, &ast.Text{Value: "Test"}, speak.Children[0])
	require.Equal(t, &ast.Break{Duration: ast.Ptr(500 * time.Millisecond)}, speak.Children[1])
	require.Equal(t, &ast.Text{Value: "continue"}, speak.Children[2])
}

func TestParse_DuplicateAttribute(t *testing.T) {
	doc, err := ssml.ParseString(`<voice name="a" name="b">x</voice>`)
	require.NoError(t, err)
	require.Equal(t, "b", doc.Elements[0].(*ast.Voice).Name)
}

func TestParse_LenientSubValue(t *testing.T) {
	doc, err := ssml.ParseString(`<break time="not-a-duration"/>`)
	require.NoError(t, err)
	b := doc.Elements[0].(*ast.Break)
	require.Nil(t, b.Duration)
	require.Nil(t, b.Strength)
}

func TestParse_SelfClosingEquivalence(t *testing.T) {
	selfClosing, err := ssml.ParseString(`<speak><break time="500ms"/></speak>`)
	require.NoError(t, err)
	openClose, err := ssml.ParseString(`<speak><break time="500ms"></break></speak>`)
	require.NoError(t, err)
	require.Equal(t, selfClosing, openClose)
}

func TestParse_Errors(t *testing.T) {
	doc, err := ssml.ParseString("<speak>\n  <p>Hello\n</speak>")
	require.Nil(t, doc)
	require.EqualError(t, err, "ssml: parsing error at line 3, column 1: mismatched closing tag </speak>, expected </p>")

	var parseErrs ssmlerrors.ParseErrors
	require.True(t, errors.As(err, &parseErrs))
	require.Len(t, parseErrs, 1)
	require.Equal(t, 3, parseErrs[0].Span.Start.Line)
	require.Equal(t, 1, parseErrs[0].Span.Start.Column)
}

func TestParse_MaxDepth(t *testing.T) {
	input := strings.Repeat("<p>", 5) + "x" + strings.Repeat("</p>", 5)

	_, err := ssml.ParseString(input, ssml.MaxDepth(4))
	require.ErrorContains(t, err, "maximum nesting depth of 4 exceeded")

	_, err = ssml.ParseString(input, ssml.MaxDepth(5))
	require.NoError(t, err)

	_, err = ssml.ParseString(input, ssml.MaxDepth(0))
	require.EqualError(t, err, "ssml: max depth must be a positive integer")
}

func TestRender_EscapingRoundTrip(t *testing.T) {
	const content = `if a < b && c > "d"`
	doc := &ast.Document{Elements: ast.Nodes{&ast.Speak{Children: ast.Nodes{&ast.Text{Value: content}}}}}

	out := ssml.Render(doc)
	require.Equal(t, `<speak>if a &lt; b &amp;&amp; c &gt; &quot;d&quot;</speak>`, out)

	back, err := ssml.ParseString(out)
	require.NoError(t, err)
	require.Equal(t, content, back.Elements[0].(*ast.Speak).Children[0].(*ast.Text).Value)
}

func TestRender_NegativeBreakDuration(t *testing.T) {
	doc := &ast.Document{Elements: ast.Nodes{&ast.Break{Duration: ast.Ptr(-time.Second)}}}

	out := ssml.Render(doc)
	require.Equal(t, `<break/>`, out)

	back, err := ssml.ParseString(out)
	require.NoError(t, err)
	require.Equal(t, &ast.Break{}, back.Elements[0])
}

func TestRender_Nil(t *testing.T) {
	require.Empty(t, ssml.Render(nil))
	require.Empty(t, ssml.Render(&ast.Document{}))
}

func TestMarshal_Options(t *testing.T) {
	doc, err := ssml.ParseString(`<speak><p>One<break/>Two</p></speak>`)
	require.NoError(t, err)

	t.Run("Compact by default", func(t *testing.T) {
		b, err := ssml.Marshal(doc)
		require.NoError(t, err)
		require.Equal(t, `<speak><p>One<break/>Two</p></speak>`, string(b))
	})

	t.Run("Indent", func(t *testing.T) {
		b, err := ssml.Marshal(doc, ssml.Indent(2))
		require.NoError(t, err)
		require.Equal(t, "<speak>\n  <p>\n    One\n    <break/>\n    Two\n  </p>\n</speak>", string(b))
	})

	t.Run("Declaration", func(t *testing.T) {
		b, err := ssml.Marshal(doc, ssml.Declaration())
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><speak><p>One<break/>Two</p></speak>`, string(b))

		back, err := ssml.Parse(b)
		require.NoError(t, err)
		require.True(t, doc.Equal(back))
	})

	t.Run("Invalid Indent option", func(t *testing.T) {
		_, err := ssml.Marshal(doc, ssml.Indent(-1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "indent spaces cannot be negative")
	})

	t.Run("Nil document", func(t *testing.T) {
		_, err := ssml.Marshal(nil)
		require.ErrorIs(t, err, ssml.ErrNilDocument)
	})
}

func TestFormat(t *testing.T) {
	out, err := ssml.Format([]byte("<speak >\n  Hello <break strength=\"weak\" time=\"1s\"></break>\n</speak >"))
	require.NoError(t, err)
	require.Equal(t, `<speak>Hello<break time="1000ms" strength="weak"/></speak>`, string(out))

	_, err = ssml.Format([]byte("<speak>"))
	require.ErrorContains(t, err, "unclosed element <speak>")
}

func twoBreaks(t *testing.T) *ast.Document {
	t.Helper()
	doc, err := ssml.ParseString(`<speak>One<break time="100ms"/><p>Two<break strength="strong"/></p></speak>`)
	require.NoError(t, err)
	return doc
}

func TestFindAndModify(t *testing.T) {
	doc := twoBreaks(t)

	modified := ssml.FindAndModify(doc, "Break", func(e ast.Element) {
		e.(*ast.Break).Duration = ast.Ptr(500 * time.Millisecond)
	})
	require.True(t, modified)
	require.Equal(t, `<speak>One<break time="500ms"/><p>Two<break time="500ms" strength="strong"/></p></speak>`, ssml.Render(doc))

	before := ssml.Render(doc)
	modified = ssml.FindAndModify(doc, "Mark", func(ast.Element) {
		t.Fatal("modify called without a match")
	})
	require.False(t, modified)
	require.Equal(t, before, ssml.Render(doc))
}

func TestFindAndModify_UnknownKind(t *testing.T) {
	doc := twoBreaks(t)
	require.False(t, ssml.FindAndModify(doc, "break", func(ast.Element) {}))
	require.False(t, ssml.FindAndModify(doc, "Blink", func(ast.Element) {}))
	require.False(t, ssml.FindAndModify(nil, "Break", func(ast.Element) {}))
}

func TestFindAndModify_LexiconAlias(t *testing.T) {
	doc, err := ssml.ParseString(`<speak><lexicon uri="a.pls"/>Hi</speak>`)
	require.NoError(t, err)

	require.True(t, ssml.FindAndModify(doc, "LexiconUri", func(e ast.Element) {
		e.(*ast.LexiconReference).URI = "b.pls"
	}))
	require.Equal(t, `<speak><lexicon uri="b.pls"/>Hi</speak>`, ssml.Render(doc))
}

func TestFindAndModify_Text(t *testing.T) {
	doc := twoBreaks(t)
	require.True(t, ssml.FindAndModify(doc, "Text", func(e ast.Element) {
		e.(*ast.Text).Value = strings.ToUpper(e.(*ast.Text).Value)
	}))
	require.Equal(t, `<speak>ONE<break time="100ms"/><p>TWO<break strength="strong"/></p></speak>`, ssml.Render(doc))
}

func TestCanonicalizeLanguages(t *testing.T) {
	doc, err := ssml.ParseString(`<speak xml:lang="en-us"><lang xml:lang="FR-ca">Allô</lang><lang xml:lang="not a tag">x</lang><lang>y</lang></speak>`)
	require.NoError(t, err)

	require.True(t, ssml.CanonicalizeLanguages(doc))
	require.Equal(t, `<speak xml:lang="en-US"><lang xml:lang="fr-CA">Allô</lang><lang xml:lang="not a tag">x</lang><lang>y</lang></speak>`, ssml.Render(doc))

	require.False(t, ssml.CanonicalizeLanguages(doc), "already canonical")
	require.False(t, ssml.CanonicalizeLanguages(nil))
}
