/*
Package ssml parses and renders a subset of the Speech Synthesis Markup
Language (SSML). Markup is parsed into a typed element tree that can be
inspected and rewritten, then rendered back to markup text. The API mirrors
the shape of the standard `encoding/json` package.

The recognised vocabulary is speak, voice, p, s, phoneme, say-as, sub,
prosody, emphasis, break, mark, audio, desc, lexicon and lang. Anything
else, as well as comments, CDATA sections and DOCTYPE declarations, is a
parse error. A leading <?xml ...?> declaration is skipped.

# Parsing and rendering

	doc, err := ssml.ParseString(`<speak>Test<break time="500ms"/>continue</speak>`)
	if err != nil {
		// err is an errors.ParseErrors value listing every problem with its span.
	}
	fmt.Println(ssml.Render(doc))

Render produces compact, canonical markup: attributes in a fixed order,
leaf elements self-closing, reserved characters escaped. Rendering does not
reproduce the source layout; it guarantees that parsing the output yields a
tree equal to the one rendered. Marshal accepts the Indent and Declaration
options for readable output.

# Rewriting the tree

FindAndModify visits every element of one kind in document order:

	ssml.FindAndModify(doc, "Break", func(e ast.Element) {
		e.(*ast.Break).Duration = ast.Ptr(500 * time.Millisecond)
	})

ast.ModifyAll does the same with a typed callback.

# Interchange

MarshalJSON and MarshalYAML encode a tree as tagged records of the form
{"type": "Break", "data": {...}}; UnmarshalJSON and UnmarshalYAML reverse
the encoding without loss.
*/
package ssml
