package ast

import "golang.org/x/text/language"

// LanguageTag parses the xml:lang attribute. An absent attribute yields language.Und.
func (e *Speak) LanguageTag() (language.Tag, error) {
	if e.Language == nil {
		return language.Und, nil
	}
	return language.Parse(*e.Language)
}

// LanguageTag parses the xml:lang attribute. An empty attribute yields language.Und.
func (e *Lang) LanguageTag() (language.Tag, error) {
	if e.Language == "" {
		return language.Und, nil
	}
	return language.Parse(e.Language)
}

// CanonicalLanguage returns the canonical BCP 47 form of tag and whether it
// differs from the input. Tags that do not parse are returned unchanged.
func CanonicalLanguage(tag string) (string, bool) {
	t, err := language.Parse(tag)
	if err != nil {
		return tag, false
	}
	canonical := t.String()
	return canonical, canonical != tag
}
