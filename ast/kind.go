package ast

import "strconv"

// Kind identifies the variant of an Element.
type Kind int

const (
	KindSpeak Kind = iota
	KindVoice
	KindParagraph
	KindSentence
	KindPhoneme
	KindSayAs
	KindSub
	KindProsody
	KindEmphasis
	KindBreak
	KindMark
	KindAudio
	KindDesc
	KindLexiconReference
	KindLang
	KindText
)

var kindNames = [...]string{
	KindSpeak:            "Speak",
	KindVoice:            "Voice",
	KindParagraph:        "Paragraph",
	KindSentence:         "Sentence",
	KindPhoneme:          "Phoneme",
	KindSayAs:            "SayAs",
	KindSub:              "Sub",
	KindProsody:          "Prosody",
	KindEmphasis:         "Emphasis",
	KindBreak:            "Break",
	KindMark:             "Mark",
	KindAudio:            "Audio",
	KindDesc:             "Desc",
	KindLexiconReference: "LexiconReference",
	KindLang:             "Lang",
	KindText:             "Text",
}

// kindTags holds the markup tag of every kind. Text has none.
var kindTags = [...]string{
	KindSpeak:            "speak",
	KindVoice:            "voice",
	KindParagraph:        "p",
	KindSentence:         "s",
	KindPhoneme:          "phoneme",
	KindSayAs:            "say-as",
	KindSub:              "sub",
	KindProsody:          "prosody",
	KindEmphasis:         "emphasis",
	KindBreak:            "break",
	KindMark:             "mark",
	KindAudio:            "audio",
	KindDesc:             "desc",
	KindLexiconReference: "lexicon",
	KindLang:             "lang",
	KindText:             "",
}

var (
	kindsByName = make(map[string]Kind, len(kindNames))
	kindsByTag  = make(map[string]Kind, len(kindTags))
)

func init() {
	for k, name := range kindNames {
		kindsByName[name] = Kind(k)
	}
	for k, tag := range kindTags {
		if tag != "" {
			kindsByTag[tag] = Kind(k)
		}
	}
}

// Kinds returns every element kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// String returns the variant name, e.g. "Break".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Tag returns the markup tag name, e.g. "say-as". It is empty for KindText.
func (k Kind) Tag() string {
	if k < 0 || int(k) >= len(kindTags) {
		return ""
	}
	return kindTags[k]
}

// IsLeaf reports whether elements of this kind never have children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindBreak, KindMark, KindLexiconReference, KindText:
		return true
	}
	return false
}

// kindAliases maps alternative variant names to their kind.
var kindAliases = map[string]Kind{
	"LexiconUri": KindLexiconReference,
}

// ParseKind looks up a kind by its variant name. "LexiconUri" is accepted
// as another name for KindLexiconReference.
func ParseKind(name string) (Kind, bool) {
	if k, ok := kindsByName[name]; ok {
		return k, true
	}
	k, ok := kindAliases[name]
	return k, ok
}

// KindForTag looks up a kind by its markup tag name.
func KindForTag(tag string) (Kind, bool) {
	k, ok := kindsByTag[tag]
	return k, ok
}

// newElement returns a zero element of kind k.
func (k Kind) newElement() Element {
	switch k {
	case KindSpeak:
		return &Speak{}
	case KindVoice:
		return &Voice{}
	case KindParagraph:
		return &Paragraph{}
	case KindSentence:
		return &Sentence{}
	case KindPhoneme:
		return &Phoneme{}
	case KindSayAs:
		return &SayAs{}
	case KindSub:
		return &Sub{}
	case KindProsody:
		return &Prosody{}
	case KindEmphasis:
		return &Emphasis{}
	case KindBreak:
		return &Break{}
	case KindMark:
		return &Mark{}
	case KindAudio:
		return &Audio{}
	case KindDesc:
		return &Desc{}
	case KindLexiconReference:
		return &LexiconReference{}
	case KindLang:
		return &Lang{}
	case KindText:
		return &Text{}
	}
	return nil
}
