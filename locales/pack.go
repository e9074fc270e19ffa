package locales

// Pack is the set of translations for every language, keyed by language code.
// Languages keeps the order in which the languages were resolved.
type Pack struct {
	Languages []string
	Messages  map[string]*Messages
}

func NewPack(languages []string) *Pack {
	pack := Pack{
		Languages: append([]string{}, languages...),
		Messages:  map[string]*Messages{},
	}

	for _, lang := range languages {
		pack.Messages[lang] = NewMessages()
	}

	return &pack
}

// Set stores a translation, adding the language if it is not already part of
// the pack.
func (p *Pack) Set(language, key, value string) {
	m, ok := p.Messages[language]
	if !ok {
		m = NewMessages()
		p.Messages[language] = m
		p.Languages = append(p.Languages, language)
	}

	m.Set(key, value)
}

func (p *Pack) Get(language, key string) (string, bool) {
	if m, ok := p.Messages[language]; ok {
		return m.Get(key)
	}

	return "", false
}
