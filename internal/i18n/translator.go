// Package i18n translates the fixed labels the selectors emit.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	MsgPleaseChoose       = "Please choose"
	MsgUploadDirectory    = "Upload directory"
	MsgDatabaseFileSystem = "Database file system"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		MsgPleaseChoose:       "Bitte wählen",
		MsgUploadDirectory:    "Upload-Verzeichnis",
		MsgDatabaseFileSystem: "Datenbank-Dateisystem",
	},
}

// Translator resolves locales and prints translated labels.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// New builds a translator whose fallback locale is defaultLocale. An
// unparsable locale falls back to English.
func New(defaultLocale string) *Translator {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		fallback = language.English
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	supported := []language.Tag{fallback, language.English}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// SetString only fails on malformed messages.
			_ = b.SetString(tag, key, msg)
		}
		supported = append(supported, tag)
	}

	return &Translator{
		catalog:  b,
		matcher:  language.NewMatcher(supported),
		fallback: fallback,
	}
}

// Match picks the best supported locale for a list of preferences, each either
// a locale code or an Accept-Language header. Empty preferences are skipped.
func (t *Translator) Match(prefs ...string) language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.fallback
	}
	tag, _, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.fallback
	}
	return tag
}

// Printer returns a printer bound to tag.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Translate returns key in the language of tag, or key itself when there is
// no translation.
func (t *Translator) Translate(tag language.Tag, key string) string {
	return t.Printer(tag).Sprintf(key)
}

// Fallback returns the default locale.
func (t *Translator) Fallback() language.Tag {
	return t.fallback
}
