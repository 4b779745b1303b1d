package cards

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English strings; English needs no entries.
const cardFormat = "%s of %s"

var translations = map[language.Tag]map[string]string{
	language.French: {
		"ace": "as", "two": "deux", "three": "trois", "four": "quatre", "five": "cinq",
		"six": "six", "seven": "sept", "eight": "huit", "nine": "neuf", "ten": "dix",
		"jack": "valet", "queen": "dame", "king": "roi", "joker": "joker",
		"clubs": "trèfles", "diamonds": "carreaux", "hearts": "cœurs", "spades": "piques",
		cardFormat: "%s de %s",
	},
	language.Spanish: {
		"ace": "as", "two": "dos", "three": "tres", "four": "cuatro", "five": "cinco",
		"six": "seis", "seven": "siete", "eight": "ocho", "nine": "nueve", "ten": "diez",
		"jack": "jota", "queen": "reina", "king": "rey", "joker": "comodín",
		"clubs": "tréboles", "diamonds": "diamantes", "hearts": "corazones", "spades": "picas",
		cardFormat: "%s de %s",
	},
	language.German: {
		"ace": "Ass", "two": "Zwei", "three": "Drei", "four": "Vier", "five": "Fünf",
		"six": "Sechs", "seven": "Sieben", "eight": "Acht", "nine": "Neun", "ten": "Zehn",
		"jack": "Bube", "queen": "Dame", "king": "König", "joker": "Joker",
		"clubs": "Kreuz", "diamonds": "Karo", "hearts": "Herz", "spades": "Pik",
		cardFormat: "%[2]s %[1]s",
	},
}

// SupportedLanguages lists the languages descriptions are available in.
var SupportedLanguages = []language.Tag{language.English, language.French, language.Spanish, language.German}

var printers = newPrinters()

func newPrinters() map[language.Base]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	out := make(map[language.Base]*message.Printer, len(SupportedLanguages))
	for _, tag := range SupportedLanguages {
		base, _ := tag.Base()
		out[base] = message.NewPrinter(tag, message.Catalog(b))
	}
	return out
}

// printerFor matches on the base language only, so "fr-CA" uses French.
func printerFor(tag language.Tag) *message.Printer {
	base, _ := tag.Base()
	if p, ok := printers[base]; ok {
		return p
	}
	en, _ := language.English.Base()
	return printers[en]
}

func (r Rank) LocalizedDescription(tag language.Tag) string {
	if !r.Valid() {
		return ""
	}
	return printerFor(tag).Sprintf(r.Description())
}

func (s Suit) LocalizedDescription(tag language.Tag) string {
	if !s.Valid() {
		return ""
	}
	return printerFor(tag).Sprintf(s.Description())
}

func (c Card) LocalizedDescription(tag language.Tag) string {
	if c.rank == Joker {
		return c.rank.LocalizedDescription(tag)
	}
	p := printerFor(tag)
	return p.Sprintf(cardFormat, p.Sprintf(c.rank.Description()), p.Sprintf(c.suit.Description()))
}
