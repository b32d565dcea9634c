// Package translate renders en-US message keys in the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	printer = message.NewPrinter(match(userLocales()))
}

// userLocales is the preferred locale list of the user, falling back to en-US.
func userLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("griter: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

func match(locales []string) language.Tag {
	return message.MatchLanguage(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
