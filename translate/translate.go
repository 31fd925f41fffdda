// Package translate formats user-facing messages for the simulator in the
// language of the host locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// FALLBACK_LOCALE is used when the host reports no locale at all.
const FALLBACK_LOCALE = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.WithError(err).Warn("translate: locale")
	}

	if len(locales) == 0 {
		locales = []string{FALLBACK_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key in the host language.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}
