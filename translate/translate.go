// Package translate formats user visible text for the simulator in the
// language of the host locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("fdesim: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes an en-US Printf() format, translated, to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}

// Fprintln writes a translated en-US Printf() format to w, followed by a newline.
func Fprintln(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	n, err = printer.Fprintf(w, key, args...)
	if err != nil {
		return
	}

	m, err := io.WriteString(w, "\n")
	n += m
	return
}
