// Package datefmt renders note dates the way a locale-aware short date
// looks in the user's language.
package datefmt

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"notepad/internal/types"
)

const InvalidDate = "unknown date"

type style struct {
	tag    language.Tag
	layout string
}

// Layouts follow the short numeric date of each locale.
var styles = []style{
	{tag: language.AmericanEnglish, layout: "1/2/2006"},
	{tag: language.BritishEnglish, layout: "02/01/2006"},
	{tag: language.German, layout: "2.1.2006"},
	{tag: language.French, layout: "02/01/2006"},
	{tag: language.Spanish, layout: "2/1/2006"},
	{tag: language.Italian, layout: "2/1/2006"},
	{tag: language.Dutch, layout: "2-1-2006"},
	{tag: language.Russian, layout: "02.01.2006"},
	{tag: language.Polish, layout: "2.01.2006"},
	{tag: language.BrazilianPortuguese, layout: "02/01/2006"},
	{tag: language.Japanese, layout: "2006/1/2"},
	{tag: language.SimplifiedChinese, layout: "2006/1/2"},
	{tag: language.Korean, layout: "2006. 1. 2."},
	{tag: language.Swedish, layout: "2006-01-02"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(styles))
	for i, s := range styles {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

type Formatter struct {
	layout   string
	location *time.Location
	printer  *message.Printer
}

// New builds a formatter for a BCP 47 tag or a POSIX locale such as
// "de_DE.UTF-8". Unknown locales fall back to US English.
func New(locale string) *Formatter {
	tag := parseLocale(locale)
	_, index, _ := matcher.Match(tag)
	if index < 0 || index >= len(styles) {
		index = 0
	}
	return &Formatter{
		layout:   styles[index].layout,
		location: time.Local,
		printer:  message.NewPrinter(styles[index].tag),
	}
}

func (f *Formatter) WithLocation(loc *time.Location) *Formatter {
	next := *f
	if loc != nil {
		next.location = loc
	}
	return &next
}

func (f *Formatter) Date(ts types.Timestamp) string {
	if ts.IsZero() {
		return InvalidDate
	}
	return ts.In(f.location).Format(f.layout)
}

// Count formats n with the locale's digit grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

func parseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
