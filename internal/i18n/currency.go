package i18n

import (
	"github.com/docsense/docsense/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Swiss sites conventionally show CHF amounts with the de-CH apostrophe
// grouping ("CHF 46’277"); the English site uses comma grouping.
var printers = map[types.Locale]*message.Printer{
	types.LocaleDE: message.NewPrinter(language.MustParse("de-CH")),
	types.LocaleEN: message.NewPrinter(language.English),
}

// FormatCHF renders an integer CHF amount for the given locale.
func FormatCHF(locale types.Locale, amount int) string {
	p, ok := printers[locale]
	if !ok {
		p = printers[types.LocaleDefault]
	}
	return p.Sprintf("CHF %v", number.Decimal(amount))
}

// FormatHours renders an hour count for the given locale, e.g. "487 h".
func FormatHours(locale types.Locale, hours int) string {
	p, ok := printers[locale]
	if !ok {
		p = printers[types.LocaleDefault]
	}
	return p.Sprintf("%v h", number.Decimal(hours))
}

// FormatPercent renders an integer percentage.
func FormatPercent(locale types.Locale, percent int) string {
	p, ok := printers[locale]
	if !ok {
		p = printers[types.LocaleDefault]
	}
	return p.Sprintf("%v %%", number.Decimal(percent))
}

// FormatMonths renders a payback period with one decimal place, or the
// localized "undefined" message when the period does not exist.
func FormatMonths(locale types.Locale, months *float64) string {
	if months == nil {
		return T(locale, MsgPaybackUndefined)
	}
	p, ok := printers[locale]
	if !ok {
		p = printers[types.LocaleDefault]
	}
	return p.Sprintf("%v", number.Decimal(*months, number.MaxFractionDigits(1), number.MinFractionDigits(1)))
}
