package types

// Locale identifies the display language of the marketing site. The site is
// published in German and English; German is the primary market.
type Locale string

const (
	LocaleDE Locale = "de"
	LocaleEN Locale = "en"

	LocaleDefault = LocaleDE
)

// IsValid checks if the locale is one of the supported languages
func (l Locale) IsValid() bool {
	switch l {
	case LocaleDE, LocaleEN:
		return true
	}
	return false
}

// String returns the string representation of the locale
func (l Locale) String() string {
	return string(l)
}
