package types

const (
	HeaderRequestID = "X-Request-ID"
	HeaderLocale    = "X-Locale"
)
