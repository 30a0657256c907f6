package types

import "context"

// ContextKey is the type used for all values stored in a request context.
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxLocale    ContextKey = "ctx_locale"
)

// GetRequestID returns the request ID from the context, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

// GetLocale returns the locale from the context, falling back to the default.
func GetLocale(ctx context.Context) Locale {
	if l, ok := ctx.Value(CtxLocale).(Locale); ok && l.IsValid() {
		return l
	}
	return LocaleDefault
}
