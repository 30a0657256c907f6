// Package i18n holds the localized copy of the API responses and the Swiss
// currency formatting used on the marketing site. The calculator core returns
// raw numbers; everything human-readable is produced here.
package i18n

import (
	"github.com/docsense/docsense/internal/types"
)

// MessageID keys the static message catalog. Messages are looked up by typed
// identifier, never by matching raw strings at runtime.
type MessageID string

const (
	MsgHoursSavedPerMonth  MessageID = "hours_saved_per_month"
	MsgMonthlySavings      MessageID = "monthly_savings"
	MsgYearlySavings       MessageID = "yearly_savings"
	MsgNetMonthlySavings   MessageID = "net_monthly_savings"
	MsgNetYearlySavings    MessageID = "net_yearly_savings"
	MsgSubscriptionCost    MessageID = "subscription_cost"
	MsgROI                 MessageID = "roi"
	MsgPaybackPeriod       MessageID = "payback_period"
	MsgPaybackUndefined    MessageID = "payback_undefined"
	MsgPerMonth            MessageID = "per_month"
	MsgLeadReceived        MessageID = "lead_received"
	MsgRecommendedTierNote MessageID = "recommended_tier_note"
)

var catalog = map[types.Locale]map[MessageID]string{
	types.LocaleDE: {
		MsgHoursSavedPerMonth:  "Gesparte Stunden pro Monat",
		MsgMonthlySavings:      "Monatliche Einsparung",
		MsgYearlySavings:       "Jährliche Einsparung",
		MsgNetMonthlySavings:   "Netto-Einsparung pro Monat",
		MsgNetYearlySavings:    "Netto-Einsparung pro Jahr",
		MsgSubscriptionCost:    "Abo-Kosten",
		MsgROI:                 "Return on Investment",
		MsgPaybackPeriod:       "Amortisationszeit",
		MsgPaybackUndefined:    "Keine Amortisation bei dieser Eingabe",
		MsgPerMonth:            "pro Monat",
		MsgLeadReceived:        "Vielen Dank! Wir melden uns innerhalb eines Arbeitstags.",
		MsgRecommendedTierNote: "Empfohlenes Abo für Ihre Unternehmensgrösse",
	},
	types.LocaleEN: {
		MsgHoursSavedPerMonth:  "Hours saved per month",
		MsgMonthlySavings:      "Monthly savings",
		MsgYearlySavings:       "Yearly savings",
		MsgNetMonthlySavings:   "Net monthly savings",
		MsgNetYearlySavings:    "Net yearly savings",
		MsgSubscriptionCost:    "Subscription cost",
		MsgROI:                 "Return on investment",
		MsgPaybackPeriod:       "Payback period",
		MsgPaybackUndefined:    "No payback for these inputs",
		MsgPerMonth:            "per month",
		MsgLeadReceived:        "Thank you! We will get back to you within one business day.",
		MsgRecommendedTierNote: "Recommended plan for your company size",
	},
}

// T returns the message for the given locale, falling back to English and
// finally to the raw message ID so a missing entry is visible, not fatal.
func T(locale types.Locale, id MessageID) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[id]; ok {
			return msg
		}
	}
	if msg, ok := catalog[types.LocaleEN][id]; ok {
		return msg
	}
	return string(id)
}
