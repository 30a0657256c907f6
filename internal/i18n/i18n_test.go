package i18n

import (
	"strings"
	"testing"

	"github.com/docsense/docsense/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Monatliche Einsparung", T(types.LocaleDE, MsgMonthlySavings))
	assert.Equal(t, "Monthly savings", T(types.LocaleEN, MsgMonthlySavings))

	// unknown locale falls back to English
	assert.Equal(t, "Monthly savings", T("fr", MsgMonthlySavings))

	// unknown message falls back to the raw ID
	assert.Equal(t, "does_not_exist", T(types.LocaleEN, MessageID("does_not_exist")))
}

func TestCatalogComplete(t *testing.T) {
	ids := []MessageID{
		MsgHoursSavedPerMonth, MsgMonthlySavings, MsgYearlySavings,
		MsgNetMonthlySavings, MsgNetYearlySavings, MsgSubscriptionCost,
		MsgROI, MsgPaybackPeriod, MsgPaybackUndefined, MsgPerMonth,
		MsgLeadReceived, MsgRecommendedTierNote,
	}
	for _, locale := range []types.Locale{types.LocaleDE, types.LocaleEN} {
		for _, id := range ids {
			assert.NotEmpty(t, catalog[locale][id], "missing %s for %s", id, locale)
		}
	}
}

func TestFormatCHF(t *testing.T) {
	assert.Equal(t, "CHF 46,277", FormatCHF(types.LocaleEN, 46277))

	// de-CH groups with an apostrophe, never a comma
	de := FormatCHF(types.LocaleDE, 46277)
	assert.True(t, strings.HasPrefix(de, "CHF "))
	assert.NotContains(t, de, ",")
	assert.NotEqual(t, FormatCHF(types.LocaleEN, 46277), de)

	// small amounts have no grouping at all
	assert.Equal(t, "CHF 599", FormatCHF(types.LocaleEN, 599))
}

func TestFormatCHFNegative(t *testing.T) {
	assert.Equal(t, "CHF -1,234", FormatCHF(types.LocaleEN, -1234))
}

func TestFormatMonths(t *testing.T) {
	months := 1.0
	assert.Equal(t, "1.0", FormatMonths(types.LocaleEN, &months))

	assert.Equal(t, T(types.LocaleDE, MsgPaybackUndefined), FormatMonths(types.LocaleDE, nil))
	assert.Equal(t, T(types.LocaleEN, MsgPaybackUndefined), FormatMonths(types.LocaleEN, nil))
}
