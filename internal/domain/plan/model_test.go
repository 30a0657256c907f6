package plan

import (
	"testing"

	"github.com/docsense/docsense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTier(t *testing.T) {
	cases := []struct {
		name      string
		employees int
		documents int
		want      types.SubscriptionTier
		price     int
	}{
		{"smallest business", 5, 100, types.SubscriptionTierStarter, 299},
		{"starter upper boundary inclusive", 10, 5000, types.SubscriptionTierStarter, 299},
		{"one employee over starter", 11, 5000, types.SubscriptionTierProfessional, 599},
		{"one document over starter", 10, 5001, types.SubscriptionTierProfessional, 599},
		{"professional upper boundary inclusive", 50, 25000, types.SubscriptionTierProfessional, 599},
		{"one employee over professional", 51, 25000, types.SubscriptionTierEnterprise, 999},
		{"large enterprise", 2000, 100000, types.SubscriptionTierEnterprise, 999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectTier(tc.employees, tc.documents)
			assert.Equal(t, tc.want, got.Tier)
			assert.Equal(t, tc.price, got.MonthlyPriceCHF)
		})
	}
}

// Growing a business must never move it to a cheaper tier.
func TestSelectTierMonotonic(t *testing.T) {
	employees := []int{5, 10, 11, 25, 50, 51, 200, 2000}
	documents := []int{100, 5000, 5001, 25000, 25001, 100000}

	for _, docs := range documents {
		prev := 0
		for _, emp := range employees {
			price := SelectTier(emp, docs).MonthlyPriceCHF
			require.GreaterOrEqual(t, price, prev,
				"price dropped from %d to %d at employees=%d documents=%d", prev, price, emp, docs)
			prev = price
		}
	}

	for _, emp := range employees {
		prev := 0
		for _, docs := range documents {
			price := SelectTier(emp, docs).MonthlyPriceCHF
			require.GreaterOrEqual(t, price, prev,
				"price dropped from %d to %d at employees=%d documents=%d", prev, price, emp, docs)
			prev = price
		}
	}
}

func TestThresholdsEndInCatchAll(t *testing.T) {
	require.NotEmpty(t, Thresholds)
	last := Thresholds[len(Thresholds)-1]
	assert.Equal(t, Unlimited, last.MaxEmployees)
	assert.Equal(t, Unlimited, last.MaxDocuments)
}

func TestCatalogMatchesThresholds(t *testing.T) {
	require.Len(t, Catalog, len(Thresholds))
	for _, th := range Thresholds {
		p, ok := ByTier(th.Tier)
		require.True(t, ok, "no catalog entry for tier %s", th.Tier)
		assert.Equal(t, th.MonthlyPriceCHF, p.MonthlyPriceCHF, "price mismatch for tier %s", th.Tier)
		assert.Equal(t, th.MaxEmployees, p.MaxEmployees)
		assert.Equal(t, th.MaxDocuments, p.MaxDocuments)
	}
}

func TestCatalogHasCompleteCopy(t *testing.T) {
	for _, p := range Catalog {
		for _, locale := range []types.Locale{types.LocaleDE, types.LocaleEN} {
			assert.NotEmpty(t, p.Name[locale], "%s name missing for %s", p.ID, locale)
			assert.NotEmpty(t, p.Description[locale], "%s description missing for %s", p.ID, locale)
			assert.NotEmpty(t, p.Features[locale], "%s features missing for %s", p.ID, locale)
		}
	}
}
