// Package plan holds the static pricing catalog of the marketing site and the
// tier-selection rule used by the savings calculator.
package plan

import (
	"github.com/docsense/docsense/internal/types"
)

// Unlimited marks a threshold column with no cap. Catch-all rows use it so
// every business size matches some row.
const Unlimited = int(^uint(0) >> 1)

// Threshold is one row of the tier-selection table.
type Threshold struct {
	Tier            types.SubscriptionTier
	MaxEmployees    int
	MaxDocuments    int
	MonthlyPriceCHF int
}

// Thresholds is the ordered tier-selection table, evaluated top to bottom
// with first match winning. Boundaries are inclusive. Adding a tier means
// adding a row, not touching selection logic. The last row must be a
// catch-all.
var Thresholds = []Threshold{
	{Tier: types.SubscriptionTierStarter, MaxEmployees: 10, MaxDocuments: 5000, MonthlyPriceCHF: 299},
	{Tier: types.SubscriptionTierProfessional, MaxEmployees: 50, MaxDocuments: 25000, MonthlyPriceCHF: 599},
	{Tier: types.SubscriptionTierEnterprise, MaxEmployees: Unlimited, MaxDocuments: Unlimited, MonthlyPriceCHF: 999},
}

// SelectTier returns the first threshold row matching the given business
// size.
func SelectTier(employeeCount, documentVolume int) Threshold {
	for _, t := range Thresholds {
		if employeeCount <= t.MaxEmployees && documentVolume <= t.MaxDocuments {
			return t
		}
	}
	// The table ends in a catch-all row, so this is unreachable; returning
	// the last row keeps the function total regardless of table edits.
	return Thresholds[len(Thresholds)-1]
}

// Plan is one entry of the pricing-page catalog: the threshold row plus the
// localized copy shown next to it.
type Plan struct {
	ID              string
	Tier            types.SubscriptionTier
	MonthlyPriceCHF int
	MaxEmployees    int
	MaxDocuments    int
	Name            map[types.Locale]string
	Description     map[types.Locale]string
	Features        map[types.Locale][]string
	Highlighted     bool
}

// Catalog is the static pricing catalog. Copy lives here rather than in a CMS
// because the site ships as a unit and the plans change with the binary.
var Catalog = []Plan{
	{
		ID:              "plan_starter",
		Tier:            types.SubscriptionTierStarter,
		MonthlyPriceCHF: 299,
		MaxEmployees:    10,
		MaxDocuments:    5000,
		Name: map[types.Locale]string{
			types.LocaleDE: "Starter",
			types.LocaleEN: "Starter",
		},
		Description: map[types.Locale]string{
			types.LocaleDE: "Für kleine Teams, die ihre Dokumente endlich durchsuchbar machen wollen.",
			types.LocaleEN: "For small teams that finally want their documents to be searchable.",
		},
		Features: map[types.Locale][]string{
			types.LocaleDE: {
				"Bis 10 Mitarbeitende",
				"Bis 5'000 Dokumente",
				"Chat auf Deutsch und Englisch",
				"E-Mail-Support",
			},
			types.LocaleEN: {
				"Up to 10 employees",
				"Up to 5,000 documents",
				"Chat in German and English",
				"Email support",
			},
		},
	},
	{
		ID:              "plan_professional",
		Tier:            types.SubscriptionTierProfessional,
		MonthlyPriceCHF: 599,
		MaxEmployees:    50,
		MaxDocuments:    25000,
		Highlighted:     true,
		Name: map[types.Locale]string{
			types.LocaleDE: "Professional",
			types.LocaleEN: "Professional",
		},
		Description: map[types.Locale]string{
			types.LocaleDE: "Für wachsende KMU mit mehreren Abteilungen und Wissensquellen.",
			types.LocaleEN: "For growing SMEs with multiple departments and knowledge sources.",
		},
		Features: map[types.Locale][]string{
			types.LocaleDE: {
				"Bis 50 Mitarbeitende",
				"Bis 25'000 Dokumente",
				"Anbindung von SharePoint und Google Drive",
				"Prioritäts-Support",
			},
			types.LocaleEN: {
				"Up to 50 employees",
				"Up to 25,000 documents",
				"SharePoint and Google Drive connectors",
				"Priority support",
			},
		},
	},
	{
		ID:              "plan_enterprise",
		Tier:            types.SubscriptionTierEnterprise,
		MonthlyPriceCHF: 999,
		MaxEmployees:    Unlimited,
		MaxDocuments:    Unlimited,
		Name: map[types.Locale]string{
			types.LocaleDE: "Enterprise",
			types.LocaleEN: "Enterprise",
		},
		Description: map[types.Locale]string{
			types.LocaleDE: "Für Organisationen mit hohen Anforderungen an Datenschutz und Betrieb.",
			types.LocaleEN: "For organizations with strict requirements on data protection and operations.",
		},
		Features: map[types.Locale][]string{
			types.LocaleDE: {
				"Unbegrenzte Mitarbeitende und Dokumente",
				"Hosting in der Schweiz",
				"Single Sign-On",
				"Dedizierte Ansprechperson",
			},
			types.LocaleEN: {
				"Unlimited employees and documents",
				"Hosting in Switzerland",
				"Single sign-on",
				"Dedicated account manager",
			},
		},
	},
}

// ByTier returns the catalog entry for a tier.
func ByTier(tier types.SubscriptionTier) (Plan, bool) {
	for _, p := range Catalog {
		if p.Tier == tier {
			return p, true
		}
	}
	return Plan{}, false
}
