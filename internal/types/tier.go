package types

// SubscriptionTier represents a named pricing bracket selected by
// business-size thresholds.
type SubscriptionTier string

const (
	SubscriptionTierStarter      SubscriptionTier = "starter"
	SubscriptionTierProfessional SubscriptionTier = "professional"
	SubscriptionTierEnterprise   SubscriptionTier = "enterprise"
)

// IsValid checks if the tier is one of the defined constants
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionTierStarter, SubscriptionTierProfessional, SubscriptionTierEnterprise:
		return true
	}
	return false
}

// String returns the string representation of the tier
func (t SubscriptionTier) String() string {
	return string(t)
}
