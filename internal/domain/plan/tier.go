package plan

import "fmt"

// Tier identifies a plan level. The tier determines which extension rows are
// expected to exist for a plan id.
type Tier string

const (
	TierBasico     Tier = "basico"
	TierIntermedio Tier = "intermedio"
	TierPremium    Tier = "premium"
)

// ParseTier validates a tier label.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierBasico, TierIntermedio, TierPremium:
		return Tier(s), nil
	}
	return "", fmt.Errorf("invalid plan tier: %q", s)
}

func (t Tier) String() string {
	return string(t)
}

// HasIntermediate reports whether plans of this tier own an intermediate
// extension row. Premium extends intermediate.
func (t Tier) HasIntermediate() bool {
	return t == TierIntermedio || t == TierPremium
}

// HasPremium reports whether plans of this tier own a premium extension row.
func (t Tier) HasPremium() bool {
	return t == TierPremium
}
