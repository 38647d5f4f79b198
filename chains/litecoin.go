package chains

import "regexp"

var (
	// Base58 L or M prefix, 27-34 chars total.
	litecoinLegacyPattern = regexp.MustCompile(`^[LM][1-9A-HJ-NP-Za-km-z]{26,33}$`)
	// Bech32: ltc1..., 43-63 chars total.
	litecoinBech32Pattern = regexp.MustCompile(`^ltc1[a-z0-9]{39,59}$`)
)

func isLitecoin(address string) bool {
	return litecoinLegacyPattern.MatchString(address) || litecoinBech32Pattern.MatchString(address)
}

func newLitecoinMatch() Match {
	return Match{
		Family: FamilyLitecoin,
		Name:   "Litecoin",
		Bridges: []Bridge{
			{Name: "Thorchain", Reference: "thorchain.org"},
		},
		Warning: "Litecoin addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
