package chains

import "regexp"

// SS58 with the generic prefix: leading 1, exactly 48 chars total.
var polkadotPattern = regexp.MustCompile(`^1[1-9A-HJ-NP-Za-km-z]{47}$`)

func isPolkadot(address string) bool {
	return polkadotPattern.MatchString(address)
}

func newPolkadotMatch() Match {
	return Match{
		Family: FamilyPolkadot,
		Name:   "Polkadot",
		Bridges: []Bridge{
			{Name: "Snowbridge", Reference: "snowbridge.network"},
			{Name: "Wanchain", Reference: "wanchain.org"},
		},
		Warning: "Polkadot addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
