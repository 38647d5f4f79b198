package chains

import "regexp"

// G followed by 55 uppercase alphanumeric chars, 56 total.
var stellarPattern = regexp.MustCompile(`^G[A-Z0-9]{55}$`)

func isStellar(address string) bool {
	return stellarPattern.MatchString(address)
}

func newStellarMatch() Match {
	return Match{
		Family: FamilyStellar,
		Name:   "Stellar",
		Bridges: []Bridge{
			{Name: "Allbridge", Reference: "allbridge.io"},
		},
		Warning: "Stellar addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
