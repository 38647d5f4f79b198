package chains

import "regexp"

// T followed by 33 alphanumeric chars, 34 total.
var tronPattern = regexp.MustCompile(`^T[a-zA-Z0-9]{33}$`)

func isTron(address string) bool {
	return tronPattern.MatchString(address)
}

func newTronMatch() Match {
	return Match{
		Family: FamilyTron,
		Name:   "Tron",
		Bridges: []Bridge{
			{Name: "Bridgers", Reference: "bridgers.xyz"},
			{Name: "Allbridge", Reference: "allbridge.io"},
		},
		Warning: "Tron addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
