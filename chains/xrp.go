package chains

import "regexp"

// r followed by 24-34 base58 chars.
var xrpPattern = regexp.MustCompile(`^r[1-9A-HJ-NP-Za-km-z]{24,34}$`)

func isXRP(address string) bool {
	return xrpPattern.MatchString(address)
}

func newXRPMatch() Match {
	return Match{
		Family: FamilyXRP,
		Name:   "XRP",
		Bridges: []Bridge{
			{Name: "Allbridge", Reference: "allbridge.io"},
		},
		Warning: "XRP addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
