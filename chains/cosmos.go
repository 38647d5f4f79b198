package chains

import "regexp"

// cosmos1 followed by 38 lowercase alphanumeric chars (bech32 data part).
var cosmosPattern = regexp.MustCompile(`^cosmos1[a-z0-9]{38}$`)

func isCosmos(address string) bool {
	return cosmosPattern.MatchString(address)
}

func newCosmosMatch() Match {
	return Match{
		Family: FamilyCosmos,
		Name:   "Cosmos",
		Bridges: []Bridge{
			{Name: "Axelar", Reference: "axelar.network"},
			{Name: "Gravity Bridge", Reference: "gravitybridge.net"},
		},
		Warning: "Cosmos addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
