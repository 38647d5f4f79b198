package chains

import "regexp"

var (
	// Shelley bech32: addr1..., 55-105 chars total.
	cardanoShelleyPattern = regexp.MustCompile(`^addr1[a-z0-9]{50,100}$`)
	// Legacy Byron: Ae2..., 58-63 chars total.
	cardanoByronPattern = regexp.MustCompile(`^Ae2[1-9A-HJ-NP-Za-km-z]{55,60}$`)
)

func isCardano(address string) bool {
	return cardanoShelleyPattern.MatchString(address) || cardanoByronPattern.MatchString(address)
}

func newCardanoMatch() Match {
	return Match{
		Family: FamilyCardano,
		Name:   "Cardano",
		Bridges: []Bridge{
			{Name: "Wanchain", Reference: "wanchain.org"},
			{Name: "Milkomeda", Reference: "milkomeda.com"},
		},
		Warning: "Cardano addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
