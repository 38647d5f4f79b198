package chains

import "regexp"

var (
	// Base58Check P2PKH/P2SH: leading 1 or 3, 26-35 chars total.
	bitcoinLegacyPattern = regexp.MustCompile(`^[13][1-9A-HJ-NP-Za-km-z]{25,34}$`)
	// Bech32 segwit: bc1..., 42-62 chars total.
	bitcoinBech32Pattern = regexp.MustCompile(`^bc1[a-z0-9]{39,59}$`)
)

func isBitcoin(address string) bool {
	return bitcoinLegacyPattern.MatchString(address) || bitcoinBech32Pattern.MatchString(address)
}

func newBitcoinMatch() Match {
	return Match{
		Family: FamilyBitcoin,
		Name:   "Bitcoin",
		Bridges: []Bridge{
			{Name: "Thorchain", Reference: "thorchain.org"},
			{Name: "Symbiosis", Reference: "symbiosis.finance"},
		},
		Warning: "Bitcoin addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
