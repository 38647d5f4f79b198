package chains

import "regexp"

// Plain base58, 32-44 chars. This grammar is a near-superset of the
// Bitcoin/Litecoin/XRP/Tron/Polkadot base58 grammars, so the Solana matcher
// must stay last in the matcher table.
var solanaPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

func isSolana(address string) bool {
	return solanaPattern.MatchString(address)
}

func newSolanaMatch() Match {
	return Match{
		Family: FamilySolana,
		Name:   "Solana",
		Bridges: []Bridge{
			{Name: "Wormhole", Reference: "wormhole.com"},
			{Name: "Allbridge", Reference: "allbridge.io"},
		},
		Warning: "Solana addresses are not compatible with EVM chains. Funds sent to this address cannot be recovered.",
	}
}
