package chains

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const eip155Prefix = "eip155:"

// evmChainNames maps hex chain ids to display names. Extend by adding
// entries, never by runtime mutation.
var evmChainNames = map[string]string{
	"0x1":      "Ethereum Mainnet",
	"0xa":      "Optimism",
	"0x38":     "BNB Smart Chain",
	"0x89":     "Polygon",
	"0xfa":     "Fantom Opera",
	"0x144":    "zkSync Era",
	"0x2105":   "Base",
	"0xa4b1":   "Arbitrum One",
	"0xa86a":   "Avalanche C-Chain",
	"0xe708":   "Linea",
	"0xaa36a7": "Sepolia Testnet",
}

// ChainName resolves a caller-supplied chain id to a display name.
//
// Ids in eip155 form ("eip155:1") are normalized to hex ("0x1") before the
// lookup; ids already in hex form are looked up verbatim. Unmapped or
// unparsable ids degrade to "Unknown Chain (<original id>)" echoing the
// caller's original, non-normalized string.
func ChainName(chainID string) string {
	hexID := chainID
	if numeric, found := strings.CutPrefix(chainID, eip155Prefix); found {
		n, err := strconv.ParseUint(numeric, 10, 64)
		if err == nil {
			hexID = hexutil.EncodeUint64(n)
		}
	}
	if name, found := evmChainNames[hexID]; found {
		return name
	}
	return fmt.Sprintf("Unknown Chain (%s)", chainID)
}

// KnownChains returns a copy of the chain-id table so callers can list or
// search it without being able to mutate the lookup itself.
func KnownChains() map[string]string {
	res := make(map[string]string, len(evmChainNames))
	for id, name := range evmChainNames {
		res[id] = name
	}
	return res
}
