// Package guard decides whether a destination address is compatible with
// the chain a transaction is being sent on.
//
// The host (a wallet, a tx-interception hook, the CLI in this repo) hands
// us the current chain id and the raw destination; we hand back a Verdict
// of plain data. Classification is pure and deterministic: no I/O, no
// shared state, no failure modes.
package guard

import "github.com/tranvictor/chainguard/chains"

// Classify resolves an address to its network family by surface format.
// It is a thin re-export of chains.Detect for collaborators that only need
// classification without a compatibility decision.
func Classify(address string) (chains.Match, bool) {
	return chains.Detect(address)
}

// Evaluate produces a compatibility verdict for sending to toAddress while
// on currentChainID (an "eip155:N" or "0x..." identifier).
//
// A missing destination yields no verdict (nil): there is nothing to warn
// about and callers suppress any output.
func Evaluate(currentChainID, toAddress string) *Verdict {
	if toAddress == "" {
		return nil
	}

	currentChain := chains.ChainName(currentChainID)

	match, found := chains.Detect(toAddress)
	if !found {
		return &Verdict{
			Kind:         Unrecognized,
			CurrentChain: currentChain,
			Address:      toAddress,
		}
	}

	if match.IsEVM {
		return &Verdict{
			Kind:         Compatible,
			CurrentChain: currentChain,
			Address:      toAddress,
			Network:      match.Name,
		}
	}

	return &Verdict{
		Kind:         Incompatible,
		CurrentChain: currentChain,
		Address:      toAddress,
		Network:      match.Name,
		Warning:      match.Warning,
		Bridges:      match.Bridges,
	}
}
