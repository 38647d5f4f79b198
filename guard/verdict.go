package guard

import "github.com/tranvictor/chainguard/chains"

// VerdictKind is the compatibility decision for a destination address.
type VerdictKind string

const (
	// Compatible: the destination has EVM surface format and is safe to use
	// on the current (EVM) chain.
	Compatible VerdictKind = "compatible"
	// Incompatible: the destination belongs to a recognized non-EVM network.
	// Sending from an EVM chain would burn the funds.
	Incompatible VerdictKind = "incompatible"
	// Unrecognized: the destination matches no known format. Advisory only,
	// not a hard block.
	Unrecognized VerdictKind = "unrecognized"
)

// Verdict is the structured result of evaluating a destination address
// against the chain the user is currently on. It carries data only;
// rendering belongs to the presentation layer.
type Verdict struct {
	Kind         VerdictKind     `json:"kind"`
	CurrentChain string          `json:"current_chain"`
	Address      string          `json:"address"`
	Network      string          `json:"network,omitempty"`
	Warning      string          `json:"warning,omitempty"`
	Bridges      []chains.Bridge `json:"bridges,omitempty"`
}
