package util

import (
	"github.com/tranvictor/chainguard/ui"
)

// VerdictDisplay is the presentation-ready form of a guard.Verdict: every
// value that needs colour emphasis is a StyledText, and the bridge list is
// flattened into table rows. Building it is pure — no UI side effects —
// so tests can assert on the data before any rendering happens.
type VerdictDisplay struct {
	Title        string
	CurrentChain ui.StyledText
	Address      ui.StyledText
	Network      ui.StyledText
	Warning      string
	Note         string
	BridgeRows   [][]string
}
