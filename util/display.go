package util

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/chainguard/chains"
	"github.com/tranvictor/chainguard/guard"
	"github.com/tranvictor/chainguard/ui"
)

// displayAddress normalizes an address for display. EVM-format addresses
// are shown in their EIP-55 checksummed form; everything else is echoed
// verbatim (we never case-fold or trim what the user gave us).
func displayAddress(address string) string {
	match, found := chains.Detect(address)
	if found && match.IsEVM {
		return ethcommon.HexToAddress(address).Hex()
	}
	return address
}

// ── Build phase (pure: no UI side-effects) ──────────────────────────────────

// BuildVerdictDisplay converts a verdict into its presentation-ready form.
func BuildVerdictDisplay(v *guard.Verdict) VerdictDisplay {
	d := VerdictDisplay{
		CurrentChain: ui.StyledText{Text: v.CurrentChain, Severity: ui.SeverityInfo},
		Address:      ui.StyledText{Text: displayAddress(v.Address), Severity: ui.SeverityInfo},
	}

	switch v.Kind {
	case guard.Compatible:
		d.Title = "Compatible destination"
		d.Address.Severity = ui.SeveritySuccess
		d.Note = "The destination has EVM format and can receive funds on " + v.CurrentChain + "."
	case guard.Incompatible:
		d.Title = "Incompatible destination"
		d.Address.Severity = ui.SeverityError
		d.Network = ui.StyledText{Text: v.Network, Severity: ui.SeverityError}
		d.Warning = v.Warning
		for _, b := range v.Bridges {
			d.BridgeRows = append(d.BridgeRows, []string{b.Name, b.Reference})
		}
	case guard.Unrecognized:
		d.Title = "Unrecognized destination"
		d.Address.Severity = ui.SeverityWarn
		d.Note = "The address matches no known network format. Double-check it before sending on " + v.CurrentChain + "."
	}
	return d
}

// ── Render phase ────────────────────────────────────────────────────────────

// RenderVerdict renders a verdict panel: a section heading, the metadata
// block, then the warning and bridge suggestions for incompatible
// destinations. A nil verdict renders nothing — the caller had no
// destination to check.
func RenderVerdict(u ui.UI, v *guard.Verdict) {
	if v == nil {
		return
	}
	d := BuildVerdictDisplay(v)

	u.Section(d.Title)

	rows := [][2]string{
		{"Current chain", u.Style(d.CurrentChain)},
		{"Destination", u.Style(d.Address)},
	}
	if d.Network.Text != "" {
		rows = append(rows, [2]string{"Detected network", u.Style(d.Network)})
	}
	u.KeyValue(rows)

	switch v.Kind {
	case guard.Compatible:
		u.Success("%s", d.Note)
	case guard.Incompatible:
		u.Critical("%s", d.Warning)
		if len(d.BridgeRows) > 0 {
			u.Info("To move funds to %s, use a bridge instead:", d.Network.Text)
			u.Indent().Table([]string{"Bridge", "Reference"}, d.BridgeRows)
		}
	case guard.Unrecognized:
		u.Warn("%s", d.Note)
	}
}

// RenderClassifications classifies each address and renders one grouped
// table, one group per address, so multiple lookups stay aligned.
func RenderClassifications(u ui.UI, addresses []string) {
	groups := make([][][]string, 0, len(addresses))
	for _, address := range addresses {
		match, found := guard.Classify(address)
		if !found {
			groups = append(groups, [][]string{
				{displayAddress(address), string(chains.FamilyUnrecognized), "-"},
			})
			continue
		}
		compat := "no"
		if match.IsEVM {
			compat = "yes"
		}
		groups = append(groups, [][]string{
			{displayAddress(address), match.Name, compat},
		})
	}
	u.TableWithGroups([]string{"Address", "Network", "EVM compatible"}, groups)
}
