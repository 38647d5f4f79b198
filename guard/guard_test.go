package guard

import (
	"strings"
	"testing"
)

func TestEvaluateWithoutDestination(t *testing.T) {
	if v := Evaluate("eip155:1", ""); v != nil {
		t.Errorf("empty destination must produce no verdict, got %+v", v)
	}
}

func TestEvaluateCompatible(t *testing.T) {
	v := Evaluate("eip155:1", "0x742d35Cc6634C0532925a3b8D4C9C0B4b8E6d8A2")
	if v == nil {
		t.Fatal("want a verdict")
	}
	if v.Kind != Compatible {
		t.Errorf("want Compatible, got %s", v.Kind)
	}
	if v.CurrentChain != "Ethereum Mainnet" {
		t.Errorf("want current chain Ethereum Mainnet, got %q", v.CurrentChain)
	}
	if v.Address != "0x742d35Cc6634C0532925a3b8D4C9C0B4b8E6d8A2" {
		t.Errorf("verdict must echo the address, got %q", v.Address)
	}
	if len(v.Bridges) != 0 || v.Warning != "" {
		t.Errorf("compatible verdicts carry no advisory data, got %+v", v)
	}
}

func TestEvaluateIncompatibleSolana(t *testing.T) {
	v := Evaluate("eip155:1", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	if v == nil {
		t.Fatal("want a verdict")
	}
	if v.Kind != Incompatible {
		t.Errorf("want Incompatible, got %s", v.Kind)
	}
	if v.Network != "Solana" {
		t.Errorf("want matched network Solana, got %q", v.Network)
	}
	if v.CurrentChain != "Ethereum Mainnet" {
		t.Errorf("want current chain Ethereum Mainnet, got %q", v.CurrentChain)
	}
	hasWormhole := false
	for _, b := range v.Bridges {
		if b.Name == "Wormhole" && b.Reference == "wormhole.com" {
			hasWormhole = true
		}
	}
	if !hasWormhole {
		t.Errorf("bridge list must contain Wormhole (wormhole.com), got %v", v.Bridges)
	}
}

func TestEvaluateIncompatibleBitcoin(t *testing.T) {
	v := Evaluate("eip155:1", "1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf")
	if v == nil {
		t.Fatal("want a verdict")
	}
	if v.Kind != Incompatible {
		t.Errorf("want Incompatible, got %s", v.Kind)
	}
	if v.Network != "Bitcoin" {
		t.Errorf("want matched network Bitcoin, got %q", v.Network)
	}
	if !strings.Contains(v.Warning, "not compatible with EVM chains") {
		t.Errorf("warning %q must reference EVM incompatibility", v.Warning)
	}
}

func TestEvaluateUnrecognized(t *testing.T) {
	v := Evaluate("eip155:137", "definitely not an address")
	if v == nil {
		t.Fatal("want a verdict")
	}
	if v.Kind != Unrecognized {
		t.Errorf("want Unrecognized, got %s", v.Kind)
	}
	if v.CurrentChain != "Polygon" {
		t.Errorf("want current chain Polygon, got %q", v.CurrentChain)
	}
	if v.Address != "definitely not an address" {
		t.Errorf("verdict must echo the raw address, got %q", v.Address)
	}
	if v.Network != "" || v.Warning != "" || len(v.Bridges) != 0 {
		t.Errorf("unrecognized verdicts are advisory only, got %+v", v)
	}
}

func TestEvaluateOnUnknownChain(t *testing.T) {
	v := Evaluate("eip155:999999", "1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf")
	if v == nil {
		t.Fatal("want a verdict")
	}
	if v.CurrentChain != "Unknown Chain (eip155:999999)" {
		t.Errorf("unknown chain ids degrade to a synthetic name, got %q", v.CurrentChain)
	}
}
