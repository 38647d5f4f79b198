package chains

import (
	"reflect"
	"strings"
	"testing"
)

func assertFamily(t *testing.T, address string, want Family) {
	t.Helper()
	match, found := Detect(address)
	if want == FamilyUnrecognized {
		if found {
			t.Errorf("Detect(%q): want no match, got %s", address, match.Family)
		}
		return
	}
	if !found {
		t.Errorf("Detect(%q): want %s, got no match", address, want)
		return
	}
	if match.Family != want {
		t.Errorf("Detect(%q): want %s, got %s", address, want, match.Family)
	}
}

func TestDetectPerFamily(t *testing.T) {
	cases := []struct {
		address string
		want    Family
	}{
		// EVM
		{"0x742d35Cc6634C0532925a3b8D4C9C0B4b8E6d8A2", FamilyEVM},
		{"0x" + strings.Repeat("0", 40), FamilyEVM},

		// Bitcoin legacy and bech32
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf", FamilyBitcoin},
		{"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", FamilyBitcoin},
		{"bc1" + strings.Repeat("q", 39), FamilyBitcoin},

		// Tron: T plus 33 alphanumeric chars
		{"T" + strings.Repeat("a", 33), FamilyTron},

		// XRP: r plus 24-34 base58 chars
		{"r" + strings.Repeat("a", 30), FamilyXRP},

		// Litecoin legacy and bech32
		{"L" + strings.Repeat("a", 30), FamilyLitecoin},
		{"M" + strings.Repeat("a", 30), FamilyLitecoin},
		{"ltc1" + strings.Repeat("q", 40), FamilyLitecoin},

		// Cardano Shelley and Byron
		{"addr1" + strings.Repeat("x", 53), FamilyCardano},
		{"Ae2" + strings.Repeat("t", 55), FamilyCardano},

		// Cosmos: cosmos1 plus 38 chars
		{"cosmos1" + strings.Repeat("a", 38), FamilyCosmos},

		// Polkadot: leading 1, exactly 48 chars
		{"1" + strings.Repeat("a", 47), FamilyPolkadot},

		// Stellar: G plus 55 uppercase alphanumeric chars
		{"G" + strings.Repeat("A", 55), FamilyStellar},

		// Solana: bare base58, 32-44 chars
		{"7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", FamilySolana},
	}

	for _, c := range cases {
		assertFamily(t, c.address, c.want)
	}
}

func TestDetectUnrecognized(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"0x742d35",                          // too short
		"0x" + strings.Repeat("g", 40),      // not hex
		"0X742d35Cc6634C0532925a3b8D4C9C0B4b8E6d8A2", // uppercase prefix
		"1" + strings.Repeat("0", 31),       // 0 is outside base58
		"1" + strings.Repeat("O", 31),       // O is outside base58
		"1" + strings.Repeat("I", 31),       // I is outside base58
		"1" + strings.Repeat("l", 31),       // l is outside base58
		"bc1" + strings.Repeat("q", 20),     // bech32 too short
		"cosmos1" + strings.Repeat("a", 20), // wrong data-part length
		strings.Repeat("a", 45),             // just over the Solana cap
		"G" + strings.Repeat("a", 55),       // Stellar must be uppercase
	}

	for _, address := range cases {
		assertFamily(t, address, FamilyUnrecognized)
	}
}

// The Solana grammar accepts most Bitcoin legacy addresses; the table order
// has to keep resolving them as Bitcoin.
func TestDetectOrderingPrefersBitcoinOverSolana(t *testing.T) {
	// 33 base58 chars starting with 1: valid for both grammars.
	address := "1" + strings.Repeat("a", 32)
	if !isSolana(address) {
		t.Fatalf("fixture %q should satisfy the Solana grammar", address)
	}
	if !isBitcoin(address) {
		t.Fatalf("fixture %q should satisfy the Bitcoin grammar", address)
	}
	assertFamily(t, address, FamilyBitcoin)
}

func TestDetectEVMHasNoBridges(t *testing.T) {
	match, found := Detect("0x742d35Cc6634C0532925a3b8D4C9C0B4b8E6d8A2")
	if !found {
		t.Fatal("want an EVM match")
	}
	if !match.IsEVM {
		t.Error("EVM match must report IsEVM")
	}
	if len(match.Bridges) != 0 {
		t.Errorf("EVM match must carry no bridges, got %v", match.Bridges)
	}
	if match.Warning != "" {
		t.Errorf("EVM match must carry no warning, got %q", match.Warning)
	}
}

func TestDetectNonEVMCarriesAdvisoryData(t *testing.T) {
	for _, address := range []string{
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf",
		"7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
	} {
		match, found := Detect(address)
		if !found {
			t.Fatalf("Detect(%q): want a match", address)
		}
		if match.IsEVM {
			t.Errorf("Detect(%q): must not report IsEVM", address)
		}
		if len(match.Bridges) == 0 {
			t.Errorf("Detect(%q): want at least one bridge suggestion", address)
		}
		if !strings.Contains(match.Warning, "not compatible with EVM chains") {
			t.Errorf("Detect(%q): warning %q must reference EVM incompatibility", address, match.Warning)
		}
	}
}

func TestDetectSolanaBridgesIncludeWormhole(t *testing.T) {
	match, found := Detect("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	if !found || match.Family != FamilySolana {
		t.Fatalf("want a Solana match, got %v (found=%v)", match.Family, found)
	}
	if len(match.Bridges) == 0 || match.Bridges[0].Name != "Wormhole" || match.Bridges[0].Reference != "wormhole.com" {
		t.Errorf("Solana bridge list must lead with Wormhole (wormhole.com), got %v", match.Bridges)
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	for _, address := range []string{
		"7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		"0x742d35Cc6634C0532925a3b8D4C9C0B4b8E6d8A2",
		"not an address",
	} {
		first, firstFound := Detect(address)
		second, secondFound := Detect(address)
		if firstFound != secondFound || !reflect.DeepEqual(first, second) {
			t.Errorf("Detect(%q) is not stable across calls: %+v vs %+v", address, first, second)
		}
	}
}

func TestDetectReturnsFreshDescriptors(t *testing.T) {
	first, _ := Detect("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	first.Bridges[0] = Bridge{Name: "mutated", Reference: "mutated"}

	second, _ := Detect("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	if second.Bridges[0].Name != "Wormhole" {
		t.Error("mutating a returned descriptor must not leak into later calls")
	}
}

func TestSupportedFamiliesOrder(t *testing.T) {
	families := SupportedFamilies()
	if len(families) == 0 || families[0] != FamilyEVM {
		t.Errorf("EVM must be evaluated first, got %v", families)
	}
	if families[len(families)-1] != FamilySolana {
		t.Errorf("Solana must be evaluated last, got %v", families)
	}
}
