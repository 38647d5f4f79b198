package chains

import "fmt"

// familyMatcher pairs a format predicate with the constructor for its
// classification descriptor. Descriptors are built fresh on every match so
// callers never share state.
type familyMatcher struct {
	family  Family
	matches func(address string) bool
	match   func() Match
}

// Insert more familyMatcher entries here to support more network families.
//
// Order is significant and is a correctness invariant, not a tuning choice:
// Detect returns the first matcher that accepts the address, and several
// grammars overlap. In particular the Solana grammar (bare base58, 32-44
// chars) accepts most Bitcoin legacy, Litecoin, XRP and Polkadot addresses,
// so it must stay last.
var familyMatchers = []familyMatcher{
	{FamilyEVM, isEVM, newEVMMatch},
	{FamilyBitcoin, isBitcoin, newBitcoinMatch},
	{FamilyTron, isTron, newTronMatch},
	{FamilyXRP, isXRP, newXRPMatch},
	{FamilyLitecoin, isLitecoin, newLitecoinMatch},
	{FamilyCardano, isCardano, newCardanoMatch},
	{FamilyCosmos, isCosmos, newCosmosMatch},
	{FamilyPolkadot, isPolkadot, newPolkadotMatch},
	{FamilyStellar, isStellar, newStellarMatch},
	{FamilySolana, isSolana, newSolanaMatch},
}

func init() {
	seen := map[Family]bool{}
	for _, m := range familyMatchers {
		if seen[m.family] {
			panic(fmt.Errorf("family '%s' is registered twice in the matcher table", m.family))
		}
		seen[m.family] = true
	}
	if familyMatchers[len(familyMatchers)-1].family != FamilySolana {
		panic(fmt.Errorf("the Solana matcher must be the last entry in the matcher table"))
	}
}

// Detect classifies an address by surface format. It evaluates the matcher
// table in order and returns the descriptor of the first matcher that
// accepts the address. The second return value is false when no family
// matches.
//
// Detect is pure and total: any string input is fine, malformed input
// simply doesn't match.
func Detect(address string) (Match, bool) {
	for _, m := range familyMatchers {
		if m.matches(address) {
			return m.match(), true
		}
	}
	return Match{Family: FamilyUnrecognized}, false
}

// SupportedFamilies returns the families Detect can recognize, in
// evaluation order.
func SupportedFamilies() []Family {
	res := make([]Family, 0, len(familyMatchers))
	for _, m := range familyMatchers {
		res = append(res, m.family)
	}
	return res
}
