package chains

import "regexp"

// 0x followed by exactly 40 hex digits. Checksum casing is not validated
// here; surface format only.
var evmPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

func isEVM(address string) bool {
	return evmPattern.MatchString(address)
}

func newEVMMatch() Match {
	return Match{
		Family: FamilyEVM,
		Name:   "EVM",
		IsEVM:  true,
	}
}
