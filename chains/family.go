package chains

// Family identifies the network family an address format belongs to.
// Exactly one or none applies to a given address.
type Family string

const (
	FamilyEVM          Family = "EVM"
	FamilyBitcoin      Family = "Bitcoin"
	FamilyTron         Family = "Tron"
	FamilyXRP          Family = "XRP"
	FamilyLitecoin     Family = "Litecoin"
	FamilyCardano      Family = "Cardano"
	FamilyCosmos       Family = "Cosmos"
	FamilyPolkadot     Family = "Polkadot"
	FamilyStellar      Family = "Stellar"
	FamilySolana       Family = "Solana"
	FamilyUnrecognized Family = "Unrecognized"
)

func (f Family) String() string {
	return string(f)
}

// Bridge describes a bridging service that can move funds between the
// matched network and EVM chains.
type Bridge struct {
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

// Match is the classification result for a recognized address format.
// A fresh value is constructed on every Detect call; callers may mutate
// their copy (e.g. reorder bridges) without affecting later calls.
type Match struct {
	Family  Family   `json:"family"`
	Name    string   `json:"name"`
	IsEVM   bool     `json:"is_evm"`
	Bridges []Bridge `json:"bridges,omitempty"`
	Warning string   `json:"warning,omitempty"`
}
