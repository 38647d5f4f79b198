package config

var (
	// ChainID is the chain the user is currently transacting on, either in
	// "eip155:<decimal>" or "0x<hex>" form. Set by the root --chain flag.
	ChainID string

	// AssumeYes skips the proceed-anyway confirmation on incompatible
	// destinations.
	AssumeYes bool

	// JSONOutput switches commands from the rendered panel to the raw
	// structured result.
	JSONOutput bool
)
