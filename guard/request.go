package guard

import (
	"encoding/json"
	"fmt"

	"github.com/tranvictor/chainguard/chains"
)

// ErrUnsupportedMethod is returned when the entry point receives a method
// it does not implement. This is the one loud failure of the core: every
// malformed address or unknown chain id is ordinary data, but a request we
// don't understand must not silently return a default.
var ErrUnsupportedMethod = fmt.Errorf("unsupported method")

// Request is a host invocation of the classification core.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type classifyParams struct {
	Address string `json:"address"`
}

type evaluateParams struct {
	ChainID   string `json:"chainId"`
	ToAddress string `json:"toAddress"`
}

// ClassifyResult is the wire shape of a classify response. Match is nil
// when the address format is unrecognized.
type ClassifyResult struct {
	Match *chains.Match `json:"match"`
}

// HandleRequest dispatches a host request to the core.
//
// Supported methods:
//
//	"classify" {"address": "..."}               -> ClassifyResult
//	"evaluate" {"chainId": "...", "toAddress": "..."} -> *Verdict (nil when
//	                                               there is nothing to check)
//
// Any other method fails with ErrUnsupportedMethod.
func HandleRequest(req Request) (interface{}, error) {
	switch req.Method {
	case "classify":
		var params classifyParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("invalid classify params: %w", err)
		}
		match, found := Classify(params.Address)
		if !found {
			return ClassifyResult{}, nil
		}
		return ClassifyResult{Match: &match}, nil
	case "evaluate":
		var params evaluateParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("invalid evaluate params: %w", err)
		}
		return Evaluate(params.ChainID, params.ToAddress), nil
	default:
		return nil, fmt.Errorf("method '%s': %w", req.Method, ErrUnsupportedMethod)
	}
}
