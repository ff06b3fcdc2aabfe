package entities

import "encoding/json"

// ProviderResult is the normalized outcome of one upstream provider call.
//
// The gateway relays both fields verbatim to the browser client: Body keeps
// the provider's raw JSON bytes so the relayed payload is byte-identical,
// and StatusCode carries the provider's HTTP status.

type ProviderResult struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}
