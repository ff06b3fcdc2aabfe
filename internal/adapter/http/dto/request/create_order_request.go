package request

import "encoding/json"

// CreateOrderRequest is the payload for the order-creation route.
//
// `cart` is kept as raw JSON: the client's cart schema is opaque to the
// gateway, which logs it and never uses it to compute the charge.

type CreateOrderRequest struct {
	Cart json.RawMessage `json:"cart"`
}
