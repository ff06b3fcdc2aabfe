package entities

// OrderRequest is the request sent to the provider to create a purchase order.

type OrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

// PurchaseUnit contains one amount for a provider order.

type PurchaseUnit struct {
	Amount Amount `json:"amount"`
}

// Amount is the money object for a provider order.

type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// The gateway always charges this fixed amount. The submitted cart is logged
// but never used to compute it; the provider order carries USD 100 regardless.
const (
	OrderIntentCapture = "CAPTURE"
	OrderCurrencyCode  = "USD"
	OrderValue         = "100"
)

// NewFixedOrderRequest builds the order payload with the fixed amount.
func NewFixedOrderRequest() OrderRequest {
	return OrderRequest{
		Intent: OrderIntentCapture,
		PurchaseUnits: []PurchaseUnit{
			{Amount: Amount{CurrencyCode: OrderCurrencyCode, Value: OrderValue}},
		},
	}
}
