// internal/model/order.go
package model

// Money is passed through verbatim from Shopify; the amount stays a
// decimal string and is never parsed numerically.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type LineItem struct {
	Title             string  `json:"title"`
	Quantity          int32   `json:"quantity"`
	OriginalUnitPrice *Money  `json:"originalUnitPrice"`
	ProductID         *string `json:"productId"`
}

// Order is the denormalized shape the dashboard consumes. ShipmentStatus
// and TrackingLink come from the first fulfillment and its first tracking
// entry only.
type Order struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CreatedAt      *string    `json:"createdAt"`
	TotalPrice     *Money     `json:"totalPrice"`
	ShipmentStatus *string    `json:"shipmentStatus"`
	TrackingLink   *string    `json:"trackingLink"`
	LineItems      []LineItem `json:"lineItems"`
}

// OrdersPage is one cursor page of a customer's orders.
type OrdersPage struct {
	Orders      []Order `json:"orders"`
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}
