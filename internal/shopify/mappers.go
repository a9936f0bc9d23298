// internal/shopify/mappers.go
package shopify

import (
	"encoding/json"

	"github.com/Parthjain001/dashboard-ai/internal/model"
)

// Mappers are pure projections from upstream payloads onto the public
// model: flatten edges/nodes, unwrap money bags, derive shipment fields.
// The payload structs below select only what the documents ask for.

type idEdge struct {
	Node struct {
		ID string `json:"id"`
	} `json:"node"`
}

type customerIDsPayload struct {
	Customers struct {
		Edges []idEdge `json:"edges"`
	} `json:"customers"`
}

// MapCustomerIDs returns the matched customer ids in upstream order. The
// slice is empty, never nil, when the connection has no edges.
func MapCustomerIDs(data []byte) ([]string, error) {
	var payload customerIDsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return []string{}, &ParseError{Err: err}
	}
	ids := make([]string, 0, len(payload.Customers.Edges))
	for _, edge := range payload.Customers.Edges {
		ids = append(ids, edge.Node.ID)
	}
	return ids, nil
}

type customerPayload struct {
	Customer *model.Customer `json:"customer"`
}

// MapCustomer returns nil when upstream has no customer for the id.
func MapCustomer(data []byte) (*model.Customer, error) {
	var payload customerPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &ParseError{Err: err}
	}
	return payload.Customer, nil
}

type moneyBag struct {
	ShopMoney *model.Money `json:"shopMoney"`
}

type pageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type trackingInfo struct {
	URL *string `json:"url"`
}

type fulfillment struct {
	Status       *string        `json:"status"`
	TrackingInfo []trackingInfo `json:"trackingInfo"`
}

type idRef struct {
	ID string `json:"id"`
}

type lineItemEdge struct {
	Node struct {
		Title                string    `json:"title"`
		Quantity             int32     `json:"quantity"`
		Product              *idRef    `json:"product"`
		OriginalUnitPriceSet *moneyBag `json:"originalUnitPriceSet"`
	} `json:"node"`
}

type orderNode struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	CreatedAt     *string       `json:"createdAt"`
	TotalPriceSet *moneyBag     `json:"totalPriceSet"`
	Fulfillments  []fulfillment `json:"fulfillments"`
	LineItems     struct {
		Edges []lineItemEdge `json:"edges"`
	} `json:"lineItems"`
}

type ordersPayload struct {
	Orders struct {
		Edges []struct {
			Node orderNode `json:"node"`
		} `json:"edges"`
		PageInfo pageInfo `json:"pageInfo"`
	} `json:"orders"`
}

// MapOrdersPage flattens one page of the orders connection, preserving
// upstream order and passing pageInfo through unchanged.
func MapOrdersPage(data []byte) (model.OrdersPage, error) {
	var payload ordersPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return EmptyOrdersPage(), &ParseError{Err: err}
	}
	orders := make([]model.Order, 0, len(payload.Orders.Edges))
	for _, edge := range payload.Orders.Edges {
		orders = append(orders, mapOrder(edge.Node))
	}
	return model.OrdersPage{
		Orders:      orders,
		HasNextPage: payload.Orders.PageInfo.HasNextPage,
		EndCursor:   payload.Orders.PageInfo.EndCursor,
	}, nil
}

// EmptyOrdersPage is the degraded value for orders_by_customer_id.
func EmptyOrdersPage() model.OrdersPage {
	return model.OrdersPage{Orders: []model.Order{}}
}

func mapOrder(node orderNode) model.Order {
	order := model.Order{
		ID:         node.ID,
		Name:       node.Name,
		CreatedAt:  node.CreatedAt,
		TotalPrice: shopMoney(node.TotalPriceSet),
		LineItems:  make([]model.LineItem, 0, len(node.LineItems.Edges)),
	}
	// Only the first fulfillment and its first tracking entry feed the
	// derived fields; missing either leaves them null.
	if len(node.Fulfillments) > 0 {
		first := node.Fulfillments[0]
		order.ShipmentStatus = first.Status
		if len(first.TrackingInfo) > 0 {
			order.TrackingLink = first.TrackingInfo[0].URL
		}
	}
	for _, edge := range node.LineItems.Edges {
		item := model.LineItem{
			Title:             edge.Node.Title,
			Quantity:          edge.Node.Quantity,
			OriginalUnitPrice: shopMoney(edge.Node.OriginalUnitPriceSet),
		}
		if edge.Node.Product != nil {
			item.ProductID = &edge.Node.Product.ID
		}
		order.LineItems = append(order.LineItems, item)
	}
	return order
}

func shopMoney(bag *moneyBag) *model.Money {
	if bag == nil {
		return nil
	}
	return bag.ShopMoney
}

// UserError is a Shopify mutation-level validation error, distinct from
// transport-level GraphQL errors.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type customerUpdatePayload struct {
	CustomerUpdate *struct {
		Customer   *model.Customer `json:"customer"`
		UserErrors []UserError     `json:"userErrors"`
	} `json:"customerUpdate"`
}

// MapUpdatedCustomer returns a nil customer when the mutation reported
// userErrors; the public schema collapses "validation failed" and "no such
// customer" to the same null.
func MapUpdatedCustomer(data []byte) (*model.Customer, []UserError, error) {
	var payload customerUpdatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	if payload.CustomerUpdate == nil {
		return nil, nil, nil
	}
	if len(payload.CustomerUpdate.UserErrors) > 0 {
		return nil, payload.CustomerUpdate.UserErrors, nil
	}
	return payload.CustomerUpdate.Customer, nil, nil
}
