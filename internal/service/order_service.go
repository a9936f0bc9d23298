// internal/service/order_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Parthjain001/dashboard-ai/internal/model"
	"github.com/Parthjain001/dashboard-ai/internal/shopify"
)

type OrderService struct {
	Shopify ShopifyClient
	Logger  *zap.Logger
}

// PageByCustomer fetches one cursor page of a customer's orders, newest
// first, optionally narrowed by an order-name search term.
func (s *OrderService) PageByCustomer(ctx context.Context, customerID string, after, search *string) (model.OrdersPage, error) {
	document, variables := shopify.BuildOrdersByCustomer(customerID, after, search)
	data, err := s.Shopify.Query(ctx, document, variables)
	if err != nil {
		return shopify.EmptyOrdersPage(), err
	}
	return shopify.MapOrdersPage(data)
}
