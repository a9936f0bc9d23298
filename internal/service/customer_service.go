// internal/service/customer_service.go
package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Parthjain001/dashboard-ai/internal/model"
	"github.com/Parthjain001/dashboard-ai/internal/shopify"
)

// ShopifyClient is the slice of the upstream client the services need;
// tests swap in mocks.
type ShopifyClient interface {
	Query(ctx context.Context, document string, variables map[string]interface{}) (json.RawMessage, error)
	Mutate(ctx context.Context, document string, variables map[string]interface{}) (json.RawMessage, error)
}

// CustomerService runs the builder -> client -> mapper pipeline for
// customer operations. It returns typed errors; deciding what the caller
// sees instead of an error is the resolver's job, not this layer's.
type CustomerService struct {
	Shopify ShopifyClient
	Logger  *zap.Logger
}

// IDsByPhone returns the ids of customers matching the phone number,
// empty (never nil) when nothing matches.
func (s *CustomerService) IDsByPhone(ctx context.Context, phone string) ([]string, error) {
	document, variables := shopify.BuildCustomerIDsByPhone(phone)
	data, err := s.Shopify.Query(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	return shopify.MapCustomerIDs(data)
}

// DetailsByID returns nil without error when upstream has no customer for
// the id.
func (s *CustomerService) DetailsByID(ctx context.Context, customerID string) (*model.Customer, error) {
	document, variables := shopify.BuildCustomerDetails(customerID)
	data, err := s.Shopify.Query(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	return shopify.MapCustomer(data)
}

// UpdateProfile applies a sparse profile update. Upstream userErrors are
// logged and collapse to a nil customer.
func (s *CustomerService) UpdateProfile(ctx context.Context, customerID string, update model.CustomerProfileUpdate) (*model.Customer, error) {
	document, variables := shopify.BuildUpdateCustomerProfile(customerID, update)
	data, err := s.Shopify.Mutate(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	customer, userErrors, err := shopify.MapUpdatedCustomer(data)
	if err != nil {
		return nil, err
	}
	if len(userErrors) > 0 {
		s.Logger.Warn("customer update rejected upstream",
			zap.String("customerId", customerID),
			zap.Int("userErrorCount", len(userErrors)))
	}
	return customer, nil
}
