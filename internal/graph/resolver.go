// internal/graph/resolver.go
package graph

import (
	"context"

	"go.uber.org/zap"

	"github.com/Parthjain001/dashboard-ai/internal/model"
	"github.com/Parthjain001/dashboard-ai/internal/service"
)

// Resolver is the root resolver. Every operation degrades to its empty
// value on upstream failure: the dashboard always receives a well-shaped
// payload over HTTP 200 and failures only show up in the logs.
type Resolver struct {
	Customers *service.CustomerService
	Orders    *service.OrderService
	Logger    *zap.Logger
}

type CustomerIDsByPhoneArgs struct {
	Phone string
}

func (r *Resolver) CustomerIDsByPhone(ctx context.Context, args CustomerIDsByPhoneArgs) []string {
	ids, err := r.Customers.IDsByPhone(ctx, args.Phone)
	if err != nil {
		r.Logger.Warn("customer_ids_by_phone degraded to empty list", zap.Error(err))
		return []string{}
	}
	return ids
}

type CustomerDetailsByIDArgs struct {
	CustomerID string
}

func (r *Resolver) CustomerDetailsByID(ctx context.Context, args CustomerDetailsByIDArgs) *model.Customer {
	customer, err := r.Customers.DetailsByID(ctx, args.CustomerID)
	if err != nil {
		r.Logger.Warn("customer_details_by_id degraded to null",
			zap.String("customerId", args.CustomerID), zap.Error(err))
		return nil
	}
	return customer
}

type OrdersByCustomerIDArgs struct {
	CustomerID string
	After      *string
	Search     *string
}

func (r *Resolver) OrdersByCustomerID(ctx context.Context, args OrdersByCustomerIDArgs) model.OrdersPage {
	page, err := r.Orders.PageByCustomer(ctx, args.CustomerID, args.After, args.Search)
	if err != nil {
		r.Logger.Warn("orders_by_customer_id degraded to empty page",
			zap.String("customerId", args.CustomerID), zap.Error(err))
		return model.OrdersPage{Orders: []model.Order{}}
	}
	return page
}

type UpdateCustomerProfileArgs struct {
	CustomerID string
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
}

func (r *Resolver) UpdateCustomerProfile(ctx context.Context, args UpdateCustomerProfileArgs) *model.Customer {
	update := model.CustomerProfileUpdate{
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Email:     args.Email,
		Phone:     args.Phone,
	}
	customer, err := r.Customers.UpdateProfile(ctx, args.CustomerID, update)
	if err != nil {
		r.Logger.Warn("update_customer_profile degraded to null",
			zap.String("customerId", args.CustomerID), zap.Error(err))
		return nil
	}
	return customer
}
