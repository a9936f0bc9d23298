package shopify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parthjain001/dashboard-ai/internal/shopify"
)

const ordersFixture = `{
	"orders": {
		"edges": [
			{
				"node": {
					"id": "gid://shopify/Order/1001",
					"name": "#1001",
					"createdAt": "2024-03-01T10:00:00Z",
					"totalPriceSet": {"shopMoney": {"amount": "49.99", "currencyCode": "USD"}},
					"fulfillments": [
						{"status": "SUCCESS", "trackingInfo": [{"url": "https://track.example/abc"}]}
					],
					"lineItems": {
						"edges": [
							{"node": {"title": "Mug", "quantity": 2, "product": {"id": "gid://shopify/Product/11"}, "originalUnitPriceSet": {"shopMoney": {"amount": "9.99", "currencyCode": "USD"}}}},
							{"node": {"title": "Poster", "quantity": 1, "product": null, "originalUnitPriceSet": {"shopMoney": {"amount": "30.01", "currencyCode": "USD"}}}}
						]
					}
				}
			},
			{
				"node": {
					"id": "gid://shopify/Order/1000",
					"name": "#1000",
					"createdAt": "2024-02-01T10:00:00Z",
					"totalPriceSet": null,
					"fulfillments": [],
					"lineItems": {"edges": []}
				}
			}
		],
		"pageInfo": {"hasNextPage": true, "endCursor": "cursor-xyz"}
	}
}`

func TestMapCustomerIDsEmptyConnection(t *testing.T) {
	ids, err := shopify.MapCustomerIDs([]byte(`{"customers": {"edges": []}}`))

	require.NoError(t, err)
	require.NotNil(t, ids)
	require.Empty(t, ids)
}

func TestMapCustomerIDsPreservesOrder(t *testing.T) {
	payload := `{"customers": {"edges": [
		{"node": {"id": "gid://shopify/Customer/2"}},
		{"node": {"id": "gid://shopify/Customer/1"}}
	]}}`

	ids, err := shopify.MapCustomerIDs([]byte(payload))

	require.NoError(t, err)
	require.Equal(t, []string{"gid://shopify/Customer/2", "gid://shopify/Customer/1"}, ids)
}

func TestMapCustomerNullNode(t *testing.T) {
	customer, err := shopify.MapCustomer([]byte(`{"customer": null}`))

	require.NoError(t, err)
	require.Nil(t, customer)
}

func TestMapCustomerProjectsNestedAddress(t *testing.T) {
	payload := `{"customer": {
		"id": "gid://shopify/Customer/1",
		"firstName": "Jane",
		"lastName": null,
		"email": "jane@example.com",
		"phone": "+15550001",
		"createdAt": "2023-01-01T00:00:00Z",
		"defaultAddress": {"address1": "1 Main St", "city": "Nairobi", "country": "Kenya", "zip": "00100"}
	}}`

	customer, err := shopify.MapCustomer([]byte(payload))

	require.NoError(t, err)
	require.NotNil(t, customer)
	require.Equal(t, "gid://shopify/Customer/1", customer.ID)
	require.Equal(t, "Jane", *customer.FirstName)
	require.Nil(t, customer.LastName)
	require.NotNil(t, customer.DefaultAddress)
	require.Equal(t, "Nairobi", *customer.DefaultAddress.City)
	require.Nil(t, customer.DefaultAddress.Address2)
}

func TestMapOrdersPageFlattensConnections(t *testing.T) {
	page, err := shopify.MapOrdersPage([]byte(ordersFixture))

	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	require.True(t, page.HasNextPage)
	require.Equal(t, "cursor-xyz", *page.EndCursor)

	first := page.Orders[0]
	require.Equal(t, "gid://shopify/Order/1001", first.ID)
	require.Equal(t, "#1001", first.Name)
	require.Equal(t, "49.99", first.TotalPrice.Amount)
	require.Equal(t, "USD", first.TotalPrice.CurrencyCode)
	require.Equal(t, "SUCCESS", *first.ShipmentStatus)
	require.Equal(t, "https://track.example/abc", *first.TrackingLink)

	require.Len(t, first.LineItems, 2)
	require.Equal(t, "Mug", first.LineItems[0].Title)
	require.Equal(t, int32(2), first.LineItems[0].Quantity)
	require.Equal(t, "gid://shopify/Product/11", *first.LineItems[0].ProductID)
	require.Nil(t, first.LineItems[1].ProductID)
}

func TestMapOrdersPageNoFulfillments(t *testing.T) {
	page, err := shopify.MapOrdersPage([]byte(ordersFixture))

	require.NoError(t, err)
	second := page.Orders[1]
	require.Nil(t, second.ShipmentStatus)
	require.Nil(t, second.TrackingLink)
	require.Nil(t, second.TotalPrice)
	require.NotNil(t, second.LineItems)
	require.Empty(t, second.LineItems)
}

func TestMapOrdersPageFulfillmentWithoutTracking(t *testing.T) {
	payload := `{"orders": {"edges": [{"node": {
		"id": "gid://shopify/Order/1",
		"name": "#1",
		"fulfillments": [{"status": "IN_TRANSIT", "trackingInfo": []}],
		"lineItems": {"edges": []}
	}}], "pageInfo": {"hasNextPage": false, "endCursor": null}}}`

	page, err := shopify.MapOrdersPage([]byte(payload))

	require.NoError(t, err)
	order := page.Orders[0]
	require.Equal(t, "IN_TRANSIT", *order.ShipmentStatus)
	require.Nil(t, order.TrackingLink)
	require.False(t, page.HasNextPage)
	require.Nil(t, page.EndCursor)
}

func TestMapOrdersPageIsPure(t *testing.T) {
	once, err := shopify.MapOrdersPage([]byte(ordersFixture))
	require.NoError(t, err)
	twice, err := shopify.MapOrdersPage([]byte(ordersFixture))
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestMapOrdersPageMalformedPayload(t *testing.T) {
	page, err := shopify.MapOrdersPage([]byte(`{"orders": "nope"`))

	var parseErr *shopify.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, page.Orders)
	require.Empty(t, page.Orders)
}

func TestMapUpdatedCustomerSuccess(t *testing.T) {
	payload := `{"customerUpdate": {
		"customer": {"id": "gid://shopify/Customer/7", "firstName": "Jane"},
		"userErrors": []
	}}`

	customer, userErrors, err := shopify.MapUpdatedCustomer([]byte(payload))

	require.NoError(t, err)
	require.Empty(t, userErrors)
	require.NotNil(t, customer)
	require.Equal(t, "Jane", *customer.FirstName)
}

func TestMapUpdatedCustomerUserErrors(t *testing.T) {
	payload := `{"customerUpdate": {
		"customer": null,
		"userErrors": [{"field": ["input", "email"], "message": "Email is invalid"}]
	}}`

	customer, userErrors, err := shopify.MapUpdatedCustomer([]byte(payload))

	require.NoError(t, err)
	require.Nil(t, customer)
	require.Len(t, userErrors, 1)
	require.Equal(t, "Email is invalid", userErrors[0].Message)
}

func TestMapUpdatedCustomerNullMutationNode(t *testing.T) {
	customer, userErrors, err := shopify.MapUpdatedCustomer([]byte(`{"customerUpdate": null}`))

	require.NoError(t, err)
	require.Nil(t, customer)
	require.Empty(t, userErrors)
}
