// internal/graph/schema.go
package graph

// Schema is the public surface the dashboard queries. It is deliberately
// much smaller than the Shopify Admin schema it translates to.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Money {
	amount: String!
	currencyCode: String!
}

type Address {
	address1: String
	address2: String
	city: String
	province: String
	country: String
	zip: String
	phone: String
}

type Customer {
	id: String!
	firstName: String
	lastName: String
	email: String
	phone: String
	createdAt: String
	defaultAddress: Address
}

type LineItem {
	title: String!
	quantity: Int!
	originalUnitPrice: Money
	productId: String
}

type Order {
	id: String!
	name: String!
	createdAt: String
	totalPrice: Money
	shipmentStatus: String
	trackingLink: String
	lineItems: [LineItem!]!
}

type OrdersPage {
	orders: [Order!]!
	hasNextPage: Boolean!
	endCursor: String
}

type Query {
	customer_ids_by_phone(phone: String!): [String!]!
	customer_details_by_id(customerId: String!): Customer
	orders_by_customer_id(customerId: String!, after: String, search: String): OrdersPage!
}

type Mutation {
	update_customer_profile(customerId: String!, firstName: String, lastName: String, email: String, phone: String): Customer
}
`
