// internal/shopify/queries.go
package shopify

import (
	"strings"

	"github.com/Parthjain001/dashboard-ai/internal/model"
)

// Builders produce (document, variables) pairs. Caller input only ever
// travels through GraphQL variables, never through the document text, so
// quotes and search-syntax characters cannot break out of the query.

const customerIDsByPhoneDocument = `query customerIdsByPhone($filter: String!) {
  customers(first: 10, query: $filter) {
    edges {
      node {
        id
      }
    }
  }
}`

func BuildCustomerIDsByPhone(phone string) (string, map[string]interface{}) {
	return customerIDsByPhoneDocument, map[string]interface{}{
		"filter": "phone:" + phone,
	}
}

const customerDetailsDocument = `query customerDetails($id: ID!) {
  customer(id: $id) {
    id
    firstName
    lastName
    email
    phone
    createdAt
    defaultAddress {
      address1
      address2
      city
      province
      country
      zip
      phone
    }
  }
}`

func BuildCustomerDetails(customerID string) (string, map[string]interface{}) {
	return customerDetailsDocument, map[string]interface{}{"id": customerID}
}

const ordersByCustomerDocument = `query ordersByCustomer($filter: String!, $after: String) {
  orders(first: 10, after: $after, query: $filter, sortKey: CREATED_AT, reverse: true) {
    edges {
      node {
        id
        name
        createdAt
        totalPriceSet {
          shopMoney {
            amount
            currencyCode
          }
        }
        fulfillments(first: 1) {
          status
          trackingInfo {
            url
          }
        }
        lineItems(first: 10) {
          edges {
            node {
              title
              quantity
              product {
                id
              }
              originalUnitPriceSet {
                shopMoney {
                  amount
                  currencyCode
                }
              }
            }
          }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// BuildOrdersByCustomer filters on the bare numeric id: Shopify's search
// syntax wants customer_id:12345 even though the public id is the composite
// gid://shopify/Customer/12345 form.
func BuildOrdersByCustomer(customerID string, after, search *string) (string, map[string]interface{}) {
	filter := "customer_id:" + numericID(customerID)
	if search != nil && *search != "" {
		filter += " name:" + *search
	}
	variables := map[string]interface{}{"filter": filter}
	if after != nil && *after != "" {
		variables["after"] = *after
	}
	return ordersByCustomerDocument, variables
}

func numericID(compositeID string) string {
	parts := strings.Split(compositeID, "/")
	return parts[len(parts)-1]
}

const updateCustomerProfileDocument = `mutation updateCustomerProfile($input: CustomerInput!) {
  customerUpdate(input: $input) {
    customer {
      id
      firstName
      lastName
      email
      phone
      createdAt
      defaultAddress {
        address1
        address2
        city
        province
        country
        zip
        phone
      }
    }
    userErrors {
      field
      message
    }
  }
}`

// BuildUpdateCustomerProfile sends only the fields the caller supplied; an
// absent field must stay absent, not become an explicit null.
func BuildUpdateCustomerProfile(customerID string, update model.CustomerProfileUpdate) (string, map[string]interface{}) {
	input := map[string]interface{}{"id": customerID}
	if update.FirstName != nil {
		input["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		input["lastName"] = *update.LastName
	}
	if update.Email != nil {
		input["email"] = *update.Email
	}
	if update.Phone != nil {
		input["phone"] = *update.Phone
	}
	return updateCustomerProfileDocument, map[string]interface{}{"input": input}
}
