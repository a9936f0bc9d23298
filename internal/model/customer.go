// internal/model/customer.go
package model

// Customer is the public projection of a Shopify customer. Every field
// except the id can be absent upstream.
type Customer struct {
	ID             string   `json:"id"`
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	CreatedAt      *string  `json:"createdAt"`
	DefaultAddress *Address `json:"defaultAddress"`
}

type Address struct {
	Address1 *string `json:"address1"`
	Address2 *string `json:"address2"`
	City     *string `json:"city"`
	Province *string `json:"province"`
	Country  *string `json:"country"`
	Zip      *string `json:"zip"`
	Phone    *string `json:"phone"`
}

// CustomerProfileUpdate carries the fields a profile update may change.
// A nil field means "leave untouched", which is different from an
// explicit empty value.
type CustomerProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}
