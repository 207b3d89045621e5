package order

// Address is a postal address value object. It has no identity; two addresses
// with the same fields are interchangeable.
type Address struct {
	street1    string
	city       string
	state      string
	postalCode string
	country    string
}

// NewAddress creates an Address. Empty fields are accepted here and rejected
// when an order for the owning customer is placed.
func NewAddress(street1, city, state, postalCode, country string) Address {
	return Address{
		street1:    street1,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
	}
}

// Street1 returns the first street line.
func (a Address) Street1() string {
	return a.street1
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state, county or region.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}
