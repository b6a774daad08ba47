package commerce

// Wire types shared across the orders, payments and loyalty endpoints.
// Field names follow the API's snake_case JSON.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
}

type Recipient struct {
	DisplayName string   `json:"display_name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Email       string   `json:"email_address,omitempty"`
	Address     *Address `json:"address,omitempty"`
}
