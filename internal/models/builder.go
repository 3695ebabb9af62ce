package models

type Builder struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	PhoneNumber  string `json:"phoneNumber"`
}
