// internal/models/storefront.go
package models

// Category groups products on the storefront.
type Category struct {
	ID         string       `json:"id"`
	CompanyID  string       `json:"company_id"`
	Name       string       `json:"name"`
	Image      string       `json:"image,omitempty"`
	Status     RecordStatus `json:"status,omitempty"`
	Visibility Visibility   `json:"visibility"`
	Timestamps
}

// AddonList is a named list of optional add-ons (e.g. toppings) that
// can be attached to products.
type AddonList struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"company_id"`
	Name      string      `json:"name"`
	Required  bool        `json:"required"`
	MaxPicks  *int        `json:"max_picks,omitempty"`
	Items     []AddonItem `json:"items"`
	Timestamps
}

type AddonItem struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// ShowcaseEntry is a product pinned to the storefront showcase.
type ShowcaseEntry struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	ProductID string `json:"product_id"`
	Position  int    `json:"position"`
	Timestamps
}

// Profile is the public business profile of a company.
type Profile struct {
	CompanyID   string `json:"company_id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Banner      string `json:"banner,omitempty"`
	Phone       string `json:"phone,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Address     string `json:"address,omitempty"`
	Timestamps
}
