// internal/models/variation.go
package models

// VariationType is a named variation axis scoped to a company,
// e.g. "Tamanho" with values ["P", "M", "G"]. The value order is
// the display order and must be preserved end to end.
type VariationType struct {
	ID        string   `json:"id"`
	CompanyID string   `json:"company_id"`
	Name      string   `json:"name"`
	Values    []string `json:"values"`
	Timestamps
}

// HasValue reports whether v belongs to the axis value domain.
func (t VariationType) HasValue(v string) bool {
	for _, existing := range t.Values {
		if existing == v {
			return true
		}
	}
	return false
}

// VariationItem is a materialized SKU: one concrete value of an axis
// sold under a product, with its own price, stock flag and visibility.
// Image falls back to the parent product's image when empty.
type VariationItem struct {
	ID               string     `json:"id"`
	ProductID        string     `json:"product_id"`
	VariationTypeID  string     `json:"variation_type_id"`
	Value            string     `json:"value"`
	Price            float64    `json:"price"`
	PromotionalPrice *float64   `json:"promotional_price,omitempty"`
	Description      string     `json:"description,omitempty"`
	Image            string     `json:"image,omitempty"`
	Available        bool       `json:"available"`
	Visibility       Visibility `json:"visibility"`
	MaxCartQuantity  *int       `json:"max_cart_quantity,omitempty"`
	Timestamps
}
