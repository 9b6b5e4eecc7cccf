// internal/models/product.go
package models

import (
	"encoding/json"
	"fmt"
)

// Product is the catalog product as seen by the admin. The engine only
// mutates its variation reference and hasVariation flag; everything
// else is plain CRUD plumbing.
type Product struct {
	ID           string       `json:"id"`
	CompanyID    string       `json:"company_id"`
	CategoryID   string       `json:"category_id,omitempty"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Price        float64      `json:"price"`
	Image        string       `json:"image,omitempty"`
	HasVariation bool         `json:"has_variation"`
	Variation    VariationRef `json:"variation"`
	Visibility   Visibility   `json:"visibility"`
	Status       RecordStatus `json:"status,omitempty"`
	Timestamps
}

// VariationRefKind discriminates the shapes the upstream uses for a
// product's variation field.
type VariationRefKind int

const (
	VariationRefUnset VariationRefKind = iota
	VariationRefByID
	VariationRefEmbedded
)

// VariationRef is the product's link to its variation axis. The
// upstream returns the field either as a bare id string or as an
// embedded VariationType object; it is decoded into this tagged
// variant once at the API boundary and never inspected ad hoc
// downstream. Writes always encode the id form.
type VariationRef struct {
	Kind     VariationRefKind
	ID       string
	Embedded *VariationType
}

// VariationByID builds a by-id reference. An empty id yields Unset.
func VariationByID(id string) VariationRef {
	if id == "" {
		return VariationRef{}
	}
	return VariationRef{Kind: VariationRefByID, ID: id}
}

// TypeID returns the referenced axis id regardless of shape, or ""
// when unset.
func (r VariationRef) TypeID() string {
	switch r.Kind {
	case VariationRefByID:
		return r.ID
	case VariationRefEmbedded:
		return r.Embedded.ID
	}
	return ""
}

func (r VariationRef) IsSet() bool { return r.Kind != VariationRefUnset }

func (r *VariationRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = VariationRef{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = VariationByID(id)
		return nil
	}

	var embedded VariationType
	if err := json.Unmarshal(data, &embedded); err != nil {
		return fmt.Errorf("variation field is neither an id nor an object: %w", err)
	}
	*r = VariationRef{Kind: VariationRefEmbedded, ID: embedded.ID, Embedded: &embedded}
	return nil
}

func (r VariationRef) MarshalJSON() ([]byte, error) {
	if !r.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(r.TypeID())
}
