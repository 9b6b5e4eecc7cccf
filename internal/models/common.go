// internal/models/common.go
package models

import "time"

// Timestamps carried by every upstream catalog record.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Visibility controls how a record is presented on the public storefront.
type Visibility struct {
	ShowInCatalog bool `json:"show_in_catalog"`
	ShowPrice     bool `json:"show_price"`
}

type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
)
