package models

import (
	"time"
)

// Vehicle belongs to a Customer while active. Deactivation clears the owner
// reference together with the flag, so CustomerID is null exactly when the
// vehicle is inactive.
type Vehicle struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID *uint     `gorm:"index" json:"customerId"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"-"`

	Make      string  `gorm:"not null" json:"make"`
	Model     string  `gorm:"not null" json:"model"`
	Engine    *string `json:"engine"`
	ModelYear *string `gorm:"size:9" json:"modelYear"`

	// Normalized: separators stripped, letters upper-cased.
	// Legacy ABC1234 or Mercosul ABC1D23.
	Plate    string `gorm:"size:7;not null;index" json:"plate"`
	Odometer *int   `json:"odometer"`

	Active    bool      `gorm:"default:true;index" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Denormalized owner info for listings, filled from the join.
	OwnerName  *string `gorm:"-" json:"ownerName,omitempty"`
	OwnerTaxID *string `gorm:"-" json:"ownerTaxId,omitempty"`
}
