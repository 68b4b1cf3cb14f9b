package models

import (
	"time"
)

// Customer is a person (PF) or organization (PJ) that owns vehicles.
// TaxID holds the CPF or CNPJ with formatting stripped; only one active
// customer may carry a given tax id, inactive duplicates are history.
type Customer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Kind string `gorm:"type:char(2);not null" json:"kind"` // PF or PJ

	TaxID    string `gorm:"size:14;not null;uniqueIndex:idx_customers_tax_id_active,where:active" json:"taxId"`
	FullName string `gorm:"not null" json:"fullName"`

	BirthDate     *time.Time `json:"birthDate"`
	Gender        *string    `gorm:"type:char(1)" json:"gender"` // M, F or O
	Phone         *string    `json:"phone"`
	PhoneWhatsApp bool       `gorm:"default:false" json:"phoneWhatsApp"`
	Email         *string    `json:"email"`

	PostalCode *string `gorm:"type:char(8)" json:"postalCode"`
	Street     *string `json:"street"`
	Number     *string `json:"number"`
	Complement *string `json:"complement"`
	District   *string `json:"district"`
	City       *string `json:"city"`
	State      *string `gorm:"type:char(2)" json:"state"`

	Active    bool      `gorm:"default:true;index" json:"active"`
	CreatedAt time.Time `json:"createdAt"`

	Vehicles []Vehicle `gorm:"foreignKey:CustomerID" json:"-"`
}
