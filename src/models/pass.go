package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pass is a single port-access credential. IDNumber is set for daily passes,
// PlateNumber for vehicle and crane passes, never both. Rows are written once
// and never updated or deleted.
type Pass struct {
	ID            uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid" json:"transactionId"`
	PassNumber    string    `gorm:"uniqueIndex" json:"passNumber"`
	CustomerName  string    `json:"customerName"`
	PassType      string    `json:"passType"`
	IDNumber      *string   `json:"idNumber"`
	PlateNumber   *string   `json:"plateNumber"`
	ValidDate     string    `json:"validDate"`
	Amount        string    `gorm:"type:decimal(10,2)" json:"amount"`
	QRCode        string    `json:"qrCode"`
	StaffID       uuid.UUID `gorm:"type:uuid" json:"staffId"`
	CreatedAt     time.Time `gorm:"autoCreateTime:nano" json:"createdAt"`

	Transaction Transaction `json:"-"`
	Staff       Staff       `json:"-"`
}

func (p *Pass) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
