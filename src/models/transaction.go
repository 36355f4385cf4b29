package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is one payer's batch submission. It is written exactly once per
// issuance request and never mutated; TotalAmount equals the sum of the unit
// prices of all passes created under it, two decimal places.
type Transaction struct {
	ID           uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	PayerName    string    `json:"payerName"`
	PayerEmail   *string   `json:"payerEmail"`
	PayerPhone   *string   `json:"payerPhone"`
	TotalAmount  string    `gorm:"type:decimal(10,2)" json:"totalAmount"`
	SlipFilename string    `json:"slipFilename"`
	CreatedAt    time.Time `gorm:"autoCreateTime:nano" json:"createdAt"`

	Passes []Pass `gorm:"foreignKey:transaction_id" json:"passes,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
