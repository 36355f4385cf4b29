package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"createdAt,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updatedAt,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	PASS_DAILY   = "daily"
	PASS_VEHICLE = "vehicle"
	PASS_CRANE   = "crane"
)

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateStaffRequestBody struct {
	Username    string `json:"username" binding:"required,min=3"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"fullName" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Department  string `json:"department" binding:"required"`
	IsAdmin     bool   `json:"isAdmin"`
}

type UpdateStaffRequestBody struct {
	FullName    *string `json:"fullName,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	IsAdmin     *bool   `json:"isAdmin,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type PayerData struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty"`
}

// PassItemData carries one requested pass. The identifier rule (daily needs an
// ID number, vehicle and crane need a plate number, never both) is enforced by
// a struct-level validation registered in main.
type PassItemData struct {
	CustomerName string `json:"customerName" binding:"required"`
	PassType     string `json:"passType" binding:"required,oneof=daily vehicle crane"`
	IDNumber     string `json:"idNumber" binding:"omitempty"`
	PlateNumber  string `json:"plateNumber" binding:"omitempty"`
	ValidDate    string `json:"validDate" binding:"required"`
}

type CreatePassesRequestBody struct {
	Payer  PayerData      `json:"payer" binding:"required"`
	Passes []PassItemData `json:"passes" binding:"required,min=1,dive"`
}

type VerifyQRRequestBody struct {
	QRData string `json:"qrData" binding:"required"`
}

type StaffSummary struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"fullName"`
	Designation string    `json:"designation"`
	Department  string    `json:"department"`
	IsAdmin     bool      `json:"isAdmin"`
	IsActive    bool      `json:"isActive,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
