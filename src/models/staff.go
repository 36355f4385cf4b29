package models

import (
	"portpass/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID           uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Designation  string    `json:"designation"`
	Department   string    `json:"department"`
	IsAdmin      bool      `gorm:"default:false" json:"isAdmin"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	Passes []Pass `gorm:"foreignKey:staff_id" json:"passes,omitempty"`

	types.Timestamps
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Staff) Summary() *types.StaffSummary {
	return &types.StaffSummary{
		ID:          s.ID,
		Username:    s.Username,
		FullName:    s.FullName,
		Designation: s.Designation,
		Department:  s.Department,
		IsAdmin:     s.IsAdmin,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}
