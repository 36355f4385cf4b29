package controllers

import (
	"log"
	"net/http"
	"portpass/src/db"
	"portpass/src/models"
	"portpass/src/types"
	"portpass/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func StaffCreate(ctx *gin.Context) (*types.StaffSummary, int, error) {
	var body types.CreateStaffRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	d := db.GetDb()
	var count int64
	if err := d.
		Model(&models.Staff{}).
		Where("username = ?", body.Username).
		Count(&count).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if count > 0 {
		return nil, http.StatusBadRequest, types.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	staff := models.Staff{
		Username:     body.Username,
		PasswordHash: hash,
		FullName:     body.FullName,
		Designation:  body.Designation,
		Department:   body.Department,
		IsAdmin:      body.IsAdmin,
		IsActive:     true,
	}
	if err := d.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&staff).Error
	}); err != nil {
		log.Printf("Error creating staff member: %s\n", err.Error())
		return nil, http.StatusBadRequest, err
	}
	return staff.Summary(), http.StatusOK, nil
}

func StaffList(ctx *gin.Context) ([]*types.StaffSummary, int, error) {
	var staff []models.Staff
	d := db.GetDb()
	if err := d.
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&staff).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	summaries := make([]*types.StaffSummary, 0, len(staff))
	for i := range staff {
		summaries = append(summaries, staff[i].Summary())
	}
	return summaries, http.StatusOK, nil
}

// StaffUpdate applies a partial update; disabling an account is done here by
// clearing isActive, never by deleting the row.
func StaffUpdate(ctx *gin.Context) (*types.StaffSummary, int, error) {
	var params struct {
		ID string `uri:"id" binding:"required"`
	}
	if err := ctx.ShouldBindUri(&params); err != nil {
		return nil, http.StatusBadRequest, err
	}
	var body types.UpdateStaffRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	staffId, err := uuid.Parse(params.ID)
	if err != nil {
		return nil, http.StatusInternalServerError, types.ErrStaffNotFound
	}

	var staff models.Staff
	d := db.GetDb()
	if err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", staffId).First(&staff).Error; err != nil {
			return types.ErrStaffNotFound
		}
		updates := map[string]any{}
		if body.FullName != nil {
			updates["full_name"] = *body.FullName
		}
		if body.Designation != nil {
			updates["designation"] = *body.Designation
		}
		if body.Department != nil {
			updates["department"] = *body.Department
		}
		if body.IsAdmin != nil {
			updates["is_admin"] = *body.IsAdmin
		}
		if body.IsActive != nil {
			updates["is_active"] = *body.IsActive
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.
			Model(&models.Staff{}).
			Where("id = ?", staffId).
			Updates(updates).
			Error; err != nil {
			return err
		}
		return tx.Where("id = ?", staffId).First(&staff).Error
	}); err != nil {
		log.Printf("Error updating staff member [%s]: %s\n", params.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return staff.Summary(), http.StatusOK, nil
}
