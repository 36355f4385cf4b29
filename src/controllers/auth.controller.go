package controllers

import (
	"log"
	"net/http"
	"portpass/src/config"
	"portpass/src/db"
	"portpass/src/lib"
	"portpass/src/models"
	"portpass/src/types"
	"portpass/src/utils"

	"github.com/gin-gonic/gin"
)

// AuthLogin verifies credentials and opens a session. Unknown usernames,
// disabled accounts and wrong passwords all surface the same error so the
// response leaks nothing about which check failed.
func AuthLogin(ctx *gin.Context) (*types.StaffSummary, int, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	var staff models.Staff
	d := db.GetDb()
	if err := d.
		Where("username = ?", body.Username).
		First(&staff).
		Error; err != nil {
		return nil, http.StatusUnauthorized, types.ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, http.StatusUnauthorized, types.ErrInvalidCredentials
	}
	if !utils.CheckPassword(staff.PasswordHash, body.Password) {
		return nil, http.StatusUnauthorized, types.ErrInvalidCredentials
	}

	store := lib.GetSessionStore()
	sid, err := store.Create(ctx, staff.ID)
	if err != nil {
		log.Printf("Error creating session for staff [%s]: %s\n", staff.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	ctx.SetCookie(config.SESSION_COOKIE_NAME, sid, int(config.SESSION_TTL.Seconds()), "/", "", false, true)
	return staff.Summary(), http.StatusOK, nil
}

func AuthLogout(ctx *gin.Context) (int, error) {
	sid, err := ctx.Cookie(config.SESSION_COOKIE_NAME)
	if err == nil && sid != "" {
		store := lib.GetSessionStore()
		if err := store.Destroy(ctx, sid); err != nil {
			log.Printf("Error destroying session: %s\n", err.Error())
			return http.StatusInternalServerError, err
		}
	}
	ctx.SetCookie(config.SESSION_COOKIE_NAME, "", -1, "/", "", false, true)
	return http.StatusOK, nil
}

func AuthMe(ctx *gin.Context) (*types.StaffSummary, int, error) {
	staff := CurrentStaff(ctx)
	if staff == nil {
		return nil, http.StatusNotFound, types.ErrStaffNotFound
	}
	return staff.Summary(), http.StatusOK, nil
}

// CurrentStaff returns the staff record resolved by the auth middleware.
func CurrentStaff(ctx *gin.Context) *models.Staff {
	value, ok := ctx.Get("staff")
	if !ok {
		return nil
	}
	staff, ok := value.(*models.Staff)
	if !ok {
		return nil
	}
	return staff
}
