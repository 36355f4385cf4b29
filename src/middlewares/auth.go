package middlewares

import (
	"log"
	"net/http"
	"portpass/src/config"
	"portpass/src/db"
	"portpass/src/lib"
	"portpass/src/models"
	"portpass/src/types"

	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the session cookie to an active staff record and puts
// it on the request context. Everything that fails short of a store error is a
// plain 401.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sid, err := ctx.Cookie(config.SESSION_COOKIE_NAME)
		if err != nil || sid == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": types.ErrAuthRequired.Error()})
			return
		}
		store := lib.GetSessionStore()
		session, err := store.Get(ctx, sid)
		if err != nil {
			log.Printf("Error reading session [%s]: %s\n", sid, err.Error())
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if session == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": types.ErrAuthRequired.Error()})
			return
		}
		var staff models.Staff
		d := db.GetDb()
		if err := d.Where("id = ?", session.StaffID).First(&staff).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": types.ErrAuthRequired.Error()})
			return
		}
		if !staff.IsActive {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": types.ErrAuthRequired.Error()})
			return
		}
		ctx.Set("staff", &staff)
		ctx.Set("staff_id", staff.ID.String())
		ctx.Next()
	}
}

// RequireAdmin runs after RequireAuth and rejects non-administrators.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, ok := ctx.Get("staff")
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": types.ErrAuthRequired.Error()})
			return
		}
		staff, ok := value.(*models.Staff)
		if !ok || !staff.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": types.ErrAdminRequired.Error()})
			return
		}
		ctx.Next()
	}
}
