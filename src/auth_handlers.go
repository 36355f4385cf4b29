package main

import (
	"log"
	"net/http"
	"portpass/src/controllers"

	"github.com/gin-gonic/gin"
)

func authHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	auth := g.Group("/auth")
	auth.
		POST("/login", func(ctx *gin.Context) {
			staff, status, err := controllers.AuthLogin(ctx)
			if err != nil {
				log.Printf("[AuthLogin] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{
				"message": "Login successful",
				"staff":   staff,
			})
		}).
		POST("/logout", func(ctx *gin.Context) {
			status, err := controllers.AuthLogout(ctx)
			if err != nil {
				log.Printf("[AuthLogout] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
		})
	return g
}

func sessionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/auth/me", func(ctx *gin.Context) {
		staff, status, err := controllers.AuthMe(ctx)
		if err != nil {
			log.Printf("[AuthMe] error: %s\n", err.Error())
			ctx.JSON(status, gin.H{"message": err.Error()})
			return
		}
		ctx.JSON(status, gin.H{"staff": staff})
	})
	return g
}
