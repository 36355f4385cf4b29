package main

import (
	"log"
	"portpass/src/controllers"

	"github.com/gin-gonic/gin"
)

func staffHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	staff := g.Group("/staff")
	staff.
		POST("", func(ctx *gin.Context) {
			created, status, err := controllers.StaffCreate(ctx)
			if err != nil {
				log.Printf("[StaffCreate] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{
				"message": "Staff member created successfully",
				"staff":   created,
			})
		}).
		GET("", func(ctx *gin.Context) {
			list, status, err := controllers.StaffList(ctx)
			if err != nil {
				log.Printf("[StaffList] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"staff": list})
		}).
		PATCH("/:id", func(ctx *gin.Context) {
			updated, status, err := controllers.StaffUpdate(ctx)
			if err != nil {
				log.Printf("[StaffUpdate] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"staff": updated})
		})
	return g
}
