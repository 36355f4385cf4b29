package main

import (
	"encoding/json"
	"log"
	"net/http"
	"portpass/src/config"
	"portpass/src/controllers"
	"portpass/src/lib/mailer"
	"portpass/src/types"
	"portpass/src/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func publicPassHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/pass-prices", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, config.PassPrices)
		}).
		GET("/passes/transaction/:transactionId", func(ctx *gin.Context) {
			var params struct {
				TransactionID string `uri:"transactionId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			txn, passes, err := utils.GetTransactionWithPasses(params.TransactionID)
			if err != nil {
				status := http.StatusInternalServerError
				if err == types.ErrTransactionNotFound {
					status = http.StatusNotFound
				}
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"transaction": txn,
				"passes":      passes,
			})
		}).
		POST("/verify-qr", func(ctx *gin.Context) {
			var body types.VerifyQRRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			data := utils.DecodeQRPayload(body.QRData)
			number := data["pass"]
			if number == "" {
				number = data["passNumber"]
			}
			ctx.JSON(http.StatusOK, gin.H{
				"valid":      true,
				"data":       data,
				"known":      utils.PassNumberKnown(number),
				"verifiedAt": time.Now().Format(time.RFC3339),
				"message":    "Pass verified successfully",
			})
		})
	return g
}

func passHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/passes", func(ctx *gin.Context) {
			slip, err := utils.SaveSlip(ctx)
			if err != nil {
				log.Printf("[CreatePasses] slip rejected: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var body types.CreatePassesRequestBody
			if err := json.Unmarshal([]byte(ctx.PostForm("data")), &body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			if err := binding.Validator.ValidateStruct(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			staff := controllers.CurrentStaff(ctx)
			if staff == nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"message": types.ErrAuthRequired.Error()})
				return
			}
			txn, passes, err := utils.IssuePasses(&body, slip, staff.ID)
			if err != nil {
				log.Printf("[CreatePasses] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			go func() {
				if err := mailer.SendPassReceipt(txn, passes); err != nil {
					log.Printf("Error sending receipt for transaction [%s]: %s\n", txn.ID, err.Error())
				}
			}()
			ctx.JSON(http.StatusOK, gin.H{
				"message":     "Passes created successfully",
				"transaction": txn,
				"passes":      passes,
			})
		}).
		GET("/passes/recent", func(ctx *gin.Context) {
			limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
			passes, err := utils.GetRecentPasses(limit)
			if err != nil {
				log.Printf("[RecentPasses] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"passes": passes})
		}).
		GET("/passes/slips/:filename", func(ctx *gin.Context) {
			var params struct {
				Filename string `uri:"filename" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			filepath, err := utils.ResolveSlipPath(params.Filename)
			if err != nil {
				log.Printf("[FetchSlip] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			if filepath == "" {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.File(filepath)
		})
	return g
}
