package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"portpass/src/boot"
	"portpass/src/middlewares"
	"portpass/src/types"
	"regexp"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api"
)

// passItemIdentifiers enforces the identifier rules the tag syntax cannot
// express: daily passes carry an ID number and nothing else, vehicle and crane
// passes carry a plate number and nothing else.
func passItemIdentifiers(sl validator.StructLevel) {
	item := sl.Current().Interface().(types.PassItemData)
	switch item.PassType {
	case types.PASS_DAILY:
		if item.IDNumber == "" {
			sl.ReportError(item.IDNumber, "IDNumber", "idNumber", "requiredfordaily", "")
		}
		if item.PlateNumber != "" {
			sl.ReportError(item.PlateNumber, "PlateNumber", "plateNumber", "excludedfordaily", "")
		}
	case types.PASS_VEHICLE, types.PASS_CRANE:
		if item.PlateNumber == "" {
			sl.ReportError(item.PlateNumber, "PlateNumber", "plateNumber", "requiredforvehicle", "")
		}
		if item.IDNumber != "" {
			sl.ReportError(item.IDNumber, "IDNumber", "idNumber", "excludedforvehicle", "")
		}
	}
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(passItemIdentifiers, types.PassItemData{})
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders())
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()
	boot.SeedAdmin()
	boot.InitUploads()
	boot.InitScheduler()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		cc := cors.DefaultConfig()
		cc.AllowAllOrigins = false
		cc.AllowOriginFunc = func(origin string) bool { return true }
		cc.AllowCredentials = true
		router.Use(cors.New(cc))
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	registerValidators()

	api := router.Group(apiPrefix)
	authHandlers(api)
	publicPassHandlers(api)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.RequireAuth())
	{
		authorized = sessionHandlers(authorized)
		authorized = passHandlers(authorized)

		admin := authorized.Group("/admin")
		admin.Use(middlewares.RequireAdmin())
		staffHandlers(admin)
	}

	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
