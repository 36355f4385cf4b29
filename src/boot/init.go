package boot

import (
	"context"
	"log"
	"os"
	"portpass/src/config"
	"portpass/src/db"
	"portpass/src/lib"
	"portpass/src/models"
	"portpass/src/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
)

func InitDb() {
	d := db.GetDb()
	if err := d.AutoMigrate(
		&models.Staff{},
		&models.Transaction{},
		&models.Pass{},
	); err != nil {
		log.Fatalf("Error running migrations: %s\n", err.Error())
	}
}

// SeedAdmin creates the bootstrap administrator account when no account with
// that username exists yet.
func SeedAdmin() {
	d := db.GetDb()
	var count int64
	if err := d.
		Model(&models.Staff{}).
		Where("username = ?", "admin").
		Count(&count).
		Error; err != nil {
		log.Fatalf("Error checking for admin account: %s\n", err.Error())
	}
	if count > 0 {
		return
	}
	hash, err := utils.HashPassword("admin123")
	if err != nil {
		log.Fatalf("Error hashing seed password: %s\n", err.Error())
	}
	admin := models.Staff{
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "System Administrator",
		Designation:  "System Administrator",
		Department:   "IT",
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := d.Create(&admin).Error; err != nil {
		log.Fatalf("Error seeding admin account: %s\n", err.Error())
	}
	log.Println("Seeded default admin account")
}

func InitUploads() {
	if err := os.MkdirAll(config.SlipDir(), 0o755); err != nil {
		log.Fatalf("Error creating upload directory: %s\n", err.Error())
	}
}

// InitScheduler starts the background sweep that evicts expired sessions.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Fatalf("Error initializing scheduler: %s\n", err.Error())
	}
	_, err = sched.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			store := lib.GetSessionStore()
			store.Sweep(context.Background())
		}),
	)
	if err != nil {
		log.Fatalf("Error registering session sweep job: %s\n", err.Error())
	}
	sched.Start()
}
