package config

import (
	"fmt"
	"os"
	"path"
	"time"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// PassPrices is the static pricing table in MVR, two decimal places per unit.
var PassPrices = map[string]string{
	"daily":   "6.11",
	"vehicle": "11.21",
	"crane":   "81.51",
}

func PriceOf(passType string) (string, bool) {
	price, ok := PassPrices[passType]
	return price, ok
}

const (
	SESSION_COOKIE_NAME = "portpass_session"
	SESSION_TTL         = 24 * time.Hour

	MAX_SLIP_BYTES int64 = 5 << 20

	// DATE_DISPLAY_FORMAT renders issue dates as M/D/YYYY on QR payloads.
	DATE_DISPLAY_FORMAT = "1/2/2006"

	DEFAULT_STAFF_DESIGNATION = "Port Authority Staff"
)

// SlipDir returns the directory uploaded bank-transfer slips are stored in.
func SlipDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return path.Join(dir, "slips")
}
