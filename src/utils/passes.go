package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path"
	"portpass/src/config"
	"portpass/src/models"
	"portpass/src/types"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
	"gorm.io/gorm"
)

// GeneratePassNumber produces PP-<year>-<last 6 digits of unix millis><2-digit
// random>. Uniqueness is not guaranteed here; see MintPassNumber.
func GeneratePassNumber() string {
	now := time.Now()
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	suffix := ts[len(ts)-6:]
	random := rand.Intn(100)
	return fmt.Sprintf("PP-%d-%s%02d", now.Year(), suffix, random)
}

// MintPassNumber generates a pass number and verifies it against the store,
// retrying a few times before giving up. The unique index on passes.pass_number
// is the backstop for races this check cannot see.
func MintPassNumber(tx *gorm.DB) (string, error) {
	for range 5 {
		number := GeneratePassNumber()
		var count int64
		if err := tx.
			Model(&models.Pass{}).
			Where("pass_number = ?", number).
			Count(&count).
			Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", types.ErrPassNumberExhausted
}

// EncodeQRPayload builds the pipe-separated text embedded in the QR image.
// The exact field order and spelling is the wire contract scanners rely on.
func EncodeQRPayload(passNumber, customerName, passType, validDate, amount, designation string, issuedAt time.Time) string {
	return fmt.Sprintf(
		"PASS:%s|CUSTOMER:%s|TYPE:%s|VALID:%s|AMOUNT:MVR %s|STAFF:%s|DATE:%s|STATUS:ACTIVE",
		passNumber,
		customerName,
		passType,
		validDate,
		amount,
		designation,
		issuedAt.Format(config.DATE_DISPLAY_FORMAT),
	)
}

// DecodeQRPayload parses scanned text into a key/value mapping. It is a total
// function: pipe-separated payloads are split into lower-cased keys, bare JSON
// objects are accepted for older passes, and anything else is treated as a
// plain pass number.
func DecodeQRPayload(text string) map[string]string {
	decoded := make(map[string]string)
	if strings.Contains(text, "|") {
		for _, part := range strings.Split(text, "|") {
			key, value, ok := strings.Cut(part, ":")
			if ok && key != "" && value != "" {
				decoded[strings.ToLower(key)] = value
			}
		}
		return decoded
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		for key, value := range parsed {
			decoded[key] = fmt.Sprint(value)
		}
		return decoded
	}
	decoded["passNumber"] = text
	return decoded
}

// RenderQRDataURL renders the payload to a JPEG QR image and returns it as a
// data URL suitable for embedding straight into the printable pass.
func RenderQRDataURL(payload string) (string, error) {
	qrc, err := qrcode.New(payload)
	if err != nil {
		return "", err
	}
	filepath := path.Join(os.TempDir(), fmt.Sprintf("%s.jpeg", uuid.NewString()))
	if err := qrc.Save(filepath); err != nil {
		return "", err
	}
	defer os.Remove(filepath)
	content, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(content), nil
}
