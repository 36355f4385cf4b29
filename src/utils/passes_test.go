package utils

import (
	"encoding/base64"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var passNumberPattern = regexp.MustCompile(`^PP-\d{4}-\d{8}$`)

func TestGeneratePassNumberFormat(t *testing.T) {
	for range 20 {
		number := GeneratePassNumber()
		assert.Regexp(t, passNumberPattern, number)
	}
}

func TestEncodeQRPayload(t *testing.T) {
	issuedAt := time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC)
	payload := EncodeQRPayload("PP-2026-12345678", "Ahmed Waheed", "daily", "2026-03-10", "6.11", "Port Authority Staff", issuedAt)

	assert.Equal(t,
		"PASS:PP-2026-12345678|CUSTOMER:Ahmed Waheed|TYPE:daily|VALID:2026-03-10|AMOUNT:MVR 6.11|STAFF:Port Authority Staff|DATE:3/9/2026|STATUS:ACTIVE",
		payload,
	)
}

func TestDecodeQRPayloadPipe(t *testing.T) {
	issuedAt := time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC)
	payload := EncodeQRPayload("PP-2026-12345678", "Ahmed Waheed", "daily", "2026-03-10", "6.11", "Port Authority Staff", issuedAt)

	decoded := DecodeQRPayload(payload)

	assert.Equal(t, "PP-2026-12345678", decoded["pass"])
	assert.Equal(t, "Ahmed Waheed", decoded["customer"])
	assert.Equal(t, "daily", decoded["type"])
	assert.Equal(t, "2026-03-10", decoded["valid"])
	assert.Equal(t, "MVR 6.11", decoded["amount"])
	assert.Equal(t, "Port Authority Staff", decoded["staff"])
	assert.Equal(t, "3/9/2026", decoded["date"])
	assert.Equal(t, "ACTIVE", decoded["status"])
}

func TestDecodeQRPayloadSkipsMalformedSegments(t *testing.T) {
	decoded := DecodeQRPayload("PASS:PP-2026-12345678||:|noseparator|TYPE:daily")

	assert.Equal(t, map[string]string{
		"pass": "PP-2026-12345678",
		"type": "daily",
	}, decoded)
}

func TestDecodeQRPayloadJSON(t *testing.T) {
	decoded := DecodeQRPayload(`{"passNumber":"PP-2026-12345678","customerName":"Ahmed Waheed"}`)

	assert.Equal(t, "PP-2026-12345678", decoded["passNumber"])
	assert.Equal(t, "Ahmed Waheed", decoded["customerName"])
}

func TestDecodeQRPayloadPlainText(t *testing.T) {
	decoded := DecodeQRPayload("PP-2026-99887766")

	assert.Equal(t, map[string]string{"passNumber": "PP-2026-99887766"}, decoded)
}

func TestRenderQRDataURL(t *testing.T) {
	dataURL, err := RenderQRDataURL("PASS:PP-2026-12345678|STATUS:ACTIVE")

	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/jpeg;base64,"))

	raw := strings.TrimPrefix(dataURL, "data:image/jpeg;base64,")
	decoded, err := base64.StdEncoding.DecodeString(raw)
	assert.Nil(t, err)
	assert.Greater(t, len(decoded), 0)
}
