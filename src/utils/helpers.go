package utils

import (
	"errors"
	"fmt"
	"log"
	"portpass/src/config"
	"portpass/src/db"
	"portpass/src/models"
	"portpass/src/types"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// TotalAmount sums the unit prices of the requested items, two decimal places.
func TotalAmount(items []types.PassItemData) (string, error) {
	var total float64
	for _, item := range items {
		price, ok := config.PriceOf(item.PassType)
		if !ok {
			return "", fmt.Errorf("unknown pass type: %s", item.PassType)
		}
		amount, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return "", err
		}
		total += amount
	}
	return fmt.Sprintf("%.2f", total), nil
}

// IssuePasses runs the whole issuance as one unit of work: the Transaction row
// and every Pass row commit together or not at all.
func IssuePasses(body *types.CreatePassesRequestBody, slipFilename string, staffID uuid.UUID) (*models.Transaction, []models.Pass, error) {
	total, err := TotalAmount(body.Passes)
	if err != nil {
		return nil, nil, err
	}

	designation := config.DEFAULT_STAFF_DESIGNATION
	d := db.GetDb()
	var staff models.Staff
	if err := d.Where("id = ?", staffID).First(&staff).Error; err == nil {
		designation = staff.Designation
	} else {
		log.Printf("Could not resolve issuing staff [%s], using fallback designation: %s\n", staffID, err.Error())
	}

	txn := models.Transaction{
		PayerName:    body.Payer.Name,
		TotalAmount:  total,
		SlipFilename: slipFilename,
	}
	if body.Payer.Email != "" {
		txn.PayerEmail = &body.Payer.Email
	}
	if body.Payer.Phone != "" {
		txn.PayerPhone = &body.Payer.Phone
	}

	passes := make([]models.Pass, 0, len(body.Passes))
	err = d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		issuedAt := time.Now()
		for _, item := range body.Passes {
			number, err := MintPassNumber(tx)
			if err != nil {
				return err
			}
			price, _ := config.PriceOf(item.PassType)
			payload := EncodeQRPayload(number, item.CustomerName, item.PassType, item.ValidDate, price, designation, issuedAt)
			qrCode, err := RenderQRDataURL(payload)
			if err != nil {
				return err
			}
			pass := models.Pass{
				TransactionID: txn.ID,
				PassNumber:    number,
				CustomerName:  item.CustomerName,
				PassType:      item.PassType,
				ValidDate:     item.ValidDate,
				Amount:        price,
				QRCode:        qrCode,
				StaffID:       staffID,
			}
			if item.IDNumber != "" {
				pass.IDNumber = &item.IDNumber
			}
			if item.PlateNumber != "" {
				pass.PlateNumber = &item.PlateNumber
			}
			if err := tx.Create(&pass).Error; err != nil {
				return err
			}
			passes = append(passes, pass)
		}
		return nil
	})
	if err != nil {
		log.Printf("IssuePasses failed: %s\n", err.Error())
		return nil, nil, err
	}
	return &txn, passes, nil
}

func GetRecentPasses(limit int) ([]models.Pass, error) {
	if limit <= 0 {
		limit = 5
	}
	var passes []models.Pass
	d := db.GetDb()
	err := d.
		Model(&models.Pass{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&passes).
		Error
	return passes, err
}

func GetTransactionWithPasses(id string) (*models.Transaction, []models.Pass, error) {
	txnId, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, types.ErrTransactionNotFound
	}
	var txn models.Transaction
	d := db.GetDb()
	if err := d.Where("id = ?", txnId).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, types.ErrTransactionNotFound
		}
		return nil, nil, err
	}
	var passes []models.Pass
	if err := d.
		Where("transaction_id = ?", txnId).
		Order("created_at ASC").
		Find(&passes).
		Error; err != nil {
		return nil, nil, err
	}
	return &txn, passes, nil
}

// PassNumberKnown reports whether a decoded pass number exists in the store.
// Lookup failures are logged and reported as unknown, never as an error.
func PassNumberKnown(number string) bool {
	if number == "" {
		return false
	}
	var count int64
	d := db.GetDb()
	if err := d.
		Model(&models.Pass{}).
		Where("pass_number = ?", number).
		Count(&count).
		Error; err != nil {
		log.Printf("Error looking up pass number [%s]: %s\n", number, err.Error())
		return false
	}
	return count > 0
}
