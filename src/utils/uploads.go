package utils

import (
	"fmt"
	"log"
	"os"
	"path"
	"portpass/src/config"
	awslib "portpass/src/lib/aws"
	"portpass/src/types"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var allowedSlipTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// SaveSlip validates and stores the uploaded bank-transfer slip, returning the
// stored filename. When a slips bucket is configured the file is mirrored to
// S3 in the background.
func SaveSlip(ctx *gin.Context) (string, error) {
	file, err := ctx.FormFile("slip")
	if err != nil {
		return "", types.ErrSlipRequired
	}
	if file.Size > config.MAX_SLIP_BYTES {
		return "", types.ErrSlipTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedSlipTypes[contentType] {
		return "", types.ErrSlipBadType
	}

	ext := path.Ext(file.Filename)
	base := strings.TrimSuffix(path.Base(file.Filename), ext)
	stored := fmt.Sprintf("%s-%s%s", uuid.NewString(), slug.Make(base), ext)

	if err := os.MkdirAll(config.SlipDir(), 0o755); err != nil {
		return "", err
	}
	dst := path.Join(config.SlipDir(), stored)
	if err := ctx.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	if os.Getenv("S3_SLIPS_BUCKET") != "" {
		go func() {
			if err := awslib.S3UploadSlip(stored, dst); err != nil {
				log.Printf("Error mirroring slip [%s] to S3 bucket: %s\n", stored, err.Error())
			}
		}()
	}
	return stored, nil
}

// ResolveSlipPath returns a local path for a stored slip, pulling it from the
// slips bucket when it is not on disk. An empty path means the slip is unknown.
func ResolveSlipPath(name string) (string, error) {
	filepath := path.Join(config.SlipDir(), name)
	if _, err := os.Stat(filepath); err == nil {
		return filepath, nil
	}
	if os.Getenv("S3_SLIPS_BUCKET") == "" {
		return "", nil
	}
	return awslib.S3DownloadSlip(name, config.SlipDir())
}
