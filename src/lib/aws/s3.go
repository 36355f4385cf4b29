package aws

import (
	"context"
	"errors"
	"log"
	"mime"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func GetS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil
	}
	svc := s3.NewFromConfig(cfg)
	return svc
}

// S3UploadSlip mirrors a stored bank-transfer slip into the slips bucket.
func S3UploadSlip(name string, filepath string) error {
	slipsBucket := os.Getenv("S3_SLIPS_BUCKET")
	file, err := os.Open(filepath)
	if err != nil {
		log.Printf("Could not open file to upload: %s\n", err.Error())
		return err
	}
	defer file.Close()
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	client := GetS3Client()
	_, err = client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(slipsBucket),
		Key:         aws.String(name),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return err
	}
	log.Printf("Added object '%s' to bucket '%s'", name, slipsBucket)
	return nil
}

// S3DownloadSlip fetches a slip from the bucket into the local slip directory,
// returning the local path. Returns an empty path when the key does not exist.
func S3DownloadSlip(name string, destDir string) (string, error) {
	slipsBucket := os.Getenv("S3_SLIPS_BUCKET")
	client := GetS3Client()
	result, err := client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(slipsBucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return "", nil
		}
		return "", err
	}
	defer result.Body.Close()
	filepath := path.Join(destDir, name)
	file, err := os.Create(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if _, err := file.ReadFrom(result.Body); err != nil {
		return "", err
	}
	return filepath, nil
}
