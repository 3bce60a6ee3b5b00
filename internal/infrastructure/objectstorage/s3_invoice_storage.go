package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	defaultInvoicesBucket = "notas-fiscais"
	invoicesPrefix        = "notas"
)

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// S3InvoiceStorage stores proof-of-payment files in an S3 bucket.
//
// Objects are written under a per-order, timestamped key so re-uploads never
// collide:
//
//	notas/{orderID}-{sanitizedName}-{unixms}.{ext}

type S3InvoiceStorage struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IAttachmentStorage = (*S3InvoiceStorage)(nil)

func NewS3InvoiceStorage(client *s3.Client, region string) *S3InvoiceStorage {
	return &S3InvoiceStorage{
		client: client,
		bucket: getenvDefault("INVOICES_BUCKET", defaultInvoicesBucket),
		region: region,
	}
}

func (s *S3InvoiceStorage) Upload(ctx context.Context, orderID, fileName, contentType string, content []byte) (entities.InvoiceAttachment, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := buildObjectKey(orderID, fileName, time.Now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(content),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return entities.InvoiceAttachment{}, err
	}

	return entities.InvoiceAttachment{
		Name:        fileName,
		URL:         s.publicURL(key),
		StoragePath: key,
	}, nil
}

func (s *S3InvoiceStorage) Remove(ctx context.Context, storagePath string) error {
	if storagePath == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	return err
}

// publicURL assumes a public-read bucket, matching how the UI links the
// stored file. INVOICES_PUBLIC_URL overrides the virtual-hosted default for
// local endpoints.
func (s *S3InvoiceStorage) publicURL(key string) string {
	if base := os.Getenv("INVOICES_PUBLIC_URL"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func buildObjectKey(orderID, fileName string, now time.Time) string {
	base := fileName
	ext := "dat"
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		base = fileName[:i]
		if e := sanitize(strings.ToLower(fileName[i+1:])); e != "" {
			ext = e
		}
	}

	safeOrderID := sanitize(orderID)
	if safeOrderID == "" {
		safeOrderID = fmt.Sprintf("%d", now.UnixMilli())
	}

	return fmt.Sprintf("%s/%s-%s-%d.%s", invoicesPrefix, safeOrderID, sanitize(base), now.UnixMilli(), ext)
}

func sanitize(s string) string {
	return unsafePathChars.ReplaceAllString(s, "")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
