package storage

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FileStorage issues time-limited download URLs for objects stored in S3.
type FileStorage struct {
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
}

func NewFileStorage(client *s3.Client, bucket string, expiry time.Duration) *FileStorage {
	return &FileStorage{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		expiry:    expiry,
	}
}

// SignedDownloadURL presigns a GET for the given object key. A non-empty
// downloadName forces an attachment disposition under that filename.
func (s *FileStorage) SignedDownloadURL(ctx context.Context, key, downloadName string) (string, time.Time, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if downloadName != "" {
		input.ResponseContentDisposition = aws.String(fmt.Sprintf("attachment; filename=%q", downloadName))
	}

	expiresAt := time.Now().Add(s.expiry)

	request, err := s.presigner.PresignGetObject(ctx, input, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign download for %s: %w", key, err)
	}

	return request.URL, expiresAt, nil
}

var (
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	repeatedDashes  = regexp.MustCompile(`-+`)
)

// SanitizeDownloadName reduces a user-supplied filename to a safe attachment
// name: last path segment only, restricted character set, capped at 120
// characters. Falls back to "file" when nothing usable remains.
func SanitizeDownloadName(input string) string {
	base := strings.TrimSpace(input)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}

	sanitized := unsafeNameChars.ReplaceAllString(base, "-")
	sanitized = repeatedDashes.ReplaceAllString(sanitized, "-")
	sanitized = strings.TrimLeft(sanitized, ".")
	if len(sanitized) > 120 {
		sanitized = sanitized[:120]
	}

	if sanitized == "" {
		return "file"
	}
	return sanitized
}
