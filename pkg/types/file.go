package types

import (
	"errors"
	"time"
)

var ErrFileNotFound = errors.New("file not found")

// File is a stored object reference. StorageKey locates the object in the
// bucket; FileName is the original upload name used for downloads.
type File struct {
	ID          string    `db:"id" json:"id"`
	OwnerUserID *string   `db:"owner_user_id" json:"-"`
	StorageKey  string    `db:"storage_key" json:"-"`
	FileName    string    `db:"file_name" json:"fileName"`
	ContentType *string   `db:"content_type" json:"contentType"`
	SizeBytes   *int64    `db:"size_bytes" json:"sizeBytes"`
	Purpose     string    `db:"purpose" json:"purpose"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
