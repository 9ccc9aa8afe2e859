// Package storage provides object storage for uploaded files such as expense
// receipts.
//
// Three backends are supported: AWS S3, Google Cloud Storage, and MinIO. The
// active backend is selected by driver name through NewFromDriver.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrMissingSigner indicates signed URL support is not configured.
var ErrMissingSigner = errors.New("storage: signed url signer not configured")

// Storage defines the object storage operations used by the application.
type Storage interface {
	io.Closer

	// Put stores data under bucket/key and returns object metadata.
	Put(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, bucket, key string) error
	// SignedGetURL returns a short-lived URL for downloading the object.
	SignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// PutOptions configures upload behavior.
type PutOptions struct {
	// Size is the expected content length; zero means unknown.
	Size int64
	// ContentType is the MIME type for the object.
	ContentType string
}

// ObjectInfo describes stored object metadata.
type ObjectInfo struct {
	// Bucket is the bucket name.
	Bucket string
	// Key is the object key.
	Key string
	// Size is the object size in bytes.
	Size int64
	// ETag is the object ETag when provided.
	ETag string
}
