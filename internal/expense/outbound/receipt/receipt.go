package receipt

import (
	"context"
	"io"
	"time"

	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
)

// Store keeps receipt files in one bucket of the shared object storage.
type Store struct {
	client storage.Storage
	bucket string
	ins    instrument.Instrumentation
}

func NewStore(client storage.Storage, bucket string, ins instrument.Instrumentation) *Store {
	return &Store{client: client, bucket: bucket, ins: ins}
}

func (s *Store) Store(ctx context.Context, key string, r io.Reader, contentType string) error {
	ctx, span := s.ins.Tracer("expense.outbound.receipt").Start(ctx, "Store")
	defer span.End()

	if _, err := s.client.Put(ctx, s.bucket, key, r, storage.PutOptions{ContentType: contentType}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (s *Store) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	ctx, span := s.ins.Tracer("expense.outbound.receipt").Start(ctx, "SignedURL")
	defer span.End()

	url, err := s.client.SignedGetURL(ctx, s.bucket, key, expiry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return url, nil
}
