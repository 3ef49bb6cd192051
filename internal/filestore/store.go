// Package filestore defines the unified interface for object storage backends.
//
// Both ways of reading files off a renterd node implement the Store
// interface: the sia driver speaks the daemon's native bus and worker APIs,
// the minio driver speaks S3 to the daemon's gateway (or any other S3
// endpoint). Callers depend only on this package — never on a specific
// driver package.
//
// Usage:
//
//	cli, err := renter.New(renter.DefaultConfig("http://localhost:9980/api", password))
//	if err != nil { ... }
//	store, err := sia.New(ctx, cli)
//	if err != nil { ... }
//	defer store.Close()
//
//	buckets, err := store.ListBuckets(ctx)
package filestore

import (
	"context"
	"time"
)

// Store is the single interface all object storage drivers must implement.
// Currently scoped to GET (read) operations only.
type Store interface {
	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any held resources (connections, goroutines, etc.).
	Close() error

	// ListBuckets returns all buckets accessible with the configured credentials.
	ListBuckets(ctx context.Context) ([]BucketInfo, error)

	// ListObjects returns the objects in bucket that match opts.
	// Virtual directory entries (common prefixes) are included when opts.Recursive is false.
	ListObjects(ctx context.Context, bucket string, opts ListOptions) ([]ObjectInfo, error)

	// GetObject opens a streaming handle to the object at key inside bucket.
	// The caller MUST call Object.Close() after reading.
	GetObject(ctx context.Context, bucket, key string) (Object, error)

	// GetObjectRange opens a streaming handle that starts offset bytes into
	// the object at key inside bucket and runs to its end. Backends that
	// cannot range-read the object report a NotSeekable error.
	// The caller MUST call Object.Close() after reading.
	GetObjectRange(ctx context.Context, bucket, key string, offset int64) (Object, error)

	// StatObject returns metadata for the object at key inside bucket
	// without downloading its content.
	StatObject(ctx context.Context, bucket, key string) (*ObjectInfo, error)

	// PresignGetURL returns a time-limited URL that allows anyone to download
	// the object at key inside bucket without credentials. Drivers without
	// presigning report an Unsupported error.
	PresignGetURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}
