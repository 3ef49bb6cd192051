// Package sia provides the native renterd implementation of
// filestore.Store: listings come from the bus API, content streams
// through the worker API.
//
// Unlike the minio driver it does not dial from a Config; it wraps an
// existing renter client, which the caller keeps ownership of.
package sia

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/koustreak/SiaRi/internal/errs"
	"github.com/koustreak/SiaRi/internal/filestore"
	"github.com/koustreak/SiaRi/internal/renter"
	"github.com/koustreak/SiaRi/internal/renter/bus"
	"github.com/koustreak/SiaRi/internal/renter/worker"
)

// listBatchSize bounds each page pulled from the bus while walking a
// recursive listing.
const listBatchSize = 500

// Driver reads objects through a renterd daemon.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	cli *renter.Client
}

// New wraps cli in a Driver. It calls Ping to validate the connection
// before returning.
func New(ctx context.Context, cli *renter.Client) (*Driver, error) {
	d := &Driver{cli: cli}

	if err := d.Ping(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// --- filestore.Store implementation ---

// Ping verifies the daemon is reachable by fetching the bus state.
func (d *Driver) Ping(ctx context.Context) error {
	if _, err := d.cli.Bus.State(ctx); err != nil {
		return err
	}
	return nil
}

// Close is a no-op, the wrapped renter client stays with its owner.
func (d *Driver) Close() error {
	return nil
}

// ListBuckets returns all buckets on the daemon.
func (d *Driver) ListBuckets(ctx context.Context) ([]filestore.BucketInfo, error) {
	raw, err := d.cli.Bus.Buckets(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make([]filestore.BucketInfo, len(raw))
	for i, b := range raw {
		buckets[i] = filestore.BucketInfo{
			Name:      b.Name,
			CreatedAt: b.CreatedAt,
		}
	}
	return buckets, nil
}

// ListObjects returns objects in bucket that match opts. Recursive
// listings walk the bus listing endpoint page by page; non-recursive ones
// resolve a single directory, so virtual directory entries come back as
// IsDir results.
func (d *Driver) ListObjects(ctx context.Context, bucket string, opts filestore.ListOptions) ([]filestore.ObjectInfo, error) {
	if opts.Recursive {
		return d.listRecursive(ctx, bucket, opts)
	}
	return d.listDirectory(ctx, bucket, opts)
}

func (d *Driver) listRecursive(ctx context.Context, bucket string, opts filestore.ListOptions) ([]filestore.ObjectInfo, error) {
	batch := listBatchSize
	if opts.Limit > 0 && opts.Limit < batch {
		batch = opts.Limit
	}
	it, err := d.cli.Bus.List(ctx, bus.ListOptions{
		Bucket:    bucket,
		Prefix:    optionalPath(opts.Prefix),
		Marker:    optionalPath(opts.Marker),
		BatchSize: batch,
	})
	if err != nil {
		return nil, err
	}

	var results []filestore.ObjectInfo
	for it.Next(ctx) {
		for _, obj := range it.Batch() {
			results = append(results, metadataInfo(obj))
			if opts.Limit > 0 && len(results) >= opts.Limit {
				return results, nil
			}
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Driver) listDirectory(ctx context.Context, bucket string, opts filestore.ListOptions) ([]filestore.ObjectInfo, error) {
	dir, rest := path.Split(strings.TrimPrefix(opts.Prefix, "/"))
	lookup, err := d.cli.Bus.Get(ctx, "/"+dir, bus.GetOptions{
		Bucket: bucket,
		Prefix: rest,
		Marker: optionalPath(opts.Marker),
		Limit:  opts.Limit,
	})
	if err != nil {
		return nil, err
	}
	if lookup == nil || lookup.Dir == nil {
		return nil, nil
	}

	results := make([]filestore.ObjectInfo, len(lookup.Dir.Entries))
	for i, obj := range lookup.Dir.Entries {
		results[i] = metadataInfo(obj)
	}
	return results, nil
}

// GetObject opens a streaming handle to the object at key inside bucket.
// The caller MUST call Object.Close() after reading.
func (d *Driver) GetObject(ctx context.Context, bucket, key string) (filestore.Object, error) {
	return d.GetObjectRange(ctx, bucket, key, 0)
}

// GetObjectRange opens a streaming handle that starts offset bytes into
// the object at key inside bucket. Objects the daemon cannot range-read
// report a NotSeekable error for non-zero offsets.
func (d *Driver) GetObjectRange(ctx context.Context, bucket, key string, offset int64) (filestore.Object, error) {
	if offset < 0 {
		return nil, errs.Newf(errs.ErrKindInvalidInput, "negative range offset %d", offset)
	}

	probe, err := d.probe(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	if offset == 0 {
		stream, err := probe.Open(ctx)
		if err != nil {
			return nil, err
		}
		return &object{ReadCloser: stream, info: probeInfo(key, probe)}, nil
	}

	reader, err := probe.OpenRange(ctx, offset)
	if err != nil {
		return nil, err
	}
	return &object{ReadCloser: reader, info: probeInfo(key, probe)}, nil
}

// StatObject returns metadata for the object at key inside bucket
// without downloading its content.
func (d *Driver) StatObject(ctx context.Context, bucket, key string) (*filestore.ObjectInfo, error) {
	probe, err := d.probe(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	return probeInfo(key, probe), nil
}

// PresignGetURL is not supported: every native API request carries the
// daemon password, so there is no credential-free URL to hand out. The
// minio driver against the daemon's S3 gateway provides presigning.
func (d *Driver) PresignGetURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	return "", errs.New(errs.ErrKindUnsupported, "the native renterd API cannot presign downloads")
}

// --- internal helpers ---

// probe resolves key to a downloadable object, turning absence into a
// typed not-found error. The facade promises an error for missing keys,
// unlike the worker client's nil result.
func (d *Driver) probe(ctx context.Context, bucket, key string) (*worker.DownloadableObject, error) {
	obj, err := d.cli.Worker.Download(ctx, objectPath(key), worker.DownloadOptions{Bucket: bucket})
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errs.New(errs.ErrKindNotFound, "object "+key+" not found")
	}
	return obj, nil
}

// objectPath turns a facade key into the daemon's absolute object path.
func objectPath(key string) string {
	return "/" + strings.TrimPrefix(key, "/")
}

// optionalPath is objectPath for query parameters whose zero value must
// stay empty.
func optionalPath(key string) string {
	if key == "" {
		return ""
	}
	return objectPath(key)
}

// objectKey turns a daemon object name back into a facade key.
func objectKey(name string) string {
	return strings.TrimPrefix(name, "/")
}

func metadataInfo(obj bus.ObjectMetadata) filestore.ObjectInfo {
	key := objectKey(obj.Name)
	return filestore.ObjectInfo{
		Key:          key,
		Size:         int64(obj.Size),
		ContentType:  obj.MimeType,
		ETag:         obj.ETag,
		LastModified: obj.ModTime,
		IsDir:        strings.HasSuffix(key, "/"),
	}
}

func probeInfo(key string, obj *worker.DownloadableObject) *filestore.ObjectInfo {
	return &filestore.ObjectInfo{
		Key:          key,
		Size:         obj.Length,
		ContentType:  obj.ContentType,
		ETag:         strings.Trim(obj.ETag, `"`),
		LastModified: obj.LastModified,
	}
}

// object wraps a worker download stream and exposes filestore.Object.
type object struct {
	io.ReadCloser
	info *filestore.ObjectInfo
}

func (o *object) Info() *filestore.ObjectInfo {
	return o.info
}
