package worker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/koustreak/SiaRi/internal/errs"
	"github.com/koustreak/SiaRi/internal/renter/api"
)

// DownloadOptions select the bucket an object lives in. An empty bucket
// means the daemon's default bucket.
type DownloadOptions struct {
	Bucket string
}

// DownloadableObject describes an object found by a download probe and
// opens byte streams over its content.
type DownloadableObject struct {
	Path   string
	Bucket string

	// Length is the object's size in bytes, -1 when the server did not
	// report one.
	Length int64

	// ContentType and ETag are empty when the server omitted them.
	ContentType string
	ETag        string

	// Seekable reports whether range reads work: the server advertised
	// byte ranges and the length is known and non-zero.
	Seekable bool

	// LastModified is zero when the server omitted it.
	LastModified time.Time

	api *api.Client
}

// Download probes path with a HEAD request and builds a descriptor for
// it. A missing object returns nil with no error.
func (c *Client) Download(ctx context.Context, path string, opts DownloadOptions) (*DownloadableObject, error) {
	headers, found, err := c.api.Head(ctx, api.ObjectPath("/worker/objects", path), bucketQuery(opts.Bucket))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	obj := &DownloadableObject{
		Path:        path,
		Bucket:      opts.Bucket,
		Length:      -1,
		ContentType: headers.Get("Content-Type"),
		ETag:        headers.Get("ETag"),
		api:         c.api,
	}
	if v := headers.Get("Content-Length"); v != "" {
		length, err := strconv.ParseInt(v, 10, 64)
		if err != nil || length < 0 {
			return nil, errs.Newf(errs.ErrKindInvalidData, "object %s: content length %q", path, v)
		}
		obj.Length = length
	}
	if v := headers.Get("Last-Modified"); v != "" {
		mod, err := http.ParseTime(v)
		if err != nil {
			return nil, errs.Wrap(errs.ErrKindInvalidData, "object "+path+": last modified "+v, err)
		}
		obj.LastModified = mod
	}
	obj.Seekable = strings.HasPrefix(headers.Get("Accept-Ranges"), "bytes") && obj.Length > 0
	return obj, nil
}

// Open starts a download from the first byte. The caller owns the stream
// and must close it.
func (o *DownloadableObject) Open(ctx context.Context) (io.ReadCloser, error) {
	return o.api.GetStream(ctx, api.ObjectPath("/worker/objects", o.Path), bucketQuery(o.Bucket), "")
}

// OpenRange returns a reader positioned at offset. Non-seekable objects
// are rejected here, before any request goes out. The request itself is
// issued by the first read, so a reader that is repositioned or closed
// without reading never touches the network.
func (o *DownloadableObject) OpenRange(ctx context.Context, offset int64) (*ObjectReader, error) {
	if !o.Seekable {
		return nil, errs.New(errs.ErrKindNotSeekable, "object "+o.Path+" does not support range reads")
	}
	if offset < 0 {
		return nil, errs.Newf(errs.ErrKindInvalidInput, "object %s: negative offset %d", o.Path, offset)
	}
	return &ObjectReader{obj: o, ctx: ctx, pos: offset}, nil
}

// rangeHeader renders the Range request header for a read starting at
// offset. Offset zero means a plain GET; a known length pins the range end
// so the server never streams past it.
func rangeHeader(offset, length int64) string {
	if offset <= 0 {
		return ""
	}
	if length > 0 {
		return fmt.Sprintf("bytes=%d-%d", offset, length-1)
	}
	return fmt.Sprintf("bytes=%d-", offset)
}

// ObjectReader streams an object's bytes and repositions through ranged
// requests. It holds the context passed to OpenRange for the requests it
// issues, so it lives within that context's lifetime.
type ObjectReader struct {
	obj    *DownloadableObject
	ctx    context.Context
	pos    int64
	body   io.ReadCloser
	closed bool
}

// Read implements io.Reader. The first read after OpenRange or a seek
// issues a fresh ranged request; transport failures mid-stream surface
// here as read errors. A position at or past the known end reports EOF
// without a request.
func (r *ObjectReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, errs.New(errs.ErrKindInvalidInput, "object reader is closed")
	}
	if r.body == nil {
		if r.pos >= r.obj.Length {
			return 0, io.EOF
		}
		body, err := r.obj.api.GetStream(r.ctx,
			api.ObjectPath("/worker/objects", r.obj.Path),
			bucketQuery(r.obj.Bucket),
			rangeHeader(r.pos, r.obj.Length))
		if err != nil {
			return 0, err
		}
		r.body = body
	}
	n, err := r.body.Read(p)
	r.pos += int64(n)
	return n, err
}

// Seek implements io.Seeker. Seeking is not an in-place skip: the current
// connection closes and the next read opens a new one at the target
// offset, costing a round trip per repositioning.
func (r *ObjectReader) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, errs.New(errs.ErrKindInvalidInput, "object reader is closed")
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = r.obj.Length + offset
	default:
		return 0, errs.Newf(errs.ErrKindInvalidInput, "seek object %s: unknown whence %d", r.obj.Path, whence)
	}
	if abs < 0 {
		return 0, errs.Newf(errs.ErrKindInvalidInput, "seek object %s: negative position %d", r.obj.Path, abs)
	}
	if r.body != nil {
		r.body.Close()
		r.body = nil
	}
	r.pos = abs
	return abs, nil
}

// Close implements io.Closer. Closing twice is a no-op.
func (r *ObjectReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.body != nil {
		err := r.body.Close()
		r.body = nil
		return err
	}
	return nil
}

// UploadOptions pick the destination bucket and the stored content type.
type UploadOptions struct {
	Bucket      string
	ContentType string
}

// Upload streams r to path. The body is not buffered; r is read exactly
// once.
func (c *Client) Upload(ctx context.Context, path string, opts UploadOptions, r io.Reader) error {
	return c.api.PutStream(ctx, api.ObjectPath("/worker/objects", path), bucketQuery(opts.Bucket), r, opts.ContentType)
}

// DeleteOptions pick the bucket and whether the delete covers a whole
// prefix.
type DeleteOptions struct {
	Bucket string
	Batch  bool
}

// DeleteObject removes the object at path. With Batch set, path acts as a
// prefix and everything under it goes.
func (c *Client) DeleteObject(ctx context.Context, path string, opts DeleteOptions) error {
	query := url.Values{}
	if opts.Bucket != "" {
		query.Set("bucket", opts.Bucket)
	}
	query.Set("batch", strconv.FormatBool(opts.Batch))
	return c.api.Delete(ctx, api.ObjectPath("/worker/objects", path), query)
}

func bucketQuery(bucket string) url.Values {
	if bucket == "" {
		return nil
	}
	query := url.Values{}
	query.Set("bucket", bucket)
	return query
}
