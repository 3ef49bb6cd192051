package bus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/koustreak/SiaRi/internal/errs"
	"github.com/koustreak/SiaRi/internal/renter/api"
	"github.com/koustreak/SiaRi/internal/renter/types"
)

// ObjectMetadata describes one stored object inside listings, directory
// pages and search results.
type ObjectMetadata struct {
	ETag     string           `json:"eTag,omitempty"`
	Health   types.Percentage `json:"health"`
	ModTime  time.Time        `json:"modTime"`
	Name     string           `json:"name"`
	Size     uint64           `json:"size"`
	MimeType string           `json:"mimeType,omitempty"`
}

// Object is a stored object's full record: its metadata plus encryption
// key, slab layout and caller-supplied user metadata.
type Object struct {
	ObjectMetadata
	UserMetadata map[string]string `json:"metadata,omitempty"`
	Key          string            `json:"key,omitempty"`
	Slabs        []json.RawMessage `json:"slabs,omitempty"`
}

// Directory is the directory branch of a lookup: the entries directly
// under the path plus whether the server truncated them.
type Directory struct {
	Entries []ObjectMetadata
	HasMore bool
}

// Lookup is the result of resolving an object path. Exactly one branch is
// set: File when the path names an object, Dir when it names a directory.
type Lookup struct {
	File *Object
	Dir  *Directory
}

// GetOptions tune a lookup. Zero values are omitted from the request;
// Offset, Marker and Limit page through large directories.
type GetOptions struct {
	Bucket string
	Prefix string
	Offset int
	Marker string
	Limit  int
}

type getResponse struct {
	Entries []ObjectMetadata `json:"entries"`
	Object  *Object          `json:"object"`
	HasMore bool             `json:"hasMore"`
}

// Get resolves path to a file or a directory page. A nil result with a
// nil error means nothing lives at path. When the server reports both an
// object and entries, the object wins.
func (c *Client) Get(ctx context.Context, path string, opts GetOptions) (*Lookup, error) {
	query := url.Values{}
	if opts.Bucket != "" {
		query.Set("bucket", opts.Bucket)
	}
	if opts.Prefix != "" {
		query.Set("prefix", opts.Prefix)
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Marker != "" {
		query.Set("marker", opts.Marker)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var resp getResponse
	found, err := c.api.GetOptional(ctx, api.ObjectPath("/bus/objects", path), query, &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if resp.Object != nil {
		return &Lookup{File: resp.Object}, nil
	}
	entries := resp.Entries
	if entries == nil {
		entries = []ObjectMetadata{}
	}
	return &Lookup{Dir: &Directory{Entries: entries, HasMore: resp.HasMore}}, nil
}

// ListOptions tune a listing. BatchSize bounds each page and must be
// positive; Bucket and Prefix narrow the result. A non-empty Marker
// resumes the listing after that path.
type ListOptions struct {
	Bucket    string
	Prefix    string
	Marker    string
	BatchSize int
}

type listRequest struct {
	Bucket string  `json:"bucket,omitempty"`
	Limit  int     `json:"limit"`
	Prefix string  `json:"prefix,omitempty"`
	Marker *string `json:"marker,omitempty"`
}

type listResponse struct {
	HasMore    bool             `json:"hasMore"`
	NextMarker *string          `json:"nextMarker"`
	Objects    []ObjectMetadata `json:"objects"`
}

// ObjectIterator pages through a flat object listing in server order. It
// is forward-only and cannot be restarted; at most one request is in
// flight, issued by the Next call that needs it.
//
// Usage:
//
//	it, err := client.List(ctx, bus.ListOptions{BatchSize: 100})
//	if err != nil {
//		return err
//	}
//	for it.Next(ctx) {
//		for _, obj := range it.Batch() {
//			...
//		}
//	}
//	if err := it.Err(); err != nil {
//		return err
//	}
type ObjectIterator struct {
	c   *Client
	req listRequest

	first   bool
	pending []ObjectMetadata
	batch   []ObjectMetadata
	hasMore bool
	done    bool
	err     error
}

// List opens a listing. The first page is fetched eagerly, so a broken
// request fails here rather than on the first pull.
func (c *Client) List(ctx context.Context, opts ListOptions) (*ObjectIterator, error) {
	if opts.BatchSize <= 0 {
		return nil, errs.New(errs.ErrKindInvalidInput, "list batch size must be positive")
	}
	it := &ObjectIterator{
		c:     c,
		req:   listRequest{Bucket: opts.Bucket, Limit: opts.BatchSize, Prefix: opts.Prefix},
		first: true,
	}
	if opts.Marker != "" {
		it.req.Marker = &opts.Marker
	}
	resp, err := it.fetch(ctx)
	if err != nil {
		return nil, err
	}
	it.pending = resp.Objects
	it.hasMore = resp.HasMore
	it.req.Marker = resp.NextMarker
	return it, nil
}

// Next advances to the next batch, blocking on at most one request. It
// returns false once the listing is exhausted or failed; check Err
// afterwards. The sequence ends when the server reports no more entries,
// and also on an empty batch even if the server claims more remain.
func (it *ObjectIterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}
	if it.first {
		it.first = false
		return it.deliver(it.pending)
	}
	if !it.hasMore {
		it.done = true
		it.batch = nil
		return false
	}
	resp, err := it.fetch(ctx)
	if err != nil {
		it.err = err
		it.done = true
		it.batch = nil
		return false
	}
	it.hasMore = resp.HasMore
	it.req.Marker = resp.NextMarker
	return it.deliver(resp.Objects)
}

// Batch returns the batch produced by the last successful Next. The slice
// is owned by the caller until the next pull.
func (it *ObjectIterator) Batch() []ObjectMetadata {
	return it.batch
}

// Err returns the error that terminated the listing, if any.
func (it *ObjectIterator) Err() error {
	return it.err
}

func (it *ObjectIterator) deliver(objects []ObjectMetadata) bool {
	if len(objects) == 0 {
		it.done = true
		it.batch = nil
		return false
	}
	it.batch = objects
	it.pending = nil
	return true
}

func (it *ObjectIterator) fetch(ctx context.Context) (*listResponse, error) {
	var resp listResponse
	if err := it.c.api.Post(ctx, "/bus/objects/list", nil, &it.req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteOptions tune an object delete. Batch removes everything under the
// path as a prefix instead of one object.
type DeleteOptions struct {
	Bucket string
	Batch  bool
}

// DeleteObject removes the object at path.
func (c *Client) DeleteObject(ctx context.Context, path string, opts DeleteOptions) error {
	query := url.Values{}
	if opts.Bucket != "" {
		query.Set("bucket", opts.Bucket)
	}
	query.Set("batch", strconv.FormatBool(opts.Batch))
	return c.api.Delete(ctx, api.ObjectPath("/bus/objects", path), query)
}

type copyRequest struct {
	SourceBucket      string `json:"sourceBucket"`
	SourcePath        string `json:"sourcePath"`
	DestinationBucket string `json:"destinationBucket"`
	DestinationPath   string `json:"destinationPath"`
}

// CopyObject copies srcPath in srcBucket to dstPath in dstBucket.
func (c *Client) CopyObject(ctx context.Context, srcBucket, srcPath, dstBucket, dstPath string) error {
	body := copyRequest{
		SourceBucket:      srcBucket,
		SourcePath:        srcPath,
		DestinationBucket: dstBucket,
		DestinationPath:   dstPath,
	}
	return c.api.Post(ctx, "/bus/objects/copy", nil, &body, nil)
}

// RenameMode selects between renaming one object and renaming everything
// under a prefix.
type RenameMode string

const (
	RenameModeSingle RenameMode = "single"
	RenameModeMulti  RenameMode = "multi"
)

type renameRequest struct {
	Bucket string     `json:"bucket"`
	Force  bool       `json:"force"`
	From   string     `json:"from"`
	To     string     `json:"to"`
	Mode   RenameMode `json:"mode"`
}

// RenameObject renames from to to inside bucket. Multi mode treats from
// as a prefix; force overwrites a colliding target.
func (c *Client) RenameObject(ctx context.Context, bucket, from, to string, mode RenameMode, force bool) error {
	body := renameRequest{Bucket: bucket, Force: force, From: from, To: to, Mode: mode}
	return c.api.Post(ctx, "/bus/objects/rename", nil, &body, nil)
}

// SearchOptions tune an object search. Zero values are omitted.
type SearchOptions struct {
	Bucket string
	Offset int
	Limit  int
}

// SearchObjects finds objects whose names contain key anywhere in the
// tree. An empty key matches everything.
func (c *Client) SearchObjects(ctx context.Context, key string, opts SearchOptions) ([]ObjectMetadata, error) {
	query := url.Values{}
	if key != "" {
		query.Set("key", key)
	}
	if opts.Bucket != "" {
		query.Set("bucket", opts.Bucket)
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out []ObjectMetadata
	if err := c.api.Get(ctx, "/bus/search/objects", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
