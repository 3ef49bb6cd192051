package bus

import (
	"context"
	"time"

	"github.com/koustreak/SiaRi/internal/renter/api"
)

// Bucket is a namespace for objects.
type Bucket struct {
	CreatedAt time.Time    `json:"createdAt"`
	Name      string       `json:"name"`
	Policy    BucketPolicy `json:"policy"`
}

// BucketPolicy holds per-bucket access policy.
type BucketPolicy struct {
	PublicReadAccess bool `json:"publicReadAccess"`
}

// Buckets lists all buckets.
func (c *Client) Buckets(ctx context.Context) ([]Bucket, error) {
	var out []Bucket
	if err := c.api.Get(ctx, "/bus/buckets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Bucket fetches a bucket by name, reporting nil when it does not exist.
func (c *Client) Bucket(ctx context.Context, name string) (*Bucket, error) {
	var out Bucket
	found, err := c.api.GetOptional(ctx, api.ObjectPath("/bus/bucket", name), nil, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

// CreateBucket creates a bucket with the given policy.
func (c *Client) CreateBucket(ctx context.Context, name string, policy BucketPolicy) error {
	body := struct {
		Name   string       `json:"name"`
		Policy BucketPolicy `json:"policy"`
	}{Name: name, Policy: policy}
	return c.api.Post(ctx, "/bus/buckets", nil, &body, nil)
}

// UpdateBucketPolicy replaces the policy of the named bucket.
func (c *Client) UpdateBucketPolicy(ctx context.Context, name string, policy BucketPolicy) error {
	body := struct {
		Policy BucketPolicy `json:"policy"`
	}{Policy: policy}
	return c.api.Put(ctx, api.ObjectPath("/bus/bucket", name)+"/policy", nil, &body)
}

// DeleteBucket deletes the named bucket. The bucket must be empty.
func (c *Client) DeleteBucket(ctx context.Context, name string) error {
	return c.api.Delete(ctx, api.ObjectPath("/bus/bucket", name), nil)
}
