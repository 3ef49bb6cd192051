package filestore

// Provider identifies the object storage backend.
type Provider string

const (
	// ProviderSia reads through a renterd daemon's native API.
	ProviderSia Provider = "sia"

	// ProviderMinIO reads through an S3 endpoint, typically a renterd
	// daemon's S3-compatible gateway.
	ProviderMinIO Provider = "minio"
)

// Config holds all settings needed to connect to an S3-style backend. The
// sia driver needs none of this; it is built directly from a renter client.
type Config struct {
	// Provider is the storage backend (e.g. ProviderMinIO).
	Provider Provider

	// Endpoint is the host:port of the S3 endpoint.
	// Example: "localhost:8080" for a local renterd gateway.
	Endpoint string

	// AccessKey is the access key ID. For a renterd gateway it must match
	// one of the v4 key pairs in the daemon's s3authentication setting.
	AccessKey string

	// SecretKey is the secret access key.
	SecretKey string

	// UseSSL controls whether TLS is used for the connection.
	UseSSL bool

	// Region is used by region-aware backends (e.g. AWS S3).
	// Leave empty for a renterd gateway.
	Region string

	// DefaultBucket is an optional default bucket name.
	// Callers may override it per-request.
	DefaultBucket string
}

// DefaultConfig returns a local-dev config for a renterd S3 gateway.
func DefaultConfig(endpoint, accessKey, secretKey string) *Config {
	return &Config{
		Provider:  ProviderMinIO,
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		UseSSL:    false,
	}
}
