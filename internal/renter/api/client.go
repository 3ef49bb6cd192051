// Package api carries the HTTP plumbing shared by the bus, worker and
// autopilot clients: base URL handling, basic auth, query encoding, object
// path escaping and the response-to-error mapping.
//
// The renterd daemon authenticates every request with basic auth as user
// "api" plus the configured password. Responses map to errors uniformly:
// 401 is an auth failure, 404 is either absence (the Optional variants) or
// a not-found error, any other non-2xx status becomes an HTTP error
// carrying the trimmed body text, and bodies that fail to decode are
// invalid-data errors.
package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/koustreak/SiaRi/internal/errs"
	"github.com/koustreak/SiaRi/internal/logger"
)

// authUser is the fixed basic auth user name the daemon expects.
const authUser = "api"

// Client executes requests against one renterd daemon.
type Client struct {
	rc       *resty.Client
	baseURL  string
	password string
	log      *logger.Logger
}

// Options configure the transport.
type Options struct {
	// BaseURL is the daemon's API root, e.g. "http://localhost:9980/api".
	BaseURL string

	// Password authenticates every request as user "api".
	Password string

	// Timeout bounds each request end to end. Zero means no limit.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// Debug dumps requests and responses through resty's logger.
	Debug bool

	// Log receives a per-request debug event when set.
	Log *logger.Logger
}

// New validates opts and builds the transport.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "api endpoint URL is required")
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "api endpoint URL "+opts.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errs.Newf(errs.ErrKindInvalidInput, "api endpoint URL %q: need http or https with a host", opts.BaseURL)
	}
	if opts.Password == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "api password is required")
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	rc := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(authUser, opts.Password).
		SetTimeout(opts.Timeout).
		SetDebug(opts.Debug)
	if opts.InsecureSkipVerify {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	c := &Client{rc: rc, baseURL: baseURL, password: opts.Password, log: opts.Log}
	if c.log != nil {
		rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			c.log.DebugWith("api request", map[string]interface{}{
				"method":   resp.Request.Method,
				"url":      resp.Request.URL,
				"status":   resp.StatusCode(),
				"duration": resp.Time().String(),
			})
			return nil
		})
	}
	return c, nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() error {
	c.rc.GetClient().CloseIdleConnections()
	return nil
}

// Get issues a GET and decodes the response into out. 404 is a not-found
// error; pass through GetOptional for lookups where absence is expected.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	found, err := c.GetOptional(ctx, path, query, out)
	if err != nil {
		return err
	}
	if !found {
		return errs.New(errs.ErrKindNotFound, "not found: "+path)
	}
	return nil
}

// GetOptional issues a GET and decodes the response into out. A 404
// reports found=false with no error.
func (c *Client) GetOptional(ctx context.Context, path string, query url.Values, out interface{}) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return false, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err := c.check(resp); err != nil {
		return false, err
	}
	return true, c.decode(resp, out)
}

// Post issues a POST with an optional JSON body, decoding the response into
// out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	resp, err := c.do(ctx, http.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return errs.New(errs.ErrKindNotFound, "not found: "+path)
	}
	if err := c.check(resp); err != nil {
		return err
	}
	return c.decode(resp, out)
}

// Put issues a PUT with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body interface{}) error {
	resp, err := c.do(ctx, http.MethodPut, path, query, body)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return errs.New(errs.ErrKindNotFound, "not found: "+path)
	}
	return c.check(resp)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	resp, err := c.do(ctx, http.MethodDelete, path, query, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return errs.New(errs.ErrKindNotFound, "not found: "+path)
	}
	return c.check(resp)
}

// Head issues a HEAD and returns the response headers. A 404 reports
// found=false with no error.
func (c *Client) Head(ctx context.Context, path string, query url.Values) (http.Header, bool, error) {
	resp, err := c.do(ctx, http.MethodHead, path, query, nil)
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, false, nil
	}
	if err := c.check(resp); err != nil {
		return nil, false, err
	}
	return resp.Header(), true, nil
}

// GetStream issues a GET and hands back the raw body stream. The caller
// MUST close the returned reader. A non-empty rangeHeader is attached
// verbatim.
func (c *Client) GetStream(ctx context.Context, path string, query url.Values, rangeHeader string) (io.ReadCloser, error) {
	req := c.rc.R().SetContext(ctx).SetDoNotParseResponse(true)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if rangeHeader != "" {
		req.SetHeader("Range", rangeHeader)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, mapTransportErr(err, "GET "+path)
	}
	raw := resp.RawBody()
	if resp.IsSuccess() {
		return raw, nil
	}
	body, _ := io.ReadAll(raw)
	raw.Close()
	if resp.StatusCode() == http.StatusNotFound {
		return nil, errs.New(errs.ErrKindNotFound, "not found: "+path)
	}
	return nil, c.statusError(resp.StatusCode(), string(body))
}

// PutStream issues a PUT whose body streams straight from r. resty buffers
// io.Reader bodies, so this one request is built on the transport's
// underlying http.Client; object uploads must not hold the whole body in
// memory.
func (c *Client) PutStream(ctx context.Context, path string, query url.Values, r io.Reader, contentType string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, r)
	if err != nil {
		return errs.Wrap(errs.ErrKindInvalidInput, "build PUT "+path, err)
	}
	req.SetBasicAuth(authUser, c.password)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.rc.GetClient().Do(req)
	if err != nil {
		return mapTransportErr(err, "PUT "+path)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.DebugWith("api request", map[string]interface{}{
			"method":   http.MethodPut,
			"url":      target,
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}
	if resp.StatusCode == http.StatusNotFound {
		return errs.New(errs.ErrKindNotFound, "not found: "+path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return c.statusError(resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, mapTransportErr(err, method+" "+path)
	}
	return resp, nil
}

// check turns a non-2xx response into the unified error.
func (c *Client) check(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return c.statusError(resp.StatusCode(), resp.String())
}

// decode unmarshals a JSON response body into out, nil out skips the body.
func (c *Client) decode(resp *resty.Response, out interface{}) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errs.Wrap(errs.ErrKindInvalidData, "decode "+resp.Request.Method+" "+resp.Request.URL, err)
	}
	return nil
}
