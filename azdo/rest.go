package azdo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// DefaultAPIVersion is the Extension Management data API version requested
// on every call.
const DefaultAPIVersion = "7.1-preview.1"

// Document lists can be large; the service caps a collection at 100,000
// documents.
const defaultMaxResponseSize = 8 << 20

// RESTOption configures a RESTClient.
type RESTOption func(*RESTClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) RESTOption {
	return func(r *RESTClient) {
		r.client = c
	}
}

// WithAccessToken sets the personal access token sent via Basic auth.
func WithAccessToken(token string) RESTOption {
	return func(r *RESTClient) {
		r.token = token
	}
}

// WithAPIVersion overrides DefaultAPIVersion.
func WithAPIVersion(version string) RESTOption {
	return func(r *RESTClient) {
		r.apiVersion = version
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) RESTOption {
	return func(r *RESTClient) {
		r.userAgent = ua
	}
}

// WithMaxResponseSize sets the maximum response body size.
// Default is 8MB.
func WithMaxResponseSize(bytes int64) RESTOption {
	return func(r *RESTClient) {
		r.maxBody = bytes
	}
}

// RESTClient is a DocumentClient that talks to the Extension Management
// REST API directly. It is safe for concurrent use and holds no state
// beyond its configuration.
type RESTClient struct {
	baseURL    string
	client     *http.Client
	token      string
	apiVersion string
	userAgent  string
	sessionID  string
	maxBody    int64
}

var _ DocumentClient = (*RESTClient)(nil)

// NewRESTClient creates a client bound to one organization, e.g.
// "https://dev.azure.com/myorg". The organization URL is required.
func NewRESTClient(organizationURL string, opts ...RESTOption) (*RESTClient, error) {
	if strings.TrimSpace(organizationURL) == "" {
		return nil, fmt.Errorf("azdo: organization URL is required")
	}
	u, err := url.Parse(organizationURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("azdo: invalid organization URL %q", organizationURL)
	}

	c := &RESTClient{
		baseURL:    strings.TrimRight(organizationURL, "/"),
		client:     &http.Client{Timeout: 30 * time.Second},
		apiVersion: DefaultAPIVersion,
		userAgent:  "extdata-mcp",
		sessionID:  uuid.NewString(),
		maxBody:    defaultMaxResponseSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetDocument fetches a single document by id.
func (c *RESTClient) GetDocument(ctx context.Context, coll Collection, documentID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, c.documentsURL(coll, documentID), nil)
}

// ListDocuments fetches the full document list of a collection. The
// response is the service's list envelope ({"count": n, "value": [...]}).
func (c *RESTClient) ListDocuments(ctx context.Context, coll Collection) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, c.documentsURL(coll, ""), nil)
}

// CreateDocument inserts a new document. The service rejects the call when
// a document with the same id already exists, and assigns an id when the
// document carries none. Not idempotent.
func (c *RESTClient) CreateDocument(ctx context.Context, coll Collection, doc json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, c.documentsURL(coll, ""), doc)
}

// SetDocument inserts the document or fully overwrites an existing one.
func (c *RESTClient) SetDocument(ctx context.Context, coll Collection, doc json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, c.documentsURL(coll, ""), doc)
}

// UpdateDocument overwrites an existing document subject to the service's
// __etag check. The document body is sent verbatim.
func (c *RESTClient) UpdateDocument(ctx context.Context, coll Collection, doc json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, c.documentsURL(coll, ""), doc)
}

// DeleteDocument removes a document by id. The service returns no body.
func (c *RESTClient) DeleteDocument(ctx context.Context, coll Collection, documentID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.documentsURL(coll, documentID), nil)
	return err
}

// documentsURL builds
// {org}/_apis/ExtensionManagement/InstalledExtensions/{publisher}/{extension}/Data/Scopes/{type}/{value}/Collections/{collection}/Documents[/{id}]
// with every caller-supplied segment percent-encoded.
func (c *RESTClient) documentsURL(coll Collection, documentID string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString("/_apis/ExtensionManagement/InstalledExtensions/")
	b.WriteString(url.PathEscape(coll.Publisher))
	b.WriteString("/")
	b.WriteString(url.PathEscape(coll.Extension))
	b.WriteString("/Data/Scopes/")
	b.WriteString(string(coll.Scope.Type))
	b.WriteString("/")
	b.WriteString(url.PathEscape(coll.Scope.Value))
	b.WriteString("/Collections/")
	b.WriteString(url.PathEscape(coll.Name))
	b.WriteString("/Documents")
	if documentID != "" {
		b.WriteString("/")
		b.WriteString(url.PathEscape(documentID))
	}
	b.WriteString("?api-version=")
	b.WriteString(url.QueryEscape(c.apiVersion))
	return b.String()
}

// do performs one request and returns the raw response body. Non-2xx
// responses become a *RequestError carrying the service's "message" field
// when the body provides one.
func (c *RESTClient) do(ctx context.Context, method, rawURL string, body json.RawMessage) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-TFS-Session", c.sessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		// PAT auth: empty user, token as password.
		req.SetBasicAuth("", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    gjson.GetBytes(data, "message").String(),
		}
	}

	if len(data) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}
