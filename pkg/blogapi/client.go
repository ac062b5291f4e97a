package blogapi

import (
	"bytes"
	"camonk/internal/entity"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatusError is returned for any non-2xx answer from the blog API.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("blog api %s returned status %d", e.Path, e.Code)
}

// IsNotFound reports whether err is a 404 from the blog API.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

type IBlogAPI interface {
	ListBlogs(ctx context.Context) ([]entity.Blog, error)
	GetBlog(ctx context.Context, id int64) (entity.Blog, error)
	CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error)
}

// TokenSource mints the bearer token attached to writes.
type TokenSource func() (string, error)

type Option func(*client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *client) {
		c.tokenSource = ts
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

type client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
}

func New(baseURL string, timeout time.Duration, opts ...Option) IBlogAPI {
	c := &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	var list []entity.Blog
	if err := c.do(ctx, http.MethodGet, "/blogs", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *client) GetBlog(ctx context.Context, id int64) (entity.Blog, error) {
	var blog entity.Blog
	if err := c.do(ctx, http.MethodGet, "/blogs/"+strconv.FormatInt(id, 10), nil, &blog); err != nil {
		return entity.Blog{}, err
	}
	return blog, nil
}

func (c *client) CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error) {
	payload, err := json.Marshal(blog)
	if err != nil {
		return entity.Blog{}, err
	}

	var created entity.Blog
	if err := c.do(ctx, http.MethodPost, "/blogs", payload, &created); err != nil {
		return entity.Blog{}, err
	}
	return created, nil
}

func (c *client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if method != http.MethodGet && c.tokenSource != nil {
		token, err := c.tokenSource()
		if err != nil {
			return fmt.Errorf("sign service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
