package blogapi

import (
	"camonk/internal/entity"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBlogs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/blogs", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"title":"Remote","category":["TAX"],"description":"d","date":"2026-01-02T03:04:05.000Z","coverImage":"","content":"c"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, WithTokenSource(func() (string, error) { return "tok", nil }))

	list, err := client.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)
	assert.Equal(t, []string{"TAX"}, list[0].Category)
}

func TestListBlogsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).ListBlogs(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.False(t, IsNotFound(err))
}

func TestListBlogsUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).ListBlogs(context.Background())
	assert.Error(t, err)
}

func TestGetBlogNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blogs/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL+"/", time.Second).GetBlog(context.Background(), 42)
	assert.True(t, IsNotFound(err))
}

func TestCreateBlogSendsFullRecordWithToken(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, WithTokenSource(func() (string, error) { return "tok", nil }))
	blog := entity.Blog{ID: 1767225600000, Title: "Hello", Category: []string{"TAX"}, Date: "2026-01-01T00:00:00.000Z", Content: "Body"}

	created, err := client.CreateBlog(context.Background(), blog)
	require.NoError(t, err)
	assert.Equal(t, blog, created)
	assert.Contains(t, body, `"id":1767225600000`)
	assert.Contains(t, body, `"coverImage":""`)
}

func TestCreateBlogTokenError(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, WithTokenSource(func() (string, error) { return "", errors.New("no secret") }))

	_, err := client.CreateBlog(context.Background(), entity.Blog{ID: 1, Title: "x"})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, 200*time.Millisecond).ListBlogs(context.Background())
	assert.Error(t, err)
}
