package blogService

import (
	blogs "camonk/internal/api/blog"
	"camonk/internal/entity"
	"camonk/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 15, 9, 30, 0, int(250*time.Millisecond), time.UTC)

func newFallback(remote *fakeRemote, local *fakeStore, now func() time.Time) IBlogsService {
	return NewFallbackService(newTestLogger(), remote, local, utils.New(), now)
}

func ids(list []entity.Blog) []int64 {
	out := make([]int64, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}

func TestListRemoteDownReturnsSeedThenLocal(t *testing.T) {
	local := &fakeStore{blogs: []entity.Blog{{ID: 500, Title: "local a"}, {ID: 600, Title: "local b"}}}
	svc := newFallback(&fakeRemote{err: errRemoteDown}, local, func() time.Time { return fixedNow })

	list, err := svc.GetAllBlogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 500, 600}, ids(list))
	assert.Equal(t, entity.FormatDate(fixedNow), list[0].Date)
}

func TestListRemoteUpReturnsRemoteThenLocal(t *testing.T) {
	remote := &fakeRemote{blogs: []entity.Blog{{ID: 10}, {ID: 11}}}
	local := &fakeStore{blogs: []entity.Blog{{ID: 500}}}
	svc := newFallback(remote, local, nil)

	list, err := svc.GetAllBlogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 500}, ids(list))
}

func TestListLocalReadErrorIsTreatedAsEmpty(t *testing.T) {
	svc := newFallback(&fakeRemote{err: errRemoteDown}, &fakeStore{loadErr: errors.New("corrupt")}, nil)

	list, err := svc.GetAllBlogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(list))
}

func TestGetByIDFallsBackToSeedAndLocal(t *testing.T) {
	local := &fakeStore{blogs: []entity.Blog{{ID: 500, Title: "local"}}}
	svc := newFallback(&fakeRemote{err: errRemoteDown}, local, nil)
	ctx := context.Background()

	seed, err := svc.GetBlogByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Essential Skills for Modern CAs", seed.Title)

	stored, err := svc.GetBlogByID(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, "local", stored.Title)

	_, err = svc.GetBlogByID(ctx, 999)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetByIDPrefersRemote(t *testing.T) {
	remote := &fakeRemote{blogs: []entity.Blog{{ID: 1, Title: "remote one"}}}
	svc := newFallback(remote, &fakeStore{}, nil)

	blog, err := svc.GetBlogByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "remote one", blog.Title)
}

func TestGetByIDRemoteNotFoundStillSearchesLocal(t *testing.T) {
	remote := &fakeRemote{blogs: []entity.Blog{{ID: 10}}}
	local := &fakeStore{blogs: []entity.Blog{{ID: 500, Title: "offline write"}}}
	svc := newFallback(remote, local, nil)

	blog, err := svc.GetBlogByID(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, "offline write", blog.Title)
}

func TestCreateAssignsTimestampID(t *testing.T) {
	remote := &fakeRemote{}
	svc := newFallback(remote, &fakeStore{}, func() time.Time { return fixedNow })

	blog, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		ID:       42,
		Title:    "Tax update",
		Category: []string{" gst", "GST", "audit "},
		Content:  "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixMilli(), blog.ID)
	assert.Equal(t, []string{"GST", "AUDIT"}, blog.Category)
	assert.Equal(t, entity.FormatDate(fixedNow), blog.Date)

	require.Len(t, remote.created, 1)
	assert.Equal(t, fixedNow.UnixMilli(), remote.created[0].ID)
}

func TestCreateAtDifferentTimesGivesDifferentIDs(t *testing.T) {
	now := fixedNow
	svc := newFallback(&fakeRemote{}, &fakeStore{}, func() time.Time { return now })
	ctx := context.Background()

	first, err := svc.CreateBlog(ctx, blogs.CreateBlogRequest{Title: "one", Content: "c"})
	require.NoError(t, err)

	now = now.Add(3 * time.Millisecond)
	second, err := svc.CreateBlog(ctx, blogs.CreateBlogRequest{Title: "two", Content: "c"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(3), second.ID-first.ID)
}

func TestCreateRemoteDownAppendsLocally(t *testing.T) {
	local := &fakeStore{}
	svc := newFallback(&fakeRemote{err: errRemoteDown}, local, func() time.Time { return fixedNow })
	ctx := context.Background()

	blog, err := svc.CreateBlog(ctx, blogs.CreateBlogRequest{Title: "Offline", Content: "c"})
	require.NoError(t, err)
	require.Len(t, local.blogs, 1)
	assert.Equal(t, blog, local.blogs[0])

	list, err := svc.GetAllBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, fixedNow.UnixMilli()}, ids(list))
}

func TestCreateFailsOnlyWhenLocalAppendFails(t *testing.T) {
	local := &fakeStore{appendErr: errors.New("disk full")}
	svc := newFallback(&fakeRemote{err: errRemoteDown}, local, nil)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{Title: "Offline", Content: "c"})
	assert.ErrorIs(t, err, blogs.ErrCreateBlog)
}

func TestGetByIDWarnsOnlyWhenAPIUnreachable(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := context.Background()

	svc := NewFallbackService(logger, &fakeRemote{}, &fakeStore{}, utils.New(), nil)
	_, err := svc.GetBlogByID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())

	svc = NewFallbackService(logger, &fakeRemote{err: errRemoteDown}, &fakeStore{}, utils.New(), nil)
	_, err = svc.GetBlogByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Blog API lookup failed, searching seed and local blogs", hook.LastEntry().Message)
}
