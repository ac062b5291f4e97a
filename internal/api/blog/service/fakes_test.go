package blogService

import (
	blogs "camonk/internal/api/blog"
	blogRepository "camonk/internal/api/blog/repository"
	"camonk/internal/entity"
	"camonk/pkg/blogapi"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

var errRemoteDown = errors.New("dial tcp: connection refused")

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeRemote struct {
	mu      sync.Mutex
	blogs   []entity.Blog
	err     error
	created []entity.Blog
}

func (f *fakeRemote) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Blog(nil), f.blogs...), nil
}

func (f *fakeRemote) GetBlog(ctx context.Context, id int64) (entity.Blog, error) {
	if f.err != nil {
		return entity.Blog{}, f.err
	}
	for _, b := range f.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Blog{}, &blogapi.StatusError{Code: http.StatusNotFound, Path: "/blogs/" + strconv.FormatInt(id, 10)}
}

func (f *fakeRemote) CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return entity.Blog{}, f.err
	}
	f.created = append(f.created, blog)
	f.blogs = append(f.blogs, blog)
	return blog, nil
}

type fakeStore struct {
	blogs     []entity.Blog
	loadErr   error
	appendErr error
}

func (f *fakeStore) Load(ctx context.Context) ([]entity.Blog, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]entity.Blog(nil), f.blogs...), nil
}

func (f *fakeStore) Append(ctx context.Context, blog entity.Blog) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.blogs = append(f.blogs, blog)
	return nil
}

// fakeService counts calls and fails the first failFirst reads.
type fakeService struct {
	listCalls   int
	getCalls    int
	createCalls int
	failFirst   int
	err         error
	blogs       []entity.Blog
}

func (f *fakeService) fail() error {
	if f.err != nil {
		return f.err
	}
	if f.failFirst > 0 {
		f.failFirst--
		return errRemoteDown
	}
	return nil
}

func (f *fakeService) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	f.listCalls++
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.blogs, nil
}

func (f *fakeService) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	f.getCalls++
	if err := f.fail(); err != nil {
		return entity.Blog{}, err
	}
	for _, b := range f.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Blog{}, blogs.ErrBlogNotFound
}

func (f *fakeService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	f.createCalls++
	blog := entity.Blog{ID: int64(100 + f.createCalls), Title: req.Title, Content: req.Content}
	f.blogs = append(f.blogs, blog)
	return blog, nil
}

type fakeBlogsRepo struct {
	blogs     []entity.Blog
	createErr error
	committed bool
}

func (f *fakeBlogsRepo) CreateBlog(ctx context.Context, blog entity.Blog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.blogs = append(f.blogs, blog)
	return nil
}

func (f *fakeBlogsRepo) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	for _, b := range f.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Blog{}, blogs.ErrBlogNotFound
}

func (f *fakeBlogsRepo) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	return f.blogs, nil
}

type fakeRepository struct {
	blogs *fakeBlogsRepo
}

func (f *fakeRepository) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs: f.blogs,
		Commit: func() error {
			f.blogs.committed = true
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}
