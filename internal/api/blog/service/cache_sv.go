package blogService

import (
	"camonk/internal/api/blog"
	"camonk/internal/entity"
	contextPkg "camonk/pkg/context"
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
)

const listCacheKey = "blogs"

func detailCacheKey(id int64) string {
	return "blog:" + strconv.FormatInt(id, 10)
}

func (s *cachedService) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		if list, ok := cached.([]entity.Blog); ok {
			return list, nil
		}
	}

	list, err := retryOnce(ctx, s.log, "get_all_blogs", func() ([]entity.Blog, error) {
		return s.next.GetAllBlogs(ctx)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(listCacheKey, list)
	return list, nil
}

func (s *cachedService) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	key := detailCacheKey(id)
	if cached, ok := s.cache.Get(key); ok {
		if blog, ok := cached.(entity.Blog); ok {
			return blog, nil
		}
	}

	blog, err := retryOnce(ctx, s.log, "get_blog", func() (entity.Blog, error) {
		return s.next.GetBlogByID(ctx, id)
	})
	if err != nil {
		return entity.Blog{}, err
	}

	s.cache.Set(key, blog)
	return blog, nil
}

func (s *cachedService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	blog, err := s.next.CreateBlog(ctx, req)
	if err != nil {
		return entity.Blog{}, err
	}

	s.cache.Invalidate(listCacheKey)
	return blog, nil
}

// retryOnce runs fn a second time after a failure, except when the blog is known not to exist.
func retryOnce[T any](ctx context.Context, log *logrus.Logger, operation string, fn func() (T, error)) (T, error) {
	result, err := fn()
	if err == nil || errors.Is(err, blogs.ErrBlogNotFound) {
		return result, err
	}

	log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"operation":  operation,
		"error":      err.Error(),
	}).Warn("Read failed, retrying once")

	return fn()
}
