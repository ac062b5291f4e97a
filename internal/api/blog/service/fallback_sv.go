package blogService

import (
	"camonk/internal/api/blog"
	"camonk/internal/entity"
	"camonk/pkg/blogapi"
	contextPkg "camonk/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

// GetAllBlogs returns the API's blogs followed by local ones. When the API fails the seed
// list takes its place; the caller never sees the API error.
func (s *fallbackService) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	local := s.localBlogs(ctx)

	remote, err := s.remote.ListBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Blog API not reached, using seed and local blogs")

		list := make([]entity.Blog, 0, len(s.seed)+len(local))
		list = append(list, s.seed...)
		return append(list, local...), nil
	}

	list := make([]entity.Blog, 0, len(remote)+len(local))
	list = append(list, remote...)
	return append(list, local...), nil
}

func (s *fallbackService) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	blog, err := s.remote.GetBlog(ctx, id)
	if err == nil {
		return blog, nil
	}

	fields := logrus.Fields{
		"request_id": requestID,
		"id":         id,
		"error":      err.Error(),
	}
	if blogapi.IsNotFound(err) {
		s.log.WithFields(fields).Debug("Blog not on API, searching seed and local blogs")
	} else {
		s.log.WithFields(fields).Warn("Blog API lookup failed, searching seed and local blogs")
	}

	for _, candidate := range s.seed {
		if candidate.ID == id {
			return candidate, nil
		}
	}
	for _, candidate := range s.localBlogs(ctx) {
		if candidate.ID == id {
			return candidate, nil
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Warn("Blog not found")
	return entity.Blog{}, blogs.ErrBlogNotFound
}

// CreateBlog stamps the record with the current millisecond and posts it. If the API
// rejects it or is unreachable the record goes to the local store and is returned as if
// the write had succeeded.
func (s *fallbackService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	blog := newBlogFromRequest(req, now)
	blog.ID = s.utils.NewTimestampID(now)

	created, err := s.remote.CreateBlog(ctx, blog)
	if err == nil {
		return created, nil
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         blog.ID,
		"error":      err.Error(),
	}).Warn("Blog API offline, saving blog to local store")

	if err := s.local.Append(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
			"error":      err.Error(),
		}).Error("Failed to save blog to local store")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	return blog, nil
}

func (s *fallbackService) localBlogs(ctx context.Context) []entity.Blog {
	list, err := s.local.Load(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to read local blogs, treating as empty")
		return nil
	}
	return list
}
