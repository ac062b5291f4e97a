package blogService

import (
	"camonk/internal/api/blog"
	"camonk/internal/entity"
	contextPkg "camonk/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	return list, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return entity.Blog{}, err
	}

	return blog, nil
}

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	blog := newBlogFromRequest(req, now)
	if req.ID > 0 {
		blog.ID = req.ID
	} else {
		blog.ID = s.utils.NewTimestampID(now)
	}

	if _, err := entity.ParseDate(blog.Date); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       blog.Date,
		}).Warn("Blog date is not ISO-8601")
		return entity.Blog{}, blogs.ErrInvalidBlogData
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}
	defer repo.Rollback()

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogAlreadyExists) || errors.Is(err, blogs.ErrInvalidBlogData) {
			return entity.Blog{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	return blog, nil
}

// newBlogFromRequest copies the payload, normalising categories and defaulting the date.
func newBlogFromRequest(req blogs.CreateBlogRequest, now time.Time) entity.Blog {
	date := req.Date
	if date == "" {
		date = entity.FormatDate(now)
	}
	return entity.Blog{
		Title:       req.Title,
		Category:    blogs.NormalizeCategories(req.Category),
		Description: req.Description,
		Date:        date,
		CoverImage:  req.CoverImage,
		Content:     req.Content,
	}
}
