package blogRepository

import (
	"camonk/internal/api/blog"
	"camonk/internal/entity"
	contextPkg "camonk/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const pqUniqueViolation = "23505"

type BlogDB struct {
	ID          int64          `db:"id"`
	Title       sql.NullString `db:"title"`
	Category    pq.StringArray `db:"category"`
	Description sql.NullString `db:"description"`
	PublishedAt time.Time      `db:"published_at"`
	CoverImage  sql.NullString `db:"cover_image"`
	Content     sql.NullString `db:"content"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)

	publishedAt, err := entity.ParseDate(blog.Date)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       blog.Date,
			"error":      err.Error(),
		}).Warn("CreateBlog unparsable date")
		return blogs.ErrInvalidBlogData
	}

	argsKV := map[string]interface{}{
		"id":           blog.ID,
		"title":        blog.Title,
		"category":     pq.StringArray(blog.Category),
		"description":  blog.Description,
		"published_at": publishedAt,
		"cover_image":  blog.CoverImage,
		"content":      blog.Content,
		"created_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         blog.ID,
			}).Warn("CreateBlog duplicate id")
			return blogs.ErrBlogAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB

	if err := r.q.SelectContext(ctx, &blogsList, r.q.Rebind(queryGetAllBlogs)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs execution err")
		return nil, err
	}

	list := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		list = append(list, r.makeBlog(blogDB))
	}

	return list, nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	category := []string(blog.Category)
	if category == nil {
		category = []string{}
	}
	return entity.Blog{
		ID:          blog.ID,
		Title:       blog.Title.String,
		Category:    category,
		Description: blog.Description.String,
		Date:        entity.FormatDate(blog.PublishedAt),
		CoverImage:  blog.CoverImage.String,
		Content:     blog.Content.String,
	}
}
