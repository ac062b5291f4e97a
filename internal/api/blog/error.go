package blogs

import "camonk/pkg/response"

var (
	ErrBlogNotFound      = response.NewError(404, "blog not found")
	ErrBlogAlreadyExists = response.NewError(409, "blog with this id already exists")
	ErrCreateBlog        = response.NewError(500, "failed to create blog")
	ErrInvalidBlogData   = response.NewError(400, "invalid blog data")
	ErrInvalidBlogID     = response.NewError(400, "invalid blog id")
)
