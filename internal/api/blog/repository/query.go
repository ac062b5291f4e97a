package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			category,
			description,
			published_at,
			cover_image,
			content,
			created_at
		) VALUES (
			:id,
			:title,
			:category,
			:description,
			:published_at,
			:cover_image,
			:content,
			:created_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			category,
			description,
			published_at,
			cover_image,
			content,
			created_at
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			category,
			description,
			published_at,
			cover_image,
			content,
			created_at
		FROM blogs
		ORDER BY created_at ASC, id ASC
	`
)
