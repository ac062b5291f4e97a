package blogService

import (
	"camonk/internal/api/blog"
	blogsRepository "camonk/internal/api/blog/repository"
	"camonk/internal/entity"
	"camonk/pkg/blogapi"
	"camonk/pkg/localstore"
	"camonk/pkg/querycache"
	"camonk/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	GetAllBlogs(ctx context.Context) ([]entity.Blog, error)
	GetBlogByID(ctx context.Context, id int64) (entity.Blog, error)
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error)
}

// NewBlogsService serves blogs straight from the database. Used by the blog API server.
func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	utils utils.IUtils,
	now func() time.Time,
) IBlogsService {
	if now == nil {
		now = time.Now
	}
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		utils:     utils,
		now:       now,
	}
}

// NewFallbackService reads from and writes to the blog API, degrading to the seed list
// plus the local store whenever the API cannot be used.
func NewFallbackService(
	log *logrus.Logger,
	remote blogapi.IBlogAPI,
	local localstore.IStore,
	utils utils.IUtils,
	now func() time.Time,
) IBlogsService {
	if now == nil {
		now = time.Now
	}
	return &fallbackService{
		log:    log,
		remote: remote,
		local:  local,
		utils:  utils,
		seed:   blogs.SeedBlogs(now()),
		now:    now,
	}
}

// NewCachedService memoises reads of next for staleTime and drops the list after a create.
func NewCachedService(log *logrus.Logger, next IBlogsService, cache querycache.ICache) IBlogsService {
	return &cachedService{
		log:   log,
		next:  next,
		cache: cache,
	}
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	utils     utils.IUtils
	now       func() time.Time
}

type fallbackService struct {
	log    *logrus.Logger
	remote blogapi.IBlogAPI
	local  localstore.IStore
	utils  utils.IUtils
	seed   []entity.Blog
	now    func() time.Time
}

type cachedService struct {
	log   *logrus.Logger
	next  IBlogsService
	cache querycache.ICache
}
