package localstore

import (
	"camonk/internal/entity"
	"context"

	jsoniter "github.com/json-iterator/go"
)

// Key names the single persisted list of locally created blogs.
const Key = "camonk_local_blogs"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IStore keeps blogs that could not be written to the blog API. The whole list is read
// and rewritten on every Append; concurrent processes sharing a backend can lose writes.
type IStore interface {
	Load(ctx context.Context) ([]entity.Blog, error)
	Append(ctx context.Context, blog entity.Blog) error
}

func decode(raw []byte) ([]entity.Blog, error) {
	if len(raw) == 0 {
		return []entity.Blog{}, nil
	}
	var list []entity.Blog
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Blog{}
	}
	return list, nil
}
