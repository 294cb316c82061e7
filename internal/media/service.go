package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	minio "github.com/minio/minio-go/v7"

	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

// Object is one image in the media library listing.
type Object struct {
	Key          string `json:"key"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
}

// Lister is the object-storage surface the media library needs.
type Lister interface {
	List(ctx context.Context, prefix string) ([]minio.ObjectInfo, error)
	PublicURL(key string) string
}

// Service lists the image objects of a media folder.
type Service interface {
	ListFolder(ctx context.Context, folder string) ([]Object, error)
}

type service struct {
	store Lister
}

func NewService(store Lister) Service {
	return &service{store: store}
}

// DefaultFolder is used when the request names no folder.
const DefaultFolder = "home"

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func (s *service) ListFolder(ctx context.Context, folder string) ([]Object, error) {
	if folder == "" {
		folder = DefaultFolder
	}

	objects, err := s.store.List(ctx, fmt.Sprintf("media/%s/", folder))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing media objects")
	}

	images := make([]Object, 0, len(objects))
	for _, obj := range objects {
		if !isImageKey(obj.Key) {
			continue
		}
		images = append(images, Object{
			Key:          obj.Key,
			URL:          s.store.PublicURL(obj.Key),
			Size:         obj.Size,
			LastModified: obj.LastModified.Format(time.RFC3339),
		})
	}
	return images, nil
}

func isImageKey(key string) bool {
	lower := strings.ToLower(key)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
