package controllers

import (
	"net/http"
	"strings"

	"github.com/glowdecor/backend/api/responses"
	mediasvc "github.com/glowdecor/backend/internal/media"
	"github.com/glowdecor/backend/pkg/logger"
)

type mediaListResponse struct {
	Folder string            `json:"folder"`
	Images []mediasvc.Object `json:"images"`
	Count  int               `json:"count"`
}

// ListMedia returns the image objects of one media library folder.
func ListMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folder := strings.TrimSpace(r.URL.Query().Get("folder"))
		if folder == "" {
			folder = mediasvc.DefaultFolder
		}

		images, err := svc.ListFolder(r.Context(), folder)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, mediaListResponse{
			Folder: folder,
			Images: images,
			Count:  len(images),
		})
	}
}
