package catalog

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/middleware"
	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/schema"
	"consulate-console/internal/resource/usecase"
	"consulate-console/pkg/restclient"
)

// VideoPayload is the create/update body for a video. The video itself is
// hosted externally (only its URL travels through the console); the
// thumbnail may be uploaded as a file, which switches the payload to
// multipart.
type VideoPayload struct {
	Title         string                `form:"title" json:"title" validate:"required,min=3,max=255"`
	Description   string                `form:"description" json:"description" validate:"omitempty,max=500"`
	VideoURL      string                `form:"video_url" json:"video_url" validate:"required,url"`
	ThumbnailURL  string                `form:"thumbnail_url" json:"thumbnail_url" validate:"omitempty,url"`
	Published     bool                  `form:"published" json:"published"`
	ThumbnailFile *multipart.FileHeader `form:"thumbnail" json:"-"`
}

// Check bounds the optional thumbnail upload.
func (p VideoPayload) Check() error {
	if p.ThumbnailFile == nil {
		return nil
	}
	u, err := toUpload(p.ThumbnailFile)
	if err != nil {
		return err
	}
	return imageUploadRule(false, 1).Check("thumbnail", []schema.Upload{u})
}

// MultipartForm encodes the payload for upstream when a thumbnail file is
// attached; without one the payload stays JSON.
func (p VideoPayload) MultipartForm() (*restclient.Form, error) {
	if p.ThumbnailFile == nil {
		return nil, nil
	}

	form := restclient.NewForm()
	fields := []struct {
		key   string
		value any
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"video_url", p.VideoURL},
		{"thumbnail_url", p.ThumbnailURL},
		{"published", p.Published},
	}
	for _, f := range fields {
		if err := form.AddField(f.key, f.value); err != nil {
			return nil, err
		}
	}

	u, err := toUpload(p.ThumbnailFile)
	if err != nil {
		return nil, err
	}
	form.AddFile("thumbnail", toFiles([]schema.Upload{u})[0])
	return form, nil
}

func videosDescriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:         "videos",
		BasePath:     "/videos",
		DefaultLimit: 12,
		Filters: []resource.FilterField{
			{Name: "title", Kind: resource.FilterText},
			{Name: "published", Kind: resource.FilterEnum, Values: []string{"true", "false"}},
		},
	}
}

func registerVideos(rg *gin.RouterGroup, mw middleware.Middleware, deps Deps) {
	messages := usecase.Messages{
		Created:  "vidéo créée avec succès",
		Updated:  "vidéo mise à jour avec succès",
		Deleted:  "vidéo supprimée avec succès",
		NotFound: "vidéo introuvable",
	}
	register[model.Video](rg, mw, deps, videosDescriptor(), messages, bindVideo)
}

func bindVideo(c *gin.Context) (any, error) {
	var p VideoPayload
	if isMultipart(c) {
		if err := c.ShouldBind(&p); err != nil {
			return nil, err
		}
		return p, nil
	}
	if err := c.ShouldBindJSON(&p); err != nil {
		return nil, err
	}
	return p, nil
}
