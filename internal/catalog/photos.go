package catalog

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/middleware"
	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/usecase"
	"consulate-console/pkg/restclient"
)

// PhotoPayload is the create/update body for a photo album. New images are
// optional on update; when present the payload goes upstream as multipart
// with one repeated "images" part per file.
type PhotoPayload struct {
	Title       string                  `form:"title" json:"title" validate:"required,min=3,max=255"`
	Description string                  `form:"description" json:"description" validate:"omitempty,max=500"`
	Published   bool                    `form:"published" json:"published"`
	ImageFiles  []*multipart.FileHeader `form:"images" json:"-"`
}

// Check bounds the attached images: up to ten files of 5 Mo each.
func (p PhotoPayload) Check() error {
	if len(p.ImageFiles) == 0 {
		return nil
	}
	uploads, err := toUploads(p.ImageFiles)
	if err != nil {
		return err
	}
	return imageUploadRule(false, 10).Check("images", uploads)
}

// MultipartForm encodes the payload for upstream when images are attached.
func (p PhotoPayload) MultipartForm() (*restclient.Form, error) {
	if len(p.ImageFiles) == 0 {
		return nil, nil
	}

	form := restclient.NewForm()
	fields := []struct {
		key   string
		value any
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"published", p.Published},
	}
	for _, f := range fields {
		if err := form.AddField(f.key, f.value); err != nil {
			return nil, err
		}
	}

	uploads, err := toUploads(p.ImageFiles)
	if err != nil {
		return nil, err
	}
	form.AddFiles("images", toFiles(uploads))
	return form, nil
}

func photosDescriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:         "photos",
		BasePath:     "/photos",
		DefaultLimit: 12,
		Filters: []resource.FilterField{
			{Name: "title", Kind: resource.FilterText},
			{Name: "published", Kind: resource.FilterEnum, Values: []string{"true", "false"}},
		},
	}
}

func registerPhotos(rg *gin.RouterGroup, mw middleware.Middleware, deps Deps) {
	messages := usecase.Messages{
		Created:  "album photo créé avec succès",
		Updated:  "album photo mis à jour avec succès",
		Deleted:  "album photo supprimé avec succès",
		NotFound: "album photo introuvable",
	}
	register[model.Photo](rg, mw, deps, photosDescriptor(), messages, bindPhoto)
}

func bindPhoto(c *gin.Context) (any, error) {
	var p PhotoPayload
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
