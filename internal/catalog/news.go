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

// NewsPayload is the create/update body for an article. The cover image is
// optional; when present the payload goes upstream as multipart.
type NewsPayload struct {
	Title     string                `form:"title" json:"title" validate:"required,min=3,max=255"`
	Content   string                `form:"content" json:"content" validate:"required"`
	Summary   string                `form:"summary" json:"summary" validate:"omitempty,max=500"`
	Status    string                `form:"status" json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	ImageFile *multipart.FileHeader `form:"image" json:"-"`
}

func newsDescriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:         "news",
		BasePath:     "/news",
		DefaultLimit: 10,
		Filters: []resource.FilterField{
			{Name: "title", Kind: resource.FilterText},
			{Name: "status", Kind: resource.FilterEnum, Values: []string{
				string(model.StatusDraft),
				string(model.StatusPublished),
				string(model.StatusArchived),
			}},
		},
	}
}

func registerNews(rg *gin.RouterGroup, mw middleware.Middleware, deps Deps) {
	messages := usecase.Messages{
		Created:  "article créé avec succès",
		Updated:  "article mis à jour avec succès",
		Deleted:  "article supprimé avec succès",
		NotFound: "article introuvable",
	}
	register[model.News](rg, mw, deps, newsDescriptor(), messages, bindNews)
}

func bindNews(c *gin.Context) (any, error) {
	var p NewsPayload
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

// Check bounds the optional cover image.
func (p NewsPayload) Check() error {
	if p.ImageFile == nil {
		return nil
	}
	u, err := toUpload(p.ImageFile)
	if err != nil {
		return err
	}
	return imageUploadRule(false, 1).Check("image", []schema.Upload{u})
}

// MultipartForm encodes the payload for upstream when a cover image is
// attached; without one the payload stays JSON.
func (p NewsPayload) MultipartForm() (*restclient.Form, error) {
	if p.ImageFile == nil {
		return nil, nil
	}

	form := restclient.NewForm()
	fields := []struct {
		key   string
		value any
	}{
		{"title", p.Title},
		{"content", p.Content},
		{"summary", p.Summary},
		{"status", p.Status},
	}
	for _, f := range fields {
		if err := form.AddField(f.key, f.value); err != nil {
			return nil, err
		}
	}

	u, err := toUpload(p.ImageFile)
	if err != nil {
		return nil, err
	}
	form.AddFile("image", toFiles([]schema.Upload{u})[0])
	return form, nil
}
