// Package catalog declares the managed resources of the console: their
// descriptors, payload schemas and user-facing messages. Registering a
// resource here is all it takes to get the full list/detail/stats/mutate
// surface with caching and invalidation.
package catalog

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/middleware"
	"consulate-console/internal/resource"
	deliveryhttp "consulate-console/internal/resource/delivery/http"
	"consulate-console/internal/resource/query"
	"consulate-console/internal/resource/repository/rest"
	"consulate-console/internal/resource/schema"
	"consulate-console/internal/resource/usecase"
	"consulate-console/pkg/log"
	"consulate-console/pkg/restclient"
)

// Deps is everything a resource registration needs.
type Deps struct {
	Logger    log.Logger
	Client    *restclient.Client
	Store     *query.Store
	Validator *schema.Validator
}

// Register mounts every managed resource under the given router group.
func Register(rg *gin.RouterGroup, mw middleware.Middleware, deps Deps) {
	registerNews(rg, mw, deps)
	registerEvents(rg, mw, deps)
	registerPhotos(rg, mw, deps)
	registerVideos(rg, mw, deps)
	registerUsers(rg, mw, deps)
}

// register wires one resource through all layers and mounts its routes.
func register[T any](rg *gin.RouterGroup, mw middleware.Middleware, deps Deps,
	desc resource.Descriptor, messages usecase.Messages, bind deliveryhttp.Binder, extra ...gin.HandlerFunc) {
	repo := rest.New[T](deps.Client, desc.BasePath, deps.Logger)
	action := usecase.New(desc.Name, deps.Validator, repo, messages, deps.Logger)
	queries := query.NewQueries(desc.Name, deps.Store, action)
	handler := deliveryhttp.New(deps.Logger, queries, desc, bind)
	deliveryhttp.RegisterRoutes(rg, handler, mw, extra...)
}

// isMultipart reports whether the request body is a multipart form.
func isMultipart(c *gin.Context) bool {
	contentType := c.ContentType()
	return contentType == "multipart/form-data"
}

// toUpload adapts one submitted file header into the schema's upload shape.
// The underlying file is closed with the request's multipart form.
func toUpload(fh *multipart.FileHeader) (schema.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return schema.Upload{}, err
	}
	return schema.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, nil
}

// toUploads adapts a slice of file headers, preserving order.
func toUploads(fhs []*multipart.FileHeader) ([]schema.Upload, error) {
	uploads := make([]schema.Upload, 0, len(fhs))
	for _, fh := range fhs {
		u, err := toUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}

// imageUploadRule is the shared constraint for image uploads: 5 Mo per
// file, common web image types only.
func imageUploadRule(required bool, maxCount int) schema.UploadRule {
	return schema.UploadRule{
		MaxBytes:     5 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		Required:     required,
		MaxCount:     maxCount,
	}
}

// toFiles converts schema uploads to the REST client's file parts.
func toFiles(uploads []schema.Upload) []restclient.File {
	files := make([]restclient.File, 0, len(uploads))
	for _, u := range uploads {
		files = append(files, restclient.File{
			Filename:    u.Filename,
			ContentType: u.ContentType,
			Content:     u.Content,
		})
	}
	return files
}
