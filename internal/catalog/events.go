package catalog

import (
	"time"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/middleware"
	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/schema"
	"consulate-console/internal/resource/usecase"
)

// EventPayload is the create/update body for an event.
type EventPayload struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=255"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"omitempty"`
	Published   bool      `json:"published"`
}

// Check rejects an event that ends before it starts; struct tags cannot
// express the cross-field rule.
func (p EventPayload) Check() error {
	if !p.EndsAt.IsZero() && p.EndsAt.Before(p.StartsAt) {
		return schema.FieldErrors{"ends_at": "la date de fin doit être postérieure à la date de début"}
	}
	return nil
}

func eventsDescriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:         "events",
		BasePath:     "/events",
		DefaultLimit: 10,
		Filters: []resource.FilterField{
			{Name: "title", Kind: resource.FilterText},
			{Name: "published", Kind: resource.FilterEnum, Values: []string{"true", "false"}},
		},
	}
}

func registerEvents(rg *gin.RouterGroup, mw middleware.Middleware, deps Deps) {
	messages := usecase.Messages{
		Created:  "événement créé avec succès",
		Updated:  "événement mis à jour avec succès",
		Deleted:  "événement supprimé avec succès",
		NotFound: "événement introuvable",
	}
	register[model.Event](rg, mw, deps, eventsDescriptor(), messages, bindEvent)
}

func bindEvent(c *gin.Context) (any, error) {
	var p EventPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		return nil, err
	}
	return p, nil
}
